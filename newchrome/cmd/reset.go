package cmd

import (
	"fmt"

	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetAll bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [name]",
	Short: "Reset a profile instance",
	Long: `Delete the working instance so the next launch starts again from the
template. The template itself is not touched.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: TemplateNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetAll && len(args) > 0 {
			return errors.E("reset", fmt.Errorf("a name cannot be combined with --all"))
		}

		_, store, err := newStore()
		if err != nil {
			return err
		}

		if resetAll {
			removed, err := store.ResetAll()
			if err != nil {
				return errors.E("reset", err)
			}
			if len(removed) == 0 {
				color.Yellow("No instances to reset.")
				return nil
			}
			color.Green("✔ Reset %d instance(s).", len(removed))
			return nil
		}

		name := nameArg(args)
		if err := store.Reset(name); err != nil {
			return errors.E("reset", err)
		}
		color.Green("✔ Instance '%s' reset.", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetAll, "all", "a", false, "Reset every instance")
}
