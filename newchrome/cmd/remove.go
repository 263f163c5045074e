package cmd

import (
	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Delete a profile's template and instance",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: TemplateNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		_, store, err := newStore()
		if err != nil {
			return err
		}

		if err := store.Remove(name); err != nil {
			return errors.E("remove", err)
		}
		color.Green("✔ Profile '%s' removed.", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
