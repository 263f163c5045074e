package cmd

import (
	"fmt"

	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:     "save <name>",
	Aliases: []string{"persist"},
	Short:   "Save a profile instance back to its template",
	Long: `Copy the working instance over the template, so that the current session
state becomes the starting point for future instances.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: TemplateNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		_, store, err := newStore()
		if err != nil {
			return err
		}

		err = withSpinner(fmt.Sprintf("Saving instance '%s' to template...", name), func() error {
			return store.Save(name)
		})
		if err != nil {
			return errors.E("save", err)
		}
		color.Green("✔ Instance '%s' saved to template.", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
