package cmd

import (
	"newchrome/internal/browser"
	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit or create a template profile",
	Long: `Open a bare browser window directly on the template, creating it if needed.
Cookies, extensions and settings changed in that window become part of the
template and are copied into new instances.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: TemplateNameCompleter,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := nameArg(args)

		cfg, store, err := newStore()
		if err != nil {
			return err
		}

		dir, err := store.EnsureTemplate(name)
		if err != nil {
			return errors.E("edit", err)
		}
		color.Cyan("i Editing template '%s'", name)

		return errors.E("edit", browser.Launch(cfg, browser.Options{UserDataDir: dir}))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
