package cmd

import (
	"fmt"

	"newchrome/internal/browser"
	"newchrome/internal/errors"
	"newchrome/internal/profile"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var instanceOpts launchOptions

// instanceCmd represents the instance command
var instanceCmd = &cobra.Command{
	Use:     "instance [url]",
	Aliases: []string{"i"},
	Short:   "Launch a throwaway copy of a profile",
	Long: `Copy the named instance into a fresh directory under the system temp
directory and launch the browser against the copy. The instance itself is
never modified. Copies are not cleaned up by newchrome.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := newStore()
		if err != nil {
			return err
		}

		id := profile.NewID()
		var dir string
		err = withSpinner(fmt.Sprintf("Copying instance '%s'...", instanceOpts.name), func() error {
			var err error
			dir, err = store.Ephemeral(instanceOpts.name, id)
			return err
		})
		if err != nil {
			color.Red("✖ Error writing to temp directory")
			return errors.E("instance", err)
		}
		color.Green("✔ Ephemeral copy created at %s", dir)

		return errors.E("instance", browser.Launch(cfg, browser.Options{
			UserDataDir: dir,
			Flags:       browser.SplitFlags(instanceOpts.flags),
			URL:         urlArg(args),
		}))
	},
}

func init() {
	instanceOpts.register(instanceCmd)
	rootCmd.AddCommand(instanceCmd)
}
