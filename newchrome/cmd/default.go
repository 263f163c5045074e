package cmd

import (
	"newchrome/internal/browser"
	"newchrome/internal/errors"

	"github.com/spf13/cobra"
)

// defaultCmd represents the default command
var defaultCmd = &cobra.Command{
	Use:   "default [url]",
	Short: "Launch the browser's own default profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := newStore()
		if err != nil {
			return err
		}
		return errors.E("default", browser.Launch(cfg, browser.Options{URL: urlArg(args)}))
	},
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}
