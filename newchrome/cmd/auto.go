package cmd

import (
	"newchrome/internal/browser"
	"newchrome/internal/errors"
	"newchrome/internal/profile"
	"newchrome/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var autoFlags []string

// autoCmd represents the auto command
var autoCmd = &cobra.Command{
	Use:   "auto [url]",
	Short: "Launch the profile selected by the url rules in the config file",
	Long: `Pick a profile for the url using the rules in ~/.newchrome/config.yaml.
The first matching rule wins. When nothing matches, or there is no config
file, the browser opens the url with its own default profile.

Example config.yaml:

  rules:
    - prefix: https://github.com/work-org
      profile: work
    - host: mail.example.com
      profile: mail
    - pattern: '^https?://([a-z]+\.)?bank\.'
      profile: banking`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := urlArg(args)

		cfg, store, err := newStore()
		if err != nil {
			return err
		}

		rs, err := rules.Load(cfg.RulesFile())
		if err != nil {
			return errors.E("auto", err)
		}

		name, ok := rs.Match(url)
		if !ok {
			color.Cyan("i No rule matched, using the default browser profile")
			return errors.E("auto", browser.Launch(cfg, browser.Options{URL: url}))
		}
		if err := profile.ValidateName(name); err != nil {
			return errors.E("auto", err)
		}

		color.Cyan("i Rule matched profile '%s'", name)
		return errors.E("auto", browser.Launch(cfg, browser.Options{
			UserDataDir: store.InstancePath(name),
			Flags:       browser.SplitFlags(autoFlags),
			URL:         url,
		}))
	},
}

func init() {
	autoCmd.Flags().StringArrayVarP(&autoFlags, "flags", "f", nil, "Extra browser flags (repeatable, split on whitespace)")
	rootCmd.AddCommand(autoCmd)
}
