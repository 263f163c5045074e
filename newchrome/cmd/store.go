package cmd

import (
	"fmt"
	"os"
	"time"

	"newchrome/internal/config"
	"newchrome/internal/errors"
	"newchrome/internal/profile"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// launchOptions are the flags shared by the commands that start a profile.
type launchOptions struct {
	name  string
	flags []string
}

func (o *launchOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.name, "name", "n", config.DefaultProfileName, "Name of the profile to launch")
	cmd.Flags().StringArrayVarP(&o.flags, "flags", "f", nil, "Extra browser flags (repeatable, split on whitespace)")
	_ = cmd.RegisterFlagCompletionFunc("name", TemplateFlagCompleter)
}

// newStore resolves the directory layout and makes sure both roots exist.
// Failing to create them is fatal for every command.
func newStore() (*config.Config, *profile.Store, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureDirs(); err != nil {
		var setupErr *config.SetupError
		if errors.As(err, &setupErr) {
			fmt.Fprintln(os.Stderr, setupErr.TemplatesDir)
			fmt.Fprintln(os.Stderr, setupErr.ProfilesDir)
		}
		return nil, nil, err
	}
	return cfg, profile.NewStore(cfg), nil
}

// withSpinner runs fn while showing a spinner on stderr.
func withSpinner(suffix string, fn func() error) error {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()

	if err := fn(); err != nil {
		s.FinalMSG = color.RedString("✖ %s\n", suffix)
		return err
	}
	s.FinalMSG = ""
	return nil
}
