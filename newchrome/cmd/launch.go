package cmd

import (
	"fmt"
	"io/fs"

	"newchrome/internal/browser"
	"newchrome/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var launchOpts launchOptions

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch [url]",
	Short: "Launch a browser profile",
	Long: `Launch the named profile. On first use the template is copied into a
working instance; later launches reuse the existing instance as is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(urlArg(args), launchOpts)
	},
}

func runLaunch(url string, opts launchOptions) error {
	cfg, store, err := newStore()
	if err != nil {
		return err
	}

	var existed bool
	err = withSpinner(fmt.Sprintf("Preparing instance '%s'...", opts.name), func() error {
		var err error
		existed, err = store.Materialize(opts.name)
		return err
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.E("launch", fmt.Errorf("%w (run `newchrome edit %s` to create the template)", err, opts.name))
		}
		return errors.E("launch", err)
	}
	if existed {
		color.Cyan("i launching existing instance")
	} else {
		color.Green("✔ Instance '%s' created from template.", opts.name)
	}

	return errors.E("launch", browser.Launch(cfg, browser.Options{
		UserDataDir: store.InstancePath(opts.name),
		Flags:       browser.SplitFlags(opts.flags),
		URL:         url,
	}))
}

func init() {
	launchOpts.register(launchCmd)
	rootCmd.AddCommand(launchCmd)
}
