package cmd

import (
	"os"

	"newchrome/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootLaunch launchOptions

var rootCmd = &cobra.Command{
	Use:   "newchrome [url]",
	Short: "newchrome launches the browser with template-based profiles",
	Long: `newchrome keeps named template profiles under ~/.newchrome/templates and
launches the browser against a working instance of them (~/.newchrome/profiles).

Without a subcommand it behaves like "launch".`,
	// SilenceErrors is used to prevent cobra from printing the error,
	// as we handle it ourselves in the Execute function.
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(urlArg(args), rootLaunch)
	},
}

func init() {
	rootLaunch.register(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

// urlArg returns the optional url positional, defaulting to about:blank.
func urlArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultURL
}

// nameArg returns the optional name positional, defaulting to "default".
func nameArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultProfileName
}
