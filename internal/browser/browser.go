// Package browser starts the browser against a user-data directory.
package browser

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"newchrome/internal/config"
	"newchrome/internal/runner"

	"github.com/fatih/color"
)

// execCommand is a variable to allow mocking of exec.Command in tests
var execCommand = exec.Command

// Options describes a single browser launch.
type Options struct {
	// UserDataDir is passed as --user-data-dir. Empty means the browser's
	// own default profile.
	UserDataDir string
	// Flags are extra browser arguments, one per element.
	Flags []string
	// URL is opened in the new window. Empty opens nothing.
	URL string
}

// SplitFlags turns the raw --flags values into individual arguments.
func SplitFlags(values []string) []string {
	var flags []string
	for _, v := range values {
		flags = append(flags, strings.Fields(v)...)
	}
	return flags
}

// Args builds the full argument vector. No shell is involved, so names,
// flags and URLs are passed through literally.
func Args(prefix []string, opts Options) []string {
	argv := append([]string(nil), prefix...)
	if opts.UserDataDir != "" {
		argv = append(argv, "--user-data-dir="+opts.UserDataDir)
	}
	argv = append(argv, opts.Flags...)
	if opts.URL != "" {
		argv = append(argv, opts.URL)
	}
	return argv
}

// Launch starts the browser described by opts.
var Launch = func(cfg *config.Config, opts Options) error {
	argv := Args(cfg.LaunchPrefix(), opts)
	if len(argv) == 0 || argv[0] == "" {
		return fmt.Errorf("no browser command configured")
	}

	fmt.Println("Executing command:", Format(argv))
	cmd := execCommand(argv[0], argv[1:]...)
	if cfg.Detached() {
		if err := runner.StartDetached(cmd); err != nil {
			return err
		}
	} else if err := runner.Run(cmd); err != nil {
		return err
	}
	color.Green("✔ Browser launched.")
	return nil
}

// Format renders argv for display, quoting arguments that contain spaces.
func Format(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			parts[i] = strconv.Quote(a)
		} else {
			parts[i] = a
		}
	}
	return strings.Join(parts, " ")
}
