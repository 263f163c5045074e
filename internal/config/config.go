package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// AppName is the name of the application
	AppName = "newchrome"
	// TemplatesDirName holds the reusable template profiles
	TemplatesDirName = "templates"
	// ProfilesDirName holds the per-name working instances
	ProfilesDirName = "profiles"
	// RulesFileName is the declarative URL rule file used by `auto`
	RulesFileName = "config.yaml"
	// DefaultProfileName is used when no --name is given
	DefaultProfileName = "default"
	// DefaultURL is opened when no url argument is given
	DefaultURL = "about:blank"
	// DefaultDarwinBrowser is the application name passed to `open -na`
	DefaultDarwinBrowser = "Google Chrome"
	// DefaultBrowserBinary is executed directly on non-darwin systems
	DefaultBrowserBinary = "google-chrome"
)

// Config holds the application's configuration.
type Config struct {
	homeDir string
	tempDir string
	goos    string
	browser string
	opener  []string
}

// New creates a new Config instance.
var New = func() (*Config, error) {
	var home string
	var err error

	// NEWCHROME_HOME relocates the whole tree, mostly for tests.
	homeOverride := os.Getenv("NEWCHROME_HOME")
	if homeOverride != "" {
		home = homeOverride
	} else {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		homeDir: home,
		tempDir: os.Getenv("NEWCHROME_TMPDIR"),
		goos:    runtime.GOOS,
		browser: os.Getenv("NEWCHROME_BROWSER"),
	}
	if opener := strings.TrimSpace(os.Getenv("NEWCHROME_OPEN")); opener != "" {
		cfg.opener = strings.Fields(opener)
	}
	return cfg, nil
}

// GetAppDir returns the path to the application's hidden directory.
func (c *Config) GetAppDir() string {
	return filepath.Join(c.homeDir, "."+AppName)
}

// TemplatesDir returns the root holding template profiles.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.GetAppDir(), TemplatesDirName)
}

// ProfilesDir returns the root holding instance profiles.
func (c *Config) ProfilesDir() string {
	return filepath.Join(c.GetAppDir(), ProfilesDirName)
}

// RulesFile returns the path of the optional rule file.
func (c *Config) RulesFile() string {
	return filepath.Join(c.GetAppDir(), RulesFileName)
}

// TempDir returns the root under which ephemeral copies are made.
func (c *Config) TempDir() string {
	if c.tempDir != "" {
		return c.tempDir
	}
	return os.TempDir()
}

// SetHomeDir sets the application's home directory.
func (c *Config) SetHomeDir(dir string) {
	c.homeDir = dir
}

// SetTempDir sets the root for ephemeral copies.
func (c *Config) SetTempDir(dir string) {
	c.tempDir = dir
}

// SetPlatform overrides the detected GOOS.
func (c *Config) SetPlatform(goos string) {
	c.goos = goos
}

// SetBrowser sets the browser application (darwin) or binary name.
func (c *Config) SetBrowser(name string) {
	c.browser = name
}

// SetOpener sets an explicit launch prefix, replacing the platform default.
func (c *Config) SetOpener(argv []string) {
	c.opener = argv
}

// Browser returns the configured browser name, falling back to the
// platform default.
func (c *Config) Browser() string {
	if c.browser != "" {
		return c.browser
	}
	if c.goos == "darwin" {
		return DefaultDarwinBrowser
	}
	return DefaultBrowserBinary
}

// LaunchPrefix returns the argv that precedes browser arguments.
// On darwin the browser is started through `open -na <app> --args` so that a
// new instance is spawned even if one is already running.
func (c *Config) LaunchPrefix() []string {
	if len(c.opener) > 0 {
		return append([]string(nil), c.opener...)
	}
	if c.goos == "darwin" {
		return []string{"open", "-na", c.Browser(), "--args"}
	}
	return []string{c.Browser()}
}

// Detached reports whether the launch prefix runs the browser itself, in
// which case the process must be started and released rather than awaited.
func (c *Config) Detached() bool {
	prefix := c.LaunchPrefix()
	return filepath.Base(prefix[0]) != "open"
}

// SetupError is returned when the template or instance roots cannot be created.
type SetupError struct {
	TemplatesDir string
	ProfilesDir  string
	Err          error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("error creating required directories (%s, %s): %v", e.TemplatesDir, e.ProfilesDir, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// EnsureDirs creates the template and instance roots, including parents.
func (c *Config) EnsureDirs() error {
	dirs := []string{c.TemplatesDir(), c.ProfilesDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SetupError{
				TemplatesDir: c.TemplatesDir(),
				ProfilesDir:  c.ProfilesDir(),
				Err:          err,
			}
		}
	}
	return nil
}
