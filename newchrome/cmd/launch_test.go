package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"newchrome/internal/browser"
	"newchrome/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchCommand(t *testing.T) {
	tests := []struct {
		name          string
		templates     []string
		args          []string
		expectedError string
		expectedOut   string
		wantLaunch    *browser.Options
	}{
		{
			name:        "creates instance from template",
			templates:   []string{"work"},
			args:        []string{"launch", "https://example.com", "--name", "work"},
			expectedOut: "Instance 'work' created from template",
			wantLaunch:  &browser.Options{URL: "https://example.com"},
		},
		{
			name:        "default name and url",
			templates:   []string{"default"},
			args:        []string{"launch"},
			expectedOut: "Instance 'default' created from template",
			wantLaunch:  &browser.Options{URL: "about:blank"},
		},
		{
			name:        "flags are split",
			templates:   []string{"default"},
			args:        []string{"launch", "-f", "--incognito --start-maximized"},
			expectedOut: "created from template",
			wantLaunch:  &browser.Options{URL: "about:blank", Flags: []string{"--incognito", "--start-maximized"}},
		},
		{
			name:          "missing template",
			args:          []string{"launch", "-n", "ghost"},
			expectedError: "newchrome edit ghost",
		},
		{
			name:          "invalid name",
			args:          []string{"launch", "-n", "../etc"},
			expectedError: "invalid profile name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupMocks(t)
			for _, name := range tt.templates {
				env.seedTemplate(t, name)
			}

			output, err := executeCommand(rootCmd, tt.args...)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Empty(t, env.launches)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output, tt.expectedOut)

			require.Len(t, env.launches, 1)
			got := env.launches[0]
			assert.Equal(t, tt.wantLaunch.URL, got.URL)
			assert.Equal(t, tt.wantLaunch.Flags, got.Flags)
			assert.Equal(t, env.store.InstancePath(nameOf(tt.args)), got.UserDataDir)
		})
	}
}

// nameOf extracts the --name/-n value from args, defaulting to "default".
func nameOf(args []string) string {
	for i, a := range args {
		if (a == "-n" || a == "--name") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return "default"
}

func TestLaunchTwiceReusesInstance(t *testing.T) {
	env := setupMocks(t)
	env.seedTemplate(t, "fresh")

	output, err := executeCommand(rootCmd, "launch", "-n", "fresh")
	require.NoError(t, err)
	assert.Contains(t, output, "created from template")

	// Simulate browsing in the instance.
	marker := filepath.Join(env.store.InstancePath("fresh"), "History")
	require.NoError(t, os.WriteFile(marker, []byte("visited"), 0644))

	output, err = executeCommand(rootCmd, "launch", "-n", "fresh")
	require.NoError(t, err)
	assert.Contains(t, output, "launching existing instance")
	assert.FileExists(t, marker)

	require.Len(t, env.launches, 2)
	assert.Equal(t, env.launches[0], env.launches[1])
}

func TestEditThenLaunch(t *testing.T) {
	env := setupMocks(t)

	_, err := executeCommand(rootCmd, "edit", "shopping")
	require.NoError(t, err)

	_, err = executeCommand(rootCmd, "launch", "-n", "shopping")
	require.NoError(t, err)

	require.Len(t, env.launches, 2)
	assert.Equal(t, browser.Options{UserDataDir: env.store.TemplatePath("shopping")}, env.launches[0])
	assert.Equal(t, env.store.InstancePath("shopping"), env.launches[1].UserDataDir)
	assert.DirExists(t, env.store.InstancePath("shopping"))
}

func TestLaunchBrowserFailure(t *testing.T) {
	env := setupMocks(t)
	env.seedTemplate(t, "default")
	browser.Launch = func(_ *config.Config, _ browser.Options) error {
		return assert.AnError
	}

	_, err := executeCommand(rootCmd, "launch")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "launch failed")
}
