package cmd

import (
	"testing"

	"newchrome/internal/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRules = `
rules:
  - prefix: https://github.com/work-org
    profile: work
  - host: example.com
    profile: mail
`

func TestAutoWithoutConfigFallsBack(t *testing.T) {
	env := setupMocks(t)

	output, err := executeCommand(rootCmd, "auto", "https://example.com", "-f", "--incognito")
	require.NoError(t, err)
	assert.Contains(t, output, "No rule matched")

	require.Len(t, env.launches, 1)
	assert.Equal(t, browser.Options{URL: "https://example.com"}, env.launches[0])
}

func TestAutoDefaultURL(t *testing.T) {
	env := setupMocks(t)

	_, err := executeCommand(rootCmd, "auto")
	require.NoError(t, err)

	require.Len(t, env.launches, 1)
	assert.Equal(t, browser.Options{URL: "about:blank"}, env.launches[0])
}

func TestAutoRules(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantDir string
	}{
		{name: "prefix rule", url: "https://github.com/work-org/infra", wantDir: "work"},
		{name: "host rule", url: "https://mail.example.com/inbox", wantDir: "mail"},
		{name: "no match", url: "https://news.ycombinator.com", wantDir: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupMocks(t)
			env.writeRules(t, testRules)

			_, err := executeCommand(rootCmd, "auto", tt.url, "--flags=--new-window")
			require.NoError(t, err)

			require.Len(t, env.launches, 1)
			got := env.launches[0]
			assert.Equal(t, tt.url, got.URL)
			if tt.wantDir == "" {
				assert.Empty(t, got.UserDataDir)
				assert.Empty(t, got.Flags)
				return
			}
			assert.Equal(t, env.store.InstancePath(tt.wantDir), got.UserDataDir)
			assert.Equal(t, []string{"--new-window"}, got.Flags)
		})
	}
}

func TestAutoInvalidConfig(t *testing.T) {
	env := setupMocks(t)
	env.writeRules(t, "rules:\n  - profile: work\n")

	_, err := executeCommand(rootCmd, "auto", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto failed")
	assert.Contains(t, err.Error(), "rule 1")
	assert.Empty(t, env.launches)
}

func TestAutoRejectsUnsafeProfileName(t *testing.T) {
	env := setupMocks(t)
	env.writeRules(t, "rules:\n  - prefix: https://\n    profile: ../../etc\n")

	_, err := executeCommand(rootCmd, "auto", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile name")
	assert.Empty(t, env.launches)
}
