package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// readOrder lists dir in filesystem order, keeping names starting with
// prefix.
func readOrder(t *testing.T, dir, prefix string) []string {
	t.Helper()
	f, err := os.Open(dir)
	require.NoError(t, err)
	defer f.Close()
	names, err := f.Readdirnames(-1)
	require.NoError(t, err)

	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name      string
		templates []string
		args      []string
		filter    string
		want      []string
	}{
		{
			name:      "all templates",
			templates: []string{"work", "abcdef", "abc", "zeta"},
			args:      []string{"ls"},
			want:      []string{"abc", "abcdef", "work", "zeta"},
		},
		{
			name:      "prefix filter",
			templates: []string{"work", "abcdef", "xabc", "abc"},
			args:      []string{"ls", "abc"},
			filter:    "abc",
			want:      []string{"abc", "abcdef"},
		},
		{
			name:      "list alias",
			templates: []string{"one"},
			args:      []string{"list"},
			want:      []string{"one"},
		},
		{
			name: "no templates",
			args: []string{"ls"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupMocks(t)
			for _, name := range tt.templates {
				env.seedTemplate(t, name)
			}

			output, err := executeCommand(rootCmd, tt.args...)
			require.NoError(t, err)
			got := lines(output)
			assert.ElementsMatch(t, tt.want, got)
			assert.Equal(t, readOrder(t, env.cfg.TemplatesDir(), tt.filter), got)
		})
	}
}

func TestListIgnoresInstances(t *testing.T) {
	env := setupMocks(t)
	env.seedTemplate(t, "tmpl")
	_, err := env.store.Materialize("tmpl")
	require.NoError(t, err)
	_, err = env.store.EnsureTemplate("other")
	require.NoError(t, err)
	require.NoError(t, env.store.Reset("other"))

	output, err := executeCommand(rootCmd, "ls")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tmpl", "other"}, lines(output))
}

func TestListLong(t *testing.T) {
	env := setupMocks(t)
	env.seedTemplate(t, "launched")
	env.seedTemplate(t, "pristine")
	_, err := env.store.Materialize("launched")
	require.NoError(t, err)

	output, err := executeCommand(rootCmd, "ls", "--long")
	require.NoError(t, err)

	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "INSTANCE")
	for _, l := range lines(output) {
		if strings.Contains(l, "launched") {
			assert.Contains(t, l, "present")
		}
		if strings.Contains(l, "pristine") {
			assert.Contains(t, l, "none")
		}
	}
}

func TestListLongEmpty(t *testing.T) {
	setupMocks(t)

	output, err := executeCommand(rootCmd, "ls", "-l")
	require.NoError(t, err)
	assert.Contains(t, output, "No templates found.")
}
