package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "version provided", input: "v1.2.3", expected: "v1.2.3"},
		{name: "prerelease provided", input: "v0.1.0-rc1", expected: "v0.1.0-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, effectiveVersion(tt.input))
		})
	}
}

func TestEffectiveVersion_Fallback(t *testing.T) {
	result := effectiveVersion("")
	require.NotEmpty(t, result)

	if _, ok := debug.ReadBuildInfo(); !ok {
		assert.Equal(t, "unknown", result)
	}
}

// runCmd executes the root command with an isolated config file.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(config.ResetTestConfigPath)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return ansi.Strip(out.String()), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "folio "))
}

func TestPrintCommand(t *testing.T) {
	out, err := runCmd(t, "print", "--section", "contact", "--width", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Get in Touch")
	assert.NotContains(t, out, "Featured Projects")
}

func TestPrintCommand_UnknownSection(t *testing.T) {
	_, err := runCmd(t, "print", "--section", "blog")
	assert.ErrorContains(t, err, "unknown section")
}

func TestPrintCommand_ContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile:
  name: Ada Example
  role: Engineer
projects:
  - title: Analytical Engine
    shortDescription: Mechanical computing
    techTags: [brass, gears]
`), 0644))

	out, err := runCmd(t, "--content", path, "print", "--width", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "ADA EXAMPLE")

	out, err = runCmd(t, "--content", path, "print", "--section", "projects", "--width", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Analytical Engine")
}

func TestPrintCommand_BadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":{"name":"x"},"skills":[{"name":"Go","level":140}]}`), 0644))

	_, err := runCmd(t, "--content", path, "print")
	assert.Error(t, err)
}

func TestRootCommand_PrintsWithoutTerminal(t *testing.T) {
	out, err := runCmd(t)
	require.NoError(t, err)
	assert.Contains(t, out, "About Me", "a non-terminal writer gets the static page")
}

func TestRootCommand_BadTheme(t *testing.T) {
	_, err := runCmd(t, "--theme", "sepia", "print")
	assert.Error(t, err)
}
