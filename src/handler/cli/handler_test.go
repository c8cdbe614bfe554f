package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIsolatedHandler(t *testing.T) *Handler {
	t.Helper()
	// Keep default config-file resolution away from the developer's
	// environment.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	h := New()
	h.rootCmd.SetOut(io.Discard)
	h.rootCmd.SetErr(io.Discard)
	return h
}

func TestUnknownCommandFails(t *testing.T) {
	h := newIsolatedHandler(t)
	h.rootCmd.SetArgs([]string{"frobnicate"})
	assert.Error(t, h.Execute())
}

func TestLanguagesCommand(t *testing.T) {
	h := newIsolatedHandler(t)
	h.rootCmd.SetArgs([]string{"languages"})
	assert.NoError(t, h.Execute())
}

func TestAnalyzeRequiresExactlyOnePath(t *testing.T) {
	h := newIsolatedHandler(t)
	h.rootCmd.SetArgs([]string{"analyze"})
	assert.Error(t, h.Execute())

	h = newIsolatedHandler(t)
	h.rootCmd.SetArgs([]string{"analyze", "a", "b"})
	assert.Error(t, h.Execute())
}

func TestAnalyzeWritesReportFiles(t *testing.T) {
	h := newIsolatedHandler(t)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(src, "app.py"), []byte("x = 1\n"), 0o644))
	out := filepath.Join(t.TempDir(), "reports")

	h.rootCmd.SetArgs([]string{"analyze", src, "-o", out, "-f", "json"})
	require.NoError(t, h.Execute())

	assert.FileExists(t, filepath.Join(out, filepath.Base(src)+"-analysis.json"))
}

func TestExplicitMissingConfigFails(t *testing.T) {
	h := newIsolatedHandler(t)
	h.rootCmd.SetArgs([]string{"languages", "--config", "does-not-exist.yaml"})
	assert.Error(t, h.Execute())
}
