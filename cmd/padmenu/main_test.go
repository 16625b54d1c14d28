package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".padmenu.json"), []byte("{"), 0o644))
	chdir(t, dir)

	err := run()
	assert.ErrorContains(t, err, "failed to load config")
}

func TestRun_BadLayoutReturnsAfterOpeningLog(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	logPath := filepath.Join(dir, "padmenu.log")
	t.Setenv("PADMENU_LOG_FILE", logPath)
	t.Setenv("PADMENU_LAYOUT", filepath.Join(dir, "missing.yaml"))

	err := run()
	assert.ErrorContains(t, err, "failed to build menu")

	// The log file was opened and released by run's deferred close.
	require.FileExists(t, logPath)
	require.NoError(t, os.Remove(logPath))
}
