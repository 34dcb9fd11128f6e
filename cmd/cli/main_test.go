package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error is guaranteed to panic during the
	// loading phase inside app.NewApp().
	invalidHCL := `
		combine {
			networks =
	`
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "netviz.hcl")
	err := os.WriteFile(configPath, []byte(invalidHCL), 0o600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"--no-render", "--config", configPath, tempDir}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// An unknown flag makes cli.Parse fail.
	err := run(&bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	networksDir := filepath.Join(tempDir, "networks")
	outDir := filepath.Join(tempDir, "out")
	require.NoError(t, os.Mkdir(networksDir, 0o755))
	require.NoError(t, os.Mkdir(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(networksDir, "net1.txt"),
		[]byte("UniProtName_A UniProtName_B\nP1 P2\n"), 0o644))

	args := []string{"--no-render", "--out", outDir, networksDir}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(outDir, "combined_network.txt"))
	require.NoError(t, err)
	require.Equal(t, "P1\tP2\n", string(data))
}
