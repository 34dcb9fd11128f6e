// Package testutil holds shared helpers for the end-to-end pipeline tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/netvizgo/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Result holds the outcomes of a pipeline test run.
type Result struct {
	// OutDir is where artifacts were written.
	OutDir string
	// NetworksDir is the temp input directory the network files were written to.
	NetworksDir string
	LogOutput   string
	Err         error
}

// WriteNetworkFiles writes the given name→content map into dir.
func WriteNetworkFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// RunPipeline provides a standardized harness for end-to-end tests: it writes
// the given network files into a temp input directory, runs the full app
// pipeline into a temp output directory, and returns the outcome. mutate, if
// non-nil, adjusts the config before the run. Rendering is off by default so
// artifact-focused tests stay fast; tests that want the page turn it back on.
func RunPipeline(t *testing.T, files map[string]string, mutate func(*app.Config)) *Result {
	t.Helper()

	tmpDir := t.TempDir()
	networksDir := filepath.Join(tmpDir, "networks")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(networksDir, 0o755))
	require.NoError(t, os.Mkdir(outDir, 0o755))

	WriteNetworkFiles(t, networksDir, files)

	cfg := &app.Config{
		NetworksPath: networksDir,
		OutputDir:    outDir,
		LogLevel:     "debug",
		LogFormat:    "text",
		NoRender:     true,
	}
	if mutate != nil {
		mutate(cfg)
	}

	logBuffer := &SafeBuffer{}

	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("pipeline panicked: %v", r)
			}
		}()
		pipelineApp := app.NewApp(logBuffer, cfg)
		runErr = pipelineApp.Run(context.Background())
	}()

	return &Result{
		OutDir:      outDir,
		NetworksDir: networksDir,
		LogOutput:   logBuffer.String(),
		Err:         runErr,
	}
}
