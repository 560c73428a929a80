package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		artifact "game" {
			targets = [
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "build.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_DumpsGraph(t *testing.T) {
	t.Parallel()

	manifest := `
artifact "tool" {
  kind    = "static_lib"
  targets = ["wasm32"]
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "build.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(manifest), 0600))

	out := &bytes.Buffer{}
	// wasm32 is enabled on every host, so this passes regardless of the
	// machine running the tests.
	err := run(out, []string{"-log-level", "error", "-log-format", "text", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "buildToolWasm32")
	require.Contains(t, out.String(), "buildAll")
}
