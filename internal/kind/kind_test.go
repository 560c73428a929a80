package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/crossforge/internal/target"
)

func mustByName(t *testing.T, name string) *target.Descriptor {
	t.Helper()
	d, err := target.ByName(name)
	require.NoError(t, err)
	return d
}

func TestByName(t *testing.T) {
	k, err := ByName("executable")
	require.NoError(t, err)
	assert.Same(t, Executable, k)
	assert.Equal(t, "bin", k.DefaultBaseDir)

	_, err = ByName("kernel_module")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown artifact kind 'kernel_module'")
}

func TestSupports(t *testing.T) {
	wasm := mustByName(t, "wasm32")
	linux := mustByName(t, "linux_x64")

	t.Run("executable vetoes wasm32", func(t *testing.T) {
		ok, reason := Executable.Supports(wasm)
		assert.False(t, ok)
		assert.NotEmpty(t, reason)
	})

	t.Run("shared lib vetoes wasm32", func(t *testing.T) {
		ok, _ := SharedLib.Supports(wasm)
		assert.False(t, ok)
	})

	t.Run("static lib supports every target", func(t *testing.T) {
		for _, d := range target.All() {
			ok, reason := StaticLib.Supports(d)
			assert.True(t, ok, "target %s vetoed: %s", d.ID, reason)
		}
	})

	t.Run("support is independent of host capability", func(t *testing.T) {
		ok, reason := Executable.Supports(linux)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})
}

func TestFileName(t *testing.T) {
	linux := mustByName(t, "linux_x64")
	windows := mustByName(t, "windows_x64")
	macos := mustByName(t, "macos_arm64")

	tests := []struct {
		kind   *Kind
		target *target.Descriptor
		want   string
	}{
		{Executable, linux, "game"},
		{Executable, windows, "game.exe"},
		{StaticLib, linux, "libgame.a"},
		{StaticLib, windows, "game.lib"},
		{SharedLib, linux, "libgame.so"},
		{SharedLib, windows, "game.dll"},
		{SharedLib, macos, "libgame.dylib"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.FileName("game", tt.target),
			"%s on %s", tt.kind.Name, tt.target.ID)
	}
}
