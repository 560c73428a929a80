package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/crossforge/internal/kind"
	"github.com/vk/crossforge/internal/task"
)

func TestConfigureAll(t *testing.T) {
	f := newFixture(t, "linux_x64", nil, "")
	cfg, err := New(testCtx(), f.params("game", kind.Executable,
		[]string{"linux_x64", "linux_arm64"}))
	require.NoError(t, err)

	cfg.ConfigureAll(func(tk *task.Task) {
		tk.ExtraOpts = append(tk.ExtraOpts, "-O2")
	})

	for _, tk := range cfg.Tasks() {
		assert.Equal(t, []string{"-O2"}, tk.ExtraOpts)
	}
}

func TestConfigureTarget(t *testing.T) {
	t.Run("applies to exactly one task", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable,
			[]string{"linux_x64", "linux_arm64"}))
		require.NoError(t, err)

		err = cfg.ConfigureTarget(testCtx(), "linux_arm64", func(tk *task.Task) {
			tk.Libraries = append(tk.Libraries, "neon")
		})
		require.NoError(t, err)

		arm, err := cfg.GetByTarget("linux_arm64")
		require.NoError(t, err)
		assert.Equal(t, []string{"neon"}, arm.Libraries)

		x64, err := cfg.GetByTarget("linux_x64")
		require.NoError(t, err)
		assert.Empty(t, x64.Libraries)
	})

	t.Run("unknown target name is a hard error", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable, []string{"linux_x64"}))
		require.NoError(t, err)

		err = cfg.ConfigureTarget(testCtx(), "amiga_68k", func(*task.Task) {})
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown target")
	})

	t.Run("host-disabled target is a warning no-op", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable,
			[]string{"linux_x64", "windows_x64"}))
		require.NoError(t, err)

		called := false
		err = cfg.ConfigureTarget(testCtx(), "windows_x64", func(*task.Task) { called = true })
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("kind-unsupported target is a warning no-op", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable,
			[]string{"linux_x64", "wasm32"}))
		require.NoError(t, err)

		called := false
		err = cfg.ConfigureTarget(testCtx(), "wasm32", func(*task.Task) { called = true })
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("buildable but undeclared target is an error", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable, []string{"linux_x64"}))
		require.NoError(t, err)

		err = cfg.ConfigureTarget(testCtx(), "linux_arm64", func(*task.Task) {})
		require.Error(t, err)
		assert.ErrorContains(t, err, "not declared for artifact 'game'")
	})
}

func TestArtifactNameAndBaseDir(t *testing.T) {
	t.Run("default policy re-derives dir and keeps policy", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "")
		cfg, err := New(testCtx(), f.params("game", kind.Executable, []string{"linux_x64"}))
		require.NoError(t, err)

		cfg.BaseDir("dist")
		cfg.ArtifactName("game-demo")

		tk := cfg.Tasks()[0]
		assert.Equal(t, "dist/linuxX64", tk.DestDir)
		assert.Equal(t, "game-demo", tk.BaseName)
	})

	t.Run("override policy keeps shared dir and re-suffixes", func(t *testing.T) {
		f := newFixture(t, "linux_x64", nil, "/out")
		cfg, err := New(testCtx(), f.params("game", kind.Executable, []string{"linux_x64"}))
		require.NoError(t, err)

		cfg.ArtifactName("demo")
		cfg.BaseDir("dist") // no visible effect while the override is active

		tk := cfg.Tasks()[0]
		assert.Equal(t, "/out", tk.DestDir)
		assert.Equal(t, "demo_linuxX64", tk.BaseName)
	})
}

func TestUniformSetters(t *testing.T) {
	f := newFixture(t, "linux_x64", nil, "")
	cfg, err := New(testCtx(), f.params("game", kind.Executable,
		[]string{"linux_x64", "linux_arm64"}))
	require.NoError(t, err)

	cfg.Libraries("m", "pthread")
	cfg.NoDefaultLibs(true)
	cfg.DumpParameters(true)
	cfg.ExtraOpts("-g")
	cfg.DependsOn("generateSources")

	for _, tk := range cfg.Tasks() {
		assert.Equal(t, []string{"m", "pthread"}, tk.Libraries)
		assert.True(t, tk.NoDefaultLibs)
		assert.True(t, tk.DumpParameters)
		assert.Equal(t, []string{"-g"}, tk.ExtraOpts)
		assert.Equal(t, []string{"generateSources"}, tk.ExtraDeps)
	}
}
