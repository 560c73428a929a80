package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/crossforge/internal/placement"
	"github.com/vk/crossforge/internal/target"
)

func mustByName(t *testing.T, name string) *target.Descriptor {
	t.Helper()
	d, err := target.ByName(name)
	require.NoError(t, err)
	return d
}

func TestCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"game", "Game"},
		{"my-game", "MyGame"},
		{"my_game2", "MyGame2"},
		{"Game", "Game"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, camel(tt.in), "camel(%q)", tt.in)
	}
}

func TestCreateTarget(t *testing.T) {
	ctx := context.Background()
	linux := mustByName(t, "linux_x64")

	t.Run("derives name and placement deterministically", func(t *testing.T) {
		f := NewFactory("my-game", placement.NewResolver(""), NewNamespace())

		tk, err := f.CreateTarget(ctx, linux, "build", "my-game")
		require.NoError(t, err)
		assert.Equal(t, "buildMyGameLinuxX64", tk.Name)
		assert.Equal(t, TargetBuild, tk.Kind)
		assert.Equal(t, "linux_x64", tk.TargetID)
		assert.Equal(t, "build/linuxX64", tk.DestDir)
		assert.Equal(t, "my-game", tk.BaseName)
		assert.Equal(t, Group, tk.Group)
		assert.Contains(t, tk.Description, "my-game")
		assert.Contains(t, tk.Description, "linuxX64")
	})

	t.Run("name collision surfaces immediately", func(t *testing.T) {
		names := NewNamespace()
		// Two artifact names that camel-case to the same fragment.
		f1 := NewFactory("my-game", placement.NewResolver(""), names)
		f2 := NewFactory("my_game", placement.NewResolver(""), names)

		_, err := f1.CreateTarget(ctx, linux, "build", "my-game")
		require.NoError(t, err)

		_, err = f2.CreateTarget(ctx, linux, "build", "my_game")
		require.Error(t, err)
		assert.ErrorContains(t, err, "task name collision")
		assert.ErrorContains(t, err, "my_game")
	})
}

func TestCreateAggregateAndHost(t *testing.T) {
	ctx := context.Background()
	names := NewNamespace()
	f := NewFactory("game", placement.NewResolver(""), names)

	agg, err := f.CreateAggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buildGame", agg.Name)
	assert.Equal(t, Aggregate, agg.Kind)
	assert.Empty(t, agg.TargetID)

	host, err := f.CreateHostAlias(ctx, mustByName(t, "macos_arm64"))
	require.NoError(t, err)
	assert.Equal(t, "buildGameHost", host.Name)
	assert.Equal(t, HostAlias, host.Kind)
	assert.Equal(t, "macos_arm64", host.TargetID)
	assert.Contains(t, host.Description, "macosArm64")
}

func TestNamespaceClaim(t *testing.T) {
	n := NewNamespace()
	require.NoError(t, n.Claim("buildGame"))
	err := n.Claim("buildGame")
	require.Error(t, err)
	assert.ErrorContains(t, err, "already declared")
}

func TestNewUmbrella(t *testing.T) {
	names := NewNamespace()
	u, err := NewUmbrella(names)
	require.NoError(t, err)
	assert.Equal(t, "buildAll", u.Name)
	assert.Equal(t, Umbrella, u.Kind)

	_, err = NewUmbrella(names)
	assert.Error(t, err)
}
