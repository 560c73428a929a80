package artifact

import (
	"context"
	"fmt"

	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/target"
	"github.com/vk/crossforge/internal/task"
)

// Configurator mutates one task's configurable state. It is applied
// synchronously during the configuration phase and must not add or remove
// graph nodes or edges.
type Configurator func(*task.Task)

// ConfigureAll applies fn to every registered per-target task.
func (c *Config) ConfigureAll(fn Configurator) {
	for _, d := range c.order {
		fn(c.tasks[d])
	}
}

// ConfigureTarget applies fn to exactly one target's task.
//
// An unknown target name is a hard error (configuration typo). A known but
// host-disabled or kind-unsupported target is a warning no-op: configuring a
// target this environment cannot reach must not fail the build. A known,
// buildable target that was never declared for this artifact is an error.
func (c *Config) ConfigureTarget(ctx context.Context, name string, fn Configurator) error {
	logger := ctxlog.FromContext(ctx).With("artifact", c.name)

	d, err := target.ByName(name)
	if err != nil {
		return fmt.Errorf("artifact '%s': %w", c.name, err)
	}

	if t, ok := c.tasks[d]; ok {
		fn(t)
		return nil
	}

	if !c.resolver.Enabled(d) {
		logger.Warn("Ignoring configuration for target: not buildable on this host.", "target", d.ID)
		return nil
	}
	for _, o := range c.outcomes {
		if o.Target == d && o.Status == StatusSkippedUnsupported {
			logger.Warn("Ignoring configuration for target: unsupported by artifact kind.",
				"target", d.ID, "kind", c.kind.Name)
			return nil
		}
	}

	return fmt.Errorf("target '%s' is not declared for artifact '%s'", name, c.name)
}

// ArtifactName changes the output base name for every registered task. The
// destination strings are re-derived under the placement policy captured at
// construction; the policy itself never changes.
func (c *Config) ArtifactName(name string) {
	c.artifactName = name
	c.replaceAll()
}

// BaseDir changes the output base directory for every registered task. It
// has no visible effect while a placement override is active, since the
// override directory wins under that policy.
func (c *Config) BaseDir(dir string) {
	c.baseDir = dir
	c.replaceAll()
}

// replaceAll re-derives each task's destination and base name from the
// current configurable values.
func (c *Config) replaceAll() {
	for _, d := range c.order {
		place := c.placer.Place(d, c.baseDir, c.artifactName)
		t := c.tasks[d]
		t.DestDir = place.Dir
		t.BaseName = place.BaseName
	}
}

// Libraries appends libraries to link against, for every target.
func (c *Config) Libraries(libs ...string) {
	c.ConfigureAll(func(t *task.Task) {
		t.Libraries = append(t.Libraries, libs...)
	})
}

// NoDefaultLibs toggles linking of the default library set, for every target.
func (c *Config) NoDefaultLibs(flag bool) {
	c.ConfigureAll(func(t *task.Task) {
		t.NoDefaultLibs = flag
	})
}

// DumpParameters toggles compiler-invocation parameter dumps, for every target.
func (c *Config) DumpParameters(flag bool) {
	c.ConfigureAll(func(t *task.Task) {
		t.DumpParameters = flag
	})
}

// ExtraOpts appends extra compiler options, for every target.
func (c *Config) ExtraOpts(opts ...string) {
	c.ConfigureAll(func(t *task.Task) {
		t.ExtraOpts = append(t.ExtraOpts, opts...)
	})
}

// DependsOn declares extra task dependencies for every per-target task. The
// names are carried as task metadata for the external scheduler; they may
// refer to tasks outside the declared graph.
func (c *Config) DependsOn(names ...string) {
	c.ConfigureAll(func(t *task.Task) {
		t.ExtraDeps = append(t.ExtraDeps, names...)
	})
}
