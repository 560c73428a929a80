package artifact

import (
	"context"
	"fmt"

	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/graph"
	"github.com/vk/crossforge/internal/kind"
	"github.com/vk/crossforge/internal/placement"
	"github.com/vk/crossforge/internal/target"
	"github.com/vk/crossforge/internal/task"
)

// Params carries everything a Config needs, injected explicitly: no ambient
// project state is read.
type Params struct {
	// Name is the artifact name, unique within the project.
	Name string
	// Kind supplies the default base directory and the support veto.
	Kind *kind.Kind
	// Targets are the declared target identifiers, in declaration order.
	Targets []string
	// Requested is the subset of target ids selected for this invocation.
	// Empty means "all declared targets are requested".
	Requested map[string]struct{}
	// BaseDir overrides the kind's default base directory when non-empty.
	BaseDir string
	// ArtifactName overrides the output base name (defaults to Name).
	ArtifactName string

	Resolver  *target.Resolver
	Placer    *placement.Resolver
	Namespace *task.Namespace
	Graph     *graph.Graph
	// Umbrella is the project-wide "build everything" task; the artifact's
	// aggregate task is declared as one of its dependencies.
	Umbrella *task.Task
}

// Config owns one named build artifact and its registered per-target tasks.
type Config struct {
	name         string
	kind         *kind.Kind
	baseDir      string
	artifactName string

	resolver *target.Resolver
	placer   *placement.Resolver
	factory  *task.Factory
	graph    *graph.Graph

	// tasks maps each registered target to its build task. The mapping is
	// injective: at most one task per descriptor, enforced at registration.
	tasks map[*target.Descriptor]*task.Task
	// order preserves registration order for deterministic iteration.
	order []*target.Descriptor

	outcomes  []Outcome
	aggregate *task.Task
	hostTask  *task.Task
}

// New constructs a Config and runs the four construction phases: resolve,
// filter & create, aggregate, host alias. Environment limitations (disabled
// or unsupported targets) are warnings; everything else returned as an error
// aborts configuration for this artifact.
func New(ctx context.Context, p Params) (*Config, error) {
	logger := ctxlog.FromContext(ctx).With("artifact", p.Name)

	c := &Config{
		name:         p.Name,
		kind:         p.Kind,
		baseDir:      p.BaseDir,
		artifactName: p.ArtifactName,
		resolver:     p.Resolver,
		placer:       p.Placer,
		graph:        p.Graph,
		tasks:        make(map[*target.Descriptor]*task.Task),
	}
	if c.baseDir == "" {
		c.baseDir = p.Kind.DefaultBaseDir
	}
	if c.artifactName == "" {
		c.artifactName = p.Name
	}
	c.factory = task.NewFactory(p.Name, p.Placer, p.Namespace)

	// Phase 1: resolve declared identifiers into descriptors, deduplicated.
	resolved, err := p.Resolver.Resolve(ctx, p.Targets)
	if err != nil {
		return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
	}
	logger.Debug("Declared targets resolved.", "count", len(resolved))

	// Phase 2: filter on enablement and support, create and register tasks.
	for _, d := range resolved {
		if !p.Resolver.Enabled(d) {
			reason := fmt.Sprintf("host cannot build target '%s'", d.ID)
			logger.Warn("Skipping target: not buildable on this host.", "target", d.ID)
			c.outcomes = append(c.outcomes, Outcome{Target: d, Status: StatusSkippedDisabled, Reason: reason})
			continue
		}
		if ok, reason := p.Kind.Supports(d); !ok {
			logger.Warn("Skipping target: unsupported by artifact kind.",
				"target", d.ID, "kind", p.Kind.Name, "reason", reason)
			c.outcomes = append(c.outcomes, Outcome{Target: d, Status: StatusSkippedUnsupported, Reason: reason})
			continue
		}

		t, err := c.factory.CreateTarget(ctx, d, c.baseDir, c.artifactName)
		if err != nil {
			c.outcomes = append(c.outcomes, Outcome{Target: d, Status: StatusFailed, Err: err})
			return nil, err
		}
		if err := c.register(d, t); err != nil {
			return nil, err
		}
	}

	// Phase 3: aggregate task over the requested subset of registered tasks.
	c.aggregate, err = c.factory.CreateAggregate(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.graph.AddNode(c.aggregate); err != nil {
		return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
	}
	for _, d := range c.order {
		if !requested(p.Requested, d) {
			logger.Debug("Target declared but not requested for this run.", "target", d.ID)
			continue
		}
		if err := c.graph.AddEdge(c.tasks[d].Name, c.aggregate.Name); err != nil {
			return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
		}
	}
	if p.Umbrella != nil {
		if err := c.graph.AddEdge(c.aggregate.Name, p.Umbrella.Name); err != nil {
			return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
		}
	}

	// Phase 4: host alias, only when the host target itself got a task.
	if host := p.Resolver.Host(); host != nil {
		if hostBuild, ok := c.tasks[host]; ok {
			c.hostTask, err = c.factory.CreateHostAlias(ctx, host)
			if err != nil {
				return nil, err
			}
			if err := c.graph.AddNode(c.hostTask); err != nil {
				return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
			}
			if err := c.graph.AddEdge(hostBuild.Name, c.hostTask.Name); err != nil {
				return nil, fmt.Errorf("artifact '%s': %w", p.Name, err)
			}
		} else {
			logger.Debug("No task registered for host target, skipping host alias.", "host", host.ID)
		}
	}

	return c, nil
}

// register enters a task into the target→task mapping and the graph.
// Re-registration of an already-mapped target is a broken invariant.
func (c *Config) register(d *target.Descriptor, t *task.Task) error {
	if _, exists := c.tasks[d]; exists {
		return fmt.Errorf("artifact '%s': target '%s' already has a registered task", c.name, d.ID)
	}
	if err := c.graph.AddNode(t); err != nil {
		return fmt.Errorf("artifact '%s': %w", c.name, err)
	}
	c.tasks[d] = t
	c.order = append(c.order, d)
	c.outcomes = append(c.outcomes, Outcome{Target: d, Status: StatusCreated})
	return nil
}

// requested reports whether the target is part of the current invocation.
// An empty requested set means every declared target is requested.
func requested(set map[string]struct{}, d *target.Descriptor) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[d.ID]
	return ok
}

// Name returns the artifact name.
func (c *Config) Name() string {
	return c.name
}

// Kind returns the artifact kind descriptor.
func (c *Config) Kind() *kind.Kind {
	return c.kind
}

// Tasks returns the registered per-target tasks in registration order.
func (c *Config) Tasks() []*task.Task {
	out := make([]*task.Task, 0, len(c.order))
	for _, d := range c.order {
		out = append(out, c.tasks[d])
	}
	return out
}

// AggregateTask returns the artifact's aggregate task.
func (c *Config) AggregateTask() *task.Task {
	return c.aggregate
}

// HostTask returns the host alias task, or nil when the host target has no
// registered build task.
func (c *Config) HostTask() *task.Task {
	return c.hostTask
}

// Outcomes returns the per-target results of the filter-and-create phase, in
// resolution order.
func (c *Config) Outcomes() []Outcome {
	return c.outcomes
}
