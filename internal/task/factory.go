package task

import (
	"context"
	"fmt"

	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/placement"
	"github.com/vk/crossforge/internal/target"
)

// Factory creates the tasks belonging to one build artifact. Names are
// derived deterministically from the artifact name and the target's visible
// name and claimed from the shared project namespace.
type Factory struct {
	artifact string
	placer   *placement.Resolver
	names    *Namespace
}

// NewFactory builds a factory for one artifact. The namespace is shared
// across all factories of a project so cross-artifact collisions surface too.
func NewFactory(artifactName string, placer *placement.Resolver, names *Namespace) *Factory {
	return &Factory{artifact: artifactName, placer: placer, names: names}
}

// CreateTarget creates the build task for one target, placing its output via
// the run's placement policy. baseDir and artifactName are the artifact's
// current configurable values.
func (f *Factory) CreateTarget(ctx context.Context, d *target.Descriptor, baseDir, artifactName string) (*Task, error) {
	name := fmt.Sprintf("build%s%s", camel(f.artifact), d.TaskSuffix())
	if err := f.names.Claim(name); err != nil {
		return nil, fmt.Errorf("creating task for target '%s' of artifact '%s': %w", d.ID, f.artifact, err)
	}

	place := f.placer.Place(d, baseDir, artifactName)
	t := &Task{
		Name:        name,
		Kind:        TargetBuild,
		TargetID:    d.ID,
		DestDir:     place.Dir,
		BaseName:    place.BaseName,
		Group:       Group,
		Description: fmt.Sprintf("Builds artifact '%s' for target %s.", f.artifact, d.Visible),
	}
	ctxlog.FromContext(ctx).Debug("Created per-target build task.",
		"task", t.Name, "target", d.ID, "dest", t.DestDir, "base_name", t.BaseName)
	return t, nil
}

// CreateAggregate creates the artifact's aggregate task. Its dependency
// edges are declared by the orchestrator, not here.
func (f *Factory) CreateAggregate(ctx context.Context) (*Task, error) {
	name := "build" + camel(f.artifact)
	if err := f.names.Claim(name); err != nil {
		return nil, fmt.Errorf("creating aggregate task for artifact '%s': %w", f.artifact, err)
	}
	t := &Task{
		Name:        name,
		Kind:        Aggregate,
		Group:       Group,
		Description: fmt.Sprintf("Builds all requested targets of artifact '%s'.", f.artifact),
	}
	ctxlog.FromContext(ctx).Debug("Created aggregate task.", "task", t.Name)
	return t, nil
}

// CreateHostAlias creates the convenience task aliasing the host target's
// build task.
func (f *Factory) CreateHostAlias(ctx context.Context, host *target.Descriptor) (*Task, error) {
	name := "build" + camel(f.artifact) + "Host"
	if err := f.names.Claim(name); err != nil {
		return nil, fmt.Errorf("creating host task for artifact '%s': %w", f.artifact, err)
	}
	t := &Task{
		Name:        name,
		Kind:        HostAlias,
		TargetID:    host.ID,
		Group:       Group,
		Description: fmt.Sprintf("Builds artifact '%s' for the host target (%s).", f.artifact, host.Visible),
	}
	ctxlog.FromContext(ctx).Debug("Created host alias task.", "task", t.Name, "target", host.ID)
	return t, nil
}

// NewUmbrella creates the project-wide "build everything" task.
func NewUmbrella(names *Namespace) (*Task, error) {
	const name = "buildAll"
	if err := names.Claim(name); err != nil {
		return nil, fmt.Errorf("creating umbrella task: %w", err)
	}
	return &Task{
		Name:        name,
		Kind:        Umbrella,
		Group:       Group,
		Description: "Builds every declared artifact.",
	}, nil
}
