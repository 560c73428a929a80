// Package project scopes one build configuration run: the shared task
// namespace, the declared task graph, the buildAll umbrella task, and the
// artifacts registered under unique names.
package project

import (
	"context"
	"fmt"

	"github.com/vk/crossforge/internal/artifact"
	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/graph"
	"github.com/vk/crossforge/internal/placement"
	"github.com/vk/crossforge/internal/target"
	"github.com/vk/crossforge/internal/task"
)

// Project is the root of one configuration run.
type Project struct {
	resolver  *target.Resolver
	placer    *placement.Resolver
	names     *task.Namespace
	graph     *graph.Graph
	umbrella  *task.Task
	requested map[string]struct{}

	artifacts map[string]*artifact.Config
	order     []string
}

// New creates an empty project. requestedIDs narrows the targets built by
// aggregate tasks in this invocation; empty means "all declared". Each id is
// validated against the target registry up front, so a typo in a requested
// subset fails immediately rather than silently requesting nothing.
func New(ctx context.Context, resolver *target.Resolver, placer *placement.Resolver, requestedIDs []string) (*Project, error) {
	requested := make(map[string]struct{}, len(requestedIDs))
	for _, id := range requestedIDs {
		d, err := target.ByName(id)
		if err != nil {
			return nil, fmt.Errorf("requested targets: %w", err)
		}
		requested[d.ID] = struct{}{}
	}

	names := task.NewNamespace()
	umbrella, err := task.NewUmbrella(names)
	if err != nil {
		return nil, err
	}
	g := graph.New()
	if err := g.AddNode(umbrella); err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("Project initialized.",
		"requested_targets", len(requested), "host", hostID(resolver))

	return &Project{
		resolver:  resolver,
		placer:    placer,
		names:     names,
		graph:     g,
		umbrella:  umbrella,
		requested: requested,
		artifacts: make(map[string]*artifact.Config),
	}, nil
}

func hostID(r *target.Resolver) string {
	if h := r.Host(); h != nil {
		return h.ID
	}
	return "none"
}

// NewArtifact declares a build artifact and runs its construction phases.
// Artifact names are unique within the project.
func (p *Project) NewArtifact(ctx context.Context, params artifact.Params) (*artifact.Config, error) {
	if _, exists := p.artifacts[params.Name]; exists {
		return nil, fmt.Errorf("artifact '%s' already declared in this project", params.Name)
	}

	params.Resolver = p.resolver
	params.Placer = p.placer
	params.Namespace = p.names
	params.Graph = p.graph
	params.Umbrella = p.umbrella
	params.Requested = p.requested

	cfg, err := artifact.New(ctx, params)
	if err != nil {
		return nil, err
	}
	p.artifacts[params.Name] = cfg
	p.order = append(p.order, params.Name)
	return cfg, nil
}

// Artifact returns the config declared under name, if any.
func (p *Project) Artifact(name string) (*artifact.Config, bool) {
	cfg, ok := p.artifacts[name]
	return cfg, ok
}

// Artifacts returns every declared config in declaration order.
func (p *Project) Artifacts() []*artifact.Config {
	out := make([]*artifact.Config, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.artifacts[name])
	}
	return out
}

// Graph returns the declared task graph.
func (p *Project) Graph() *graph.Graph {
	return p.graph
}

// Umbrella returns the project-wide "build everything" task.
func (p *Project) Umbrella() *task.Task {
	return p.umbrella
}
