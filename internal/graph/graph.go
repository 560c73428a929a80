// Package graph holds the declared build-task graph handed to the external
// task scheduler. Nodes carry task metadata, directed edges are dependency
// declarations; this package never executes anything.
//
// The graph is built single-threaded during the configuration phase, so no
// locking is needed. Unlike a runtime DAG, adding a node with an existing ID
// is a hard error: it means two tasks generated the same name, and silently
// overwriting one would corrupt the graph.
package graph

import (
	"fmt"
	"sort"

	"github.com/vk/crossforge/internal/task"
)

// node is one declared task plus its edge sets.
type node struct {
	task       *task.Task
	deps       map[string]*node
	dependents map[string]*node
}

// Graph is the declared task graph for one run.
type Graph struct {
	nodes map[string]*node
}

// New creates an initialized, empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddNode registers a task under its name. Re-registration of an existing
// name is a fatal consistency error.
func (g *Graph) AddNode(t *task.Task) error {
	if _, exists := g.nodes[t.Name]; exists {
		return fmt.Errorf("task '%s' already declared in graph", t.Name)
	}
	g.nodes[t.Name] = &node{
		task:       t,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	return nil
}

// AddEdge declares that the `toID` task depends on the `fromID` task. An
// error is returned if either node does not exist or the edge would be a
// self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode
	return nil
}

// Task returns the task registered under name, if any.
func (g *Graph) Task(name string) (*task.Task, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n.task, true
}

// Tasks returns every declared task, sorted by name for deterministic output.
func (g *Graph) Tasks() []*task.Task {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]*task.Task, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, g.nodes[name].task)
	}
	return tasks
}

// Dependencies returns the sorted names of the tasks the given task depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	deps := make([]string, 0, len(n.deps))
	for depID := range n.deps {
		deps = append(deps, depID)
	}
	sort.Strings(deps)
	return deps, nil
}

// Dependents returns the sorted names of the tasks that depend on the given task.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	dependents := make([]string, 0, len(n.dependents))
	for depID := range n.dependents {
		dependents = append(dependents, depID)
	}
	sort.Strings(dependents)
	return dependents, nil
}

// DetectCycles checks the graph for cycles, returning a non-nil error naming
// a node involved in the first cycle found.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search with three node sets:
	// permanent: fully visited, known cycle-free.
	// temporary: on the current recursion stack.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		id := n.task.Name
		if permanent[id] {
			return nil
		}
		if temporary[id] {
			return fmt.Errorf("cycle detected involving node '%s'", id)
		}

		temporary[id] = true
		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}
		delete(temporary, id)
		permanent[id] = true
		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.task.Name] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}
