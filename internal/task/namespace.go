package task

import "fmt"

// Namespace is the project-wide set of claimed task names. Generated names
// must be unique across every artifact; a collision means two artifact/target
// combinations map to the same name, and silently overwriting one of them
// would corrupt the task graph.
type Namespace struct {
	names map[string]struct{}
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{names: make(map[string]struct{})}
}

// Claim reserves a task name, failing if it is already taken.
func (n *Namespace) Claim(name string) error {
	if _, taken := n.names[name]; taken {
		return fmt.Errorf("task name collision: '%s' is already declared", name)
	}
	n.names[name] = struct{}{}
	return nil
}
