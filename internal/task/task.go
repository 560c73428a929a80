// Package task models the build tasks crossforge declares: one build task
// per viable target, an aggregate task per artifact, an optional host alias,
// and the project-wide umbrella. Tasks are metadata only — execution belongs
// to the external scheduler that consumes the declared graph.
package task

import "strings"

// Group is the display group every generated build task is filed under.
const Group = "build"

// Kind distinguishes the roles a task can play in the declared graph.
type Kind int

const (
	// TargetBuild compiles one artifact for one target.
	TargetBuild Kind = iota
	// Aggregate depends on all requested per-target tasks of one artifact.
	Aggregate
	// HostAlias depends on the per-target task matching the host target.
	HostAlias
	// Umbrella depends on every artifact's aggregate task.
	Umbrella
)

func (k Kind) String() string {
	switch k {
	case TargetBuild:
		return "target"
	case Aggregate:
		return "aggregate"
	case HostAlias:
		return "host"
	case Umbrella:
		return "umbrella"
	}
	return "unknown"
}

// Task is one node of the declared build graph.
type Task struct {
	Name        string
	Kind        Kind
	TargetID    string // machine id of the target; "" for aggregate/umbrella
	DestDir     string
	BaseName    string
	Group       string
	Description string

	// Configurable state, mutated only by the configuration DSL during the
	// configuration phase. Structural fields above are fixed at creation.
	Libraries      []string
	NoDefaultLibs  bool
	DumpParameters bool
	ExtraOpts      []string
	ExtraDeps      []string
}

// camel converts an artifact name like "my-game" into a task-name fragment
// like "MyGame". Non-alphanumeric runes act as word separators.
func camel(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			if upperNext {
				r = r - 'a' + 'A'
			}
			b.WriteRune(r)
			upperNext = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			upperNext = false
		default:
			upperNext = true
		}
	}
	return b.String()
}
