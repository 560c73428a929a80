package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/vk/crossforge/internal/target"
	"github.com/vk/crossforge/internal/task"
)

// Artifact is the handle to the file a per-target task produces: the task's
// destination directory joined with the kind- and platform-decorated file
// name.
type Artifact struct {
	Target *target.Descriptor
	Dir    string
	File   string
}

// Path returns the full path of the produced file.
func (a Artifact) Path() string {
	return filepath.Join(a.Dir, a.File)
}

// GetByTarget returns the task registered for the named target, failing when
// no task exists. The "no such target" error is distinct from the "unknown
// target" one: the name may be perfectly valid yet filtered out on this host.
func (c *Config) GetByTarget(name string) (*task.Task, error) {
	if t, ok := c.FindByTarget(name); ok {
		return t, nil
	}
	return nil, fmt.Errorf("no such target '%s' for artifact '%s'", name, c.name)
}

// FindByTarget is the lenient counterpart of GetByTarget: it reports absence
// instead of failing, for any name whatsoever.
func (c *Config) FindByTarget(name string) (*task.Task, bool) {
	d, err := target.ByName(name)
	if err != nil {
		return nil, false
	}
	t, ok := c.tasks[d]
	return t, ok
}

// GetArtifactByTarget returns the produced artifact handle for the named
// target, with GetByTarget's strict semantics.
func (c *Config) GetArtifactByTarget(name string) (Artifact, error) {
	a, ok := c.FindArtifactByTarget(name)
	if !ok {
		return Artifact{}, fmt.Errorf("no such target '%s' for artifact '%s'", name, c.name)
	}
	return a, nil
}

// FindArtifactByTarget is the lenient counterpart of GetArtifactByTarget.
func (c *Config) FindArtifactByTarget(name string) (Artifact, bool) {
	d, err := target.ByName(name)
	if err != nil {
		return Artifact{}, false
	}
	t, ok := c.tasks[d]
	if !ok {
		return Artifact{}, false
	}
	return Artifact{
		Target: d,
		Dir:    t.DestDir,
		File:   c.kind.FileName(t.BaseName, d),
	}, true
}
