// Package placement decides where a per-target build task writes its output.
//
// Exactly one of two disjoint policies applies to a whole run, selected once
// by the presence of an environment-provided override directory:
//
//   - Override present: every target shares the override directory verbatim,
//     so the target is encoded in the file name ("game_linuxX64").
//   - Override absent: every target gets its own subdirectory of the artifact
//     base directory ("bin/linuxX64"), so the file name stays "game".
//
// The choice is captured when the resolver is built and never re-evaluated;
// recomputing it mid-build would destabilize declared task outputs and break
// the external scheduler's incremental-build detection.
package placement

import (
	"path/filepath"

	"github.com/vk/crossforge/internal/target"
)

// Placement is a resolved (destination directory, artifact base name) pair.
type Placement struct {
	Dir      string
	BaseName string
}

// Resolver applies the placement policy captured at construction.
type Resolver struct {
	overrideDir string
}

// NewResolver captures the override directory ("" means no override and
// selects the per-target-subdirectory policy).
func NewResolver(overrideDir string) *Resolver {
	return &Resolver{overrideDir: overrideDir}
}

// Overridden reports whether the shared-directory policy is active.
func (r *Resolver) Overridden() bool {
	return r.overrideDir != ""
}

// Place resolves the destination for one target. baseDir and artifactName
// are the artifact's current configurable values; the policy itself never
// changes between calls on the same resolver.
func (r *Resolver) Place(d *target.Descriptor, baseDir, artifactName string) Placement {
	if r.overrideDir != "" {
		return Placement{
			Dir:      r.overrideDir,
			BaseName: artifactName + "_" + d.Visible,
		}
	}
	return Placement{
		Dir:      filepath.Join(baseDir, d.Visible),
		BaseName: artifactName,
	}
}
