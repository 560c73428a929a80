package target

import (
	"context"

	"github.com/vk/crossforge/internal/ctxlog"
)

// Resolver maps declared target identifiers to descriptors and answers
// whether the current host can produce output for a given target.
//
// The host descriptor and the set of extra cross toolchains are injected at
// construction; the resolver reads no ambient state after that.
type Resolver struct {
	host       *Descriptor
	toolchains map[string]struct{}
}

// NewResolver builds a resolver for the given host descriptor (nil when the
// host platform is unknown) and a list of target ids for which additional
// cross-compilation toolchains are installed.
func NewResolver(host *Descriptor, toolchains []string) *Resolver {
	set := make(map[string]struct{}, len(toolchains))
	for _, id := range toolchains {
		set[id] = struct{}{}
	}
	return &Resolver{host: host, toolchains: set}
}

// Host returns the descriptor of the machine running the build, or nil.
func (r *Resolver) Host() *Descriptor {
	return r.host
}

// Resolve expands declared identifiers into descriptors, dropping duplicates
// while preserving first-seen order. Any identifier that matches no known
// descriptor fails the whole call: a bad name in a manifest is a typo, not an
// environment limitation.
func (r *Resolver) Resolve(ctx context.Context, identifiers []string) ([]*Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[*Descriptor]struct{}, len(identifiers))
	resolved := make([]*Descriptor, 0, len(identifiers))
	for _, id := range identifiers {
		d, err := ByName(id)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			logger.Debug("Ignoring duplicate target declaration.", "target", d.ID)
			continue
		}
		seen[d] = struct{}{}
		resolved = append(resolved, d)
	}
	return resolved, nil
}

// Enabled reports whether the host toolchain can produce output for the
// target. Same-OS targets are always buildable, wasm32 is buildable from
// anywhere, and everything else requires an explicitly declared toolchain.
func (r *Resolver) Enabled(d *Descriptor) bool {
	if _, ok := r.toolchains[d.ID]; ok {
		return true
	}
	if d.OS == "wasm" {
		return true
	}
	return r.host != nil && r.host.OS == d.OS
}
