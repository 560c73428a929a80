package artifact

import "github.com/vk/crossforge/internal/target"

// Status classifies what happened to one resolved target during the
// filter-and-create phase.
type Status int

const (
	// StatusCreated means a build task was registered for the target.
	StatusCreated Status = iota
	// StatusSkippedDisabled means the host cannot build the target.
	StatusSkippedDisabled
	// StatusSkippedUnsupported means the artifact kind vetoed the target.
	StatusSkippedUnsupported
	// StatusFailed means task creation itself failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkippedDisabled:
		return "skipped-disabled"
	case StatusSkippedUnsupported:
		return "skipped-unsupported"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome records the per-target result of phase 2, so callers and tests can
// assert on skip reasons without parsing log output.
type Outcome struct {
	Target *target.Descriptor
	Status Status
	// Reason is a human-readable explanation for skips.
	Reason string
	// Err is set only when Status is StatusFailed.
	Err error
}
