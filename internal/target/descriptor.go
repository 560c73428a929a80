package target

import "strings"

// Descriptor identifies a single compilation target. Descriptors are
// immutable and always come from the package-level registry; two descriptors
// are the same target iff they are the same pointer.
type Descriptor struct {
	// ID is the machine-readable identifier used in manifests and flags.
	// Example: "linux_x64"
	ID string
	// Visible is the human-readable name embedded in task names, output
	// directories and file names. Example: "linuxX64"
	Visible string
	// OS is the operating system family of the target.
	OS string
	// Arch is the processor architecture of the target.
	Arch string
}

// String returns the machine identifier.
func (d *Descriptor) String() string {
	return d.ID
}

// TaskSuffix returns the visible name with its first letter upper-cased, for
// use in generated camel-case task names like "buildGameLinuxX64".
func (d *Descriptor) TaskSuffix() string {
	if d.Visible == "" {
		return ""
	}
	return strings.ToUpper(d.Visible[:1]) + d.Visible[1:]
}
