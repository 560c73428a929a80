// Package kind describes the artifact kinds crossforge can declare. A kind
// supplies the default output base directory, a per-target support veto that
// is independent of host capability, and the platform file-naming rules used
// to derive the produced artifact's final file name.
package kind

import (
	"fmt"

	"github.com/vk/crossforge/internal/target"
)

// Kind is an immutable artifact-kind descriptor from the fixed set below.
type Kind struct {
	// Name is the identifier used in manifests. Example: "executable"
	Name string
	// DefaultBaseDir is the base output directory used when a manifest does
	// not set one and no placement override is active.
	DefaultBaseDir string

	unsupported map[string]string // target id -> reason
}

var (
	// Executable is a linked program.
	Executable = &Kind{
		Name:           "executable",
		DefaultBaseDir: "bin",
		unsupported: map[string]string{
			// No stable executable container for bare wasm output yet;
			// wasm artifacts ship as libraries embedded by a host page.
			"wasm32": "wasm32 output is always packaged as a library",
		},
	}
	// StaticLib is an archive of objects linked into consumers at build time.
	StaticLib = &Kind{
		Name:           "static_lib",
		DefaultBaseDir: "lib",
		unsupported:    map[string]string{},
	}
	// SharedLib is a dynamically loaded library.
	SharedLib = &Kind{
		Name:           "shared_lib",
		DefaultBaseDir: "lib",
		unsupported: map[string]string{
			"wasm32": "wasm32 has no dynamic loader",
		},
	}
)

var kinds = map[string]*Kind{
	Executable.Name: Executable,
	StaticLib.Name:  StaticLib,
	SharedLib.Name:  SharedLib,
}

// ByName resolves a manifest kind name to its descriptor.
func ByName(name string) (*Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown artifact kind '%s'", name)
	}
	return k, nil
}

// Supports reports whether this artifact kind permits building for the
// target, regardless of whether the host could. The second return value is a
// human-readable reason when the answer is no.
func (k *Kind) Supports(d *target.Descriptor) (bool, string) {
	if reason, vetoed := k.unsupported[d.ID]; vetoed {
		return false, reason
	}
	return true, ""
}

// FileName decorates an artifact base name with the kind's platform prefix
// and extension for the given target OS.
func (k *Kind) FileName(baseName string, d *target.Descriptor) string {
	switch k {
	case Executable:
		if d.OS == "windows" {
			return baseName + ".exe"
		}
		return baseName
	case StaticLib:
		if d.OS == "windows" {
			return baseName + ".lib"
		}
		return "lib" + baseName + ".a"
	case SharedLib:
		switch d.OS {
		case "windows":
			return baseName + ".dll"
		case "macos":
			return "lib" + baseName + ".dylib"
		default:
			return "lib" + baseName + ".so"
		}
	}
	return baseName
}

// String returns the manifest name of the kind.
func (k *Kind) String() string {
	return k.Name
}
