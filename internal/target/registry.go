package target

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/agext/levenshtein"
)

// The fixed target registry. Order here is the canonical enumeration order.
var registry = []*Descriptor{
	{ID: "linux_x64", Visible: "linuxX64", OS: "linux", Arch: "x64"},
	{ID: "linux_arm64", Visible: "linuxArm64", OS: "linux", Arch: "arm64"},
	{ID: "windows_x64", Visible: "windowsX64", OS: "windows", Arch: "x64"},
	{ID: "macos_x64", Visible: "macosX64", OS: "macos", Arch: "x64"},
	{ID: "macos_arm64", Visible: "macosArm64", OS: "macos", Arch: "arm64"},
	{ID: "android_arm64", Visible: "androidArm64", OS: "android", Arch: "arm64"},
	{ID: "wasm32", Visible: "wasm32", OS: "wasm", Arch: "wasm32"},
}

var byID = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(registry))
	for _, d := range registry {
		if _, exists := m[d.ID]; exists {
			panic(fmt.Sprintf("duplicate target id '%s' in registry", d.ID))
		}
		m[d.ID] = d
	}
	return m
}()

// All returns every known descriptor in canonical order. The returned slice
// is shared; callers must not mutate it.
func All() []*Descriptor {
	return registry
}

// ByName resolves a raw target identifier to its descriptor. An unknown name
// is a hard error carrying a closest-match suggestion when one is plausible.
func ByName(name string) (*Descriptor, error) {
	if d, ok := byID[name]; ok {
		return d, nil
	}
	if suggestion := closestID(name); suggestion != "" {
		return nil, fmt.Errorf("unknown target '%s' (did you mean '%s'?)", name, suggestion)
	}
	return nil, fmt.Errorf("unknown target '%s'", name)
}

// closestID returns the registry id nearest to name, or "" if nothing is
// close enough to be a likely typo.
func closestID(name string) string {
	best := ""
	bestDist := 3 // more than two edits away is not a typo
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if dist := levenshtein.Distance(name, id, nil); dist < bestDist {
			best = id
			bestDist = dist
		}
	}
	return best
}

// hostMap translates runtime.GOOS/GOARCH pairs to registry identifiers.
var hostMap = map[string]string{
	"linux/amd64":   "linux_x64",
	"linux/arm64":   "linux_arm64",
	"windows/amd64": "windows_x64",
	"darwin/amd64":  "macos_x64",
	"darwin/arm64":  "macos_arm64",
}

// Host returns the descriptor for the machine running the build, or nil when
// the host platform is not in the registry. A nil host is legitimate: CI
// boxes building only for foreign targets never need a host descriptor.
func Host() *Descriptor {
	return hostFor(runtime.GOOS, runtime.GOARCH)
}

func hostFor(goos, goarch string) *Descriptor {
	id, ok := hostMap[goos+"/"+goarch]
	if !ok {
		return nil
	}
	return byID[id]
}
