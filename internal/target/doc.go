// Package target defines the fixed registry of compilation targets and the
// resolver that decides which of them the current host can actually build.
//
// A target is a (platform, architecture) pair with a machine identifier used
// in manifests (e.g. "linux_x64") and a visible name used in task names and
// output paths (e.g. "linuxX64"). The registry is fixed at compile time;
// resolution by name is the only hard-error path, because a name that matches
// no descriptor is a configuration typo rather than an environment limit.
package target
