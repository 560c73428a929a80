// Package app wires the application together: it builds the logger, loads
// the manifests, constructs the project and its task graph, applies declared
// configuration through the artifact DSL, and dumps the resulting graph for
// the external task scheduler.
package app
