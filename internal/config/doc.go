// Package config defines the format-agnostic model of the declared build
// artifacts, decoupling the orchestration core from the manifest syntax that
// produced it.
package config
