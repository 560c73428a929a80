package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath is an .hcl file or a directory of .hcl files.
	ManifestPath string

	// Targets is the requested subset of declared targets for this
	// invocation. Empty means every declared target is requested.
	Targets []string
	// OutputDir, when non-empty, activates the shared-directory placement
	// policy for all tasks of this run.
	OutputDir string
	// Toolchains lists target ids for which extra cross-compilation
	// toolchains are installed on this host.
	Toolchains []string

	// DumpFormat selects how the declared graph is printed: "text" or "json".
	DumpFormat string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
