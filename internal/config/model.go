package config

// Model is the unified, format-agnostic representation of everything the
// manifests declare: the build artifacts, their targets, and their
// configuration.
type Model struct {
	Artifacts []*ArtifactDecl
}

// ArtifactDecl is the format-agnostic representation of one `artifact` block.
type ArtifactDecl struct {
	Name    string
	Kind    string
	Targets []string

	// Optional uniform configuration, applied to all of the artifact's tasks.
	BaseDir        string
	ArtifactName   string
	Libraries      []string
	NoDefaultLibs  *bool
	DumpParameters *bool
	ExtraOpts      []string
	DependsOn      []string

	// TargetOverrides carry per-target configuration blocks, applied after
	// the uniform configuration.
	TargetOverrides []*TargetDecl
}

// TargetDecl is the format-agnostic representation of a nested `target`
// override block.
type TargetDecl struct {
	Name      string
	Libraries []string
	ExtraOpts []string
}
