// Package hcl_adapter implements the config.Loader interface for HCL
// manifests. Manifests declare `artifact` blocks; attribute values may
// reference a `host` object (os, arch, target) describing the machine
// running the build.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/crossforge/internal/config"
	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/fsutil"
	"github.com/vk/crossforge/internal/target"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates an HCL manifest loader. The host descriptor (nil when
// the host platform is unknown) seeds the manifest evaluation context.
func NewLoader(host *target.Descriptor) *Loader {
	return &Loader{evalCtx: hostEvalContext(host)}
}

// fileRoot decodes the top-level blocks of one manifest file.
type fileRoot struct {
	Artifacts []*hclArtifact `hcl:"artifact,block"`
}

// hclArtifact represents a single `artifact` block.
type hclArtifact struct {
	Name string `hcl:"name,label"`

	Kind    string   `hcl:"kind"`
	Targets []string `hcl:"targets"`

	BaseDir        *string  `hcl:"base_dir,optional"`
	ArtifactName   *string  `hcl:"artifact_name,optional"`
	Libraries      []string `hcl:"libraries,optional"`
	NoDefaultLibs  *bool    `hcl:"no_default_libs,optional"`
	DumpParameters *bool    `hcl:"dump_parameters,optional"`
	ExtraOpts      []string `hcl:"extra_opts,optional"`
	DependsOn      []string `hcl:"depends_on,optional"`

	TargetOverrides []*hclTargetOverride `hcl:"target,block"`
}

// hclTargetOverride represents a nested `target` override block.
type hclTargetOverride struct {
	Name      string   `hcl:"name,label"`
	Libraries []string `hcl:"libraries,optional"`
	ExtraOpts []string `hcl:"extra_opts,optional"`
}

// Load discovers, parses and translates all .hcl manifests under the given
// paths into the format-agnostic model, in deterministic file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL manifests.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, a := range root.Artifacts {
			model.Artifacts = append(model.Artifacts, translateArtifact(a))
		}
	}

	logger.Debug("HCL loading complete.", "artifacts", len(model.Artifacts))
	return model, nil
}

// translateArtifact converts a decoded block into the format-agnostic model.
func translateArtifact(a *hclArtifact) *config.ArtifactDecl {
	decl := &config.ArtifactDecl{
		Name:           a.Name,
		Kind:           a.Kind,
		Targets:        a.Targets,
		Libraries:      a.Libraries,
		NoDefaultLibs:  a.NoDefaultLibs,
		DumpParameters: a.DumpParameters,
		ExtraOpts:      a.ExtraOpts,
		DependsOn:      a.DependsOn,
	}
	if a.BaseDir != nil {
		decl.BaseDir = *a.BaseDir
	}
	if a.ArtifactName != nil {
		decl.ArtifactName = *a.ArtifactName
	}
	for _, o := range a.TargetOverrides {
		decl.TargetOverrides = append(decl.TargetOverrides, &config.TargetDecl{
			Name:      o.Name,
			Libraries: o.Libraries,
			ExtraOpts: o.ExtraOpts,
		})
	}
	return decl
}
