package app

import (
	"context"

	"github.com/vk/crossforge/internal/artifact"
	"github.com/vk/crossforge/internal/config"
	"github.com/vk/crossforge/internal/kind"
	"github.com/vk/crossforge/internal/project"
	"github.com/vk/crossforge/internal/task"
)

// declareArtifacts turns each manifest declaration into a constructed
// artifact config and applies its configuration through the DSL.
func (a *App) declareArtifacts(ctx context.Context, proj *project.Project, model *config.Model) error {
	for _, decl := range model.Artifacts {
		k, err := kind.ByName(decl.Kind)
		if err != nil {
			return err
		}

		cfg, err := proj.NewArtifact(ctx, artifact.Params{
			Name:         decl.Name,
			Kind:         k,
			Targets:      decl.Targets,
			BaseDir:      decl.BaseDir,
			ArtifactName: decl.ArtifactName,
		})
		if err != nil {
			return err
		}

		if err := applyDecl(ctx, cfg, decl); err != nil {
			return err
		}
		a.logger.Info("Artifact configured.",
			"artifact", decl.Name, "kind", decl.Kind, "tasks", len(cfg.Tasks()))
	}
	return nil
}

// applyDecl applies the uniform and per-target configuration of one manifest
// declaration.
func applyDecl(ctx context.Context, cfg *artifact.Config, decl *config.ArtifactDecl) error {
	if len(decl.Libraries) > 0 {
		cfg.Libraries(decl.Libraries...)
	}
	if decl.NoDefaultLibs != nil {
		cfg.NoDefaultLibs(*decl.NoDefaultLibs)
	}
	if decl.DumpParameters != nil {
		cfg.DumpParameters(*decl.DumpParameters)
	}
	if len(decl.ExtraOpts) > 0 {
		cfg.ExtraOpts(decl.ExtraOpts...)
	}
	if len(decl.DependsOn) > 0 {
		cfg.DependsOn(decl.DependsOn...)
	}

	for _, o := range decl.TargetOverrides {
		override := o
		err := cfg.ConfigureTarget(ctx, override.Name, func(t *task.Task) {
			t.Libraries = append(t.Libraries, override.Libraries...)
			t.ExtraOpts = append(t.ExtraOpts, override.ExtraOpts...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
