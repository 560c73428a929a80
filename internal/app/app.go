package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/crossforge/internal/config"
	"github.com/vk/crossforge/internal/ctxlog"
	"github.com/vk/crossforge/internal/placement"
	"github.com/vk/crossforge/internal/project"
	"github.com/vk/crossforge/internal/target"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	host   *target.Descriptor
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The host descriptor
// and the loader are injected so tests can pin the host platform.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, host *target.Descriptor) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		host:   host,
	}
}

// Run executes a full configuration pass: load manifests, build the project
// and task graph, apply declared configuration, and dump the graph.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifests: %w", err)
	}
	if len(model.Artifacts) == 0 {
		a.logger.Warn("No artifacts declared in manifests.", "path", a.config.ManifestPath)
	}

	resolver := target.NewResolver(a.host, a.config.Toolchains)
	placer := placement.NewResolver(a.config.OutputDir)
	if placer.Overridden() {
		a.logger.Info("Placement override active, all targets share one output directory.",
			"dir", a.config.OutputDir)
	}

	proj, err := project.New(ctx, resolver, placer, a.config.Targets)
	if err != nil {
		return err
	}
	if err := a.declareArtifacts(ctx, proj, model); err != nil {
		return err
	}

	if err := proj.Graph().DetectCycles(); err != nil {
		return fmt.Errorf("declared task graph is invalid: %w", err)
	}

	if err := a.dump(proj); err != nil {
		return fmt.Errorf("failed to dump task graph: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
