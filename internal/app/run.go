package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/netvizgo/internal/annotations"
	"github.com/vk/netvizgo/internal/ctxlog"
	"github.com/vk/netvizgo/internal/graph"
	"github.com/vk/netvizgo/internal/network"
	"github.com/vk/netvizgo/internal/render"
)

// Run executes the pipeline: combine the input networks, write the two
// artifacts, render the visualization, and optionally serve it for preview.
// The pass is strictly linear; any failure aborts before artifacts appear.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	cfg := a.config

	a.logger.Info("🔗 Combining networks...", "dir", cfg.NetworksPath)
	combined, err := network.Combine(ctx, cfg.NetworksPath, network.Options{
		SourceCol:  cfg.SourceCol,
		TargetCol:  cfg.TargetCol,
		Undirected: cfg.Undirected,
	})
	if err != nil {
		return fmt.Errorf("failed to combine networks: %w", err)
	}

	if err := combined.WriteArtifacts(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to write combined network: %w", err)
	}
	a.logger.Info("Combined network written.",
		"edges", combined.Len(),
		"header_file", filepath.Join(cfg.OutputDir, network.HeaderFileName),
		"file", filepath.Join(cfg.OutputDir, network.PlainFileName))

	g := graph.FromNetwork(combined)
	a.logger.Info("Graph summary.",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(), "components", g.Components())

	if cfg.NoRender {
		a.logger.Warn("Rendering disabled, no visualization produced.")
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	ann, err := annotations.Load(cfg.AnnotationsPath)
	if err != nil {
		return fmt.Errorf("failed to load annotations: %w", err)
	}

	page := filepath.Join(cfg.OutputDir, cfg.RenderOutput)
	if err := render.WriteHTML(page, g, ann, render.Options{
		Title:  "Combined network",
		Height: cfg.Height,
		Width:  cfg.Width,
		Extra:  cfg.VisOptions,
	}); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	a.logger.Info("🕸️ Graph page rendered.", "path", page)

	if cfg.ServePort > 0 {
		return a.servePreview(ctx, page)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
