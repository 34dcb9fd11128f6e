package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/netvizgo/internal/ctxlog"
)

// Load parses the HCL configuration file at path into a Model, including the
// free-form render options block.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var model Model
	diags = gohcl.DecodeBody(file.Body, nil, &model)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if model.Render != nil && model.Render.Options != nil {
		opts, err := decodeVisOptions(model.Render.Options)
		if err != nil {
			return nil, fmt.Errorf("in config file %s: %w", path, err)
		}
		model.VisOptions = opts
	}

	logger.Debug("Configuration file loaded.",
		"has_combine", model.Combine != nil,
		"has_render", model.Render != nil,
		"vis_options", len(model.VisOptions))
	return &model, nil
}

// decodeVisOptions evaluates every attribute of the options block into a
// plain Go value. The block takes literal values only; there is no
// expression scope to resolve variables against.
func decodeVisOptions(block *OptionsBlock) (map[string]any, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options block: %w", diags)
	}

	opts := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating option %q: %w", name, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		opts[name] = native
	}
	return opts, nil
}
