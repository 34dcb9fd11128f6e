package config

import "github.com/hashicorp/hcl/v2"

// Model is the decoded configuration file. Pointer fields distinguish
// "absent" from "set to the zero value" so the merge layer can tell which
// settings the file actually provides.
type Model struct {
	Combine     *CombineBlock     `hcl:"combine,block"`
	Render      *RenderBlock      `hcl:"render,block"`
	Annotations *AnnotationsBlock `hcl:"annotations,block"`

	// VisOptions holds the render options block converted to plain Go
	// values, ready to merge into the renderer's physics parameters.
	VisOptions map[string]any
}

// CombineBlock configures the combiner.
type CombineBlock struct {
	Networks   *string `hcl:"networks,optional"`
	SourceCol  *string `hcl:"source_col,optional"`
	TargetCol  *string `hcl:"target_col,optional"`
	Undirected *bool   `hcl:"undirected,optional"`
	OutputDir  *string `hcl:"output_dir,optional"`
}

// RenderBlock configures the visualization artifact.
type RenderBlock struct {
	Enabled *bool   `hcl:"enabled,optional"`
	Output  *string `hcl:"output,optional"`
	Height  *int    `hcl:"height,optional"`
	Width   *int    `hcl:"width,optional"`

	// Options is a free-form block of vis-network physics overrides,
	// decoded separately because its attribute set is not fixed.
	Options *OptionsBlock `hcl:"options,block"`
}

// OptionsBlock captures the raw body of the free-form options block.
type OptionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// AnnotationsBlock points at the YAML node-annotations sidecar.
type AnnotationsBlock struct {
	Path string `hcl:"path"`
}
