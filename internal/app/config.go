package app

import (
	"fmt"

	"github.com/vk/netvizgo/internal/config"
	"github.com/vk/netvizgo/internal/network"
	"github.com/vk/netvizgo/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
// CLI flags populate it first; values from the optional HCL file fill in
// whatever the flags left at the zero value, and built-in defaults cover the
// rest. That ordering gives flags precedence over the file.
type Config struct {
	NetworksPath string // directory of input network files
	OutputDir    string // where artifacts and the graph page are written
	ConfigPath   string // optional HCL config file

	SourceCol  string
	TargetCol  string
	Undirected bool

	NoRender        bool
	RenderOutput    string // page filename inside OutputDir
	Height          int
	Width           int
	AnnotationsPath string
	VisOptions      map[string]any

	ServePort int // 0 disables the preview server

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config built from CLI flags.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("invalid serve-port %d: must be in 0..65535", cfg.ServePort)
	}
	if cfg.Height < 0 || cfg.Width < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d: dimensions must not be negative", cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

// applyModel fills zero-valued fields from the decoded config file.
// Booleans are or-ed: either surface can turn them on, neither can turn the
// other's choice off.
func (c *Config) applyModel(m *config.Model) {
	if m == nil {
		return
	}
	if cb := m.Combine; cb != nil {
		if c.NetworksPath == "" && cb.Networks != nil {
			c.NetworksPath = *cb.Networks
		}
		if c.SourceCol == "" && cb.SourceCol != nil {
			c.SourceCol = *cb.SourceCol
		}
		if c.TargetCol == "" && cb.TargetCol != nil {
			c.TargetCol = *cb.TargetCol
		}
		if cb.Undirected != nil && *cb.Undirected {
			c.Undirected = true
		}
		if c.OutputDir == "" && cb.OutputDir != nil {
			c.OutputDir = *cb.OutputDir
		}
	}
	if rb := m.Render; rb != nil {
		if rb.Enabled != nil && !*rb.Enabled {
			c.NoRender = true
		}
		if c.RenderOutput == "" && rb.Output != nil {
			c.RenderOutput = *rb.Output
		}
		if c.Height == 0 && rb.Height != nil {
			c.Height = *rb.Height
		}
		if c.Width == 0 && rb.Width != nil {
			c.Width = *rb.Width
		}
	}
	if m.Annotations != nil && c.AnnotationsPath == "" {
		c.AnnotationsPath = m.Annotations.Path
	}
	if c.VisOptions == nil {
		c.VisOptions = m.VisOptions
	}
}

// applyDefaults covers everything neither flags nor the file set.
func (c *Config) applyDefaults() {
	if c.NetworksPath == "" {
		c.NetworksPath = "Networks"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.SourceCol == "" {
		c.SourceCol = network.DefaultSourceCol
	}
	if c.TargetCol == "" {
		c.TargetCol = network.DefaultTargetCol
	}
	if c.RenderOutput == "" {
		c.RenderOutput = "graph.html"
	}
	if c.Height == 0 {
		c.Height = render.DefaultHeight
	}
	if c.Width == 0 {
		c.Width = render.DefaultWidth
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
