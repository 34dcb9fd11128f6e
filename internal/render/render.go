package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/vk/netvizgo/internal/annotations"
	"github.com/vk/netvizgo/internal/graph"
)

//go:embed template.html
var pageHTML string

var pageTemplate = template.Must(template.New("graph").Parse(pageHTML))

// Options configure the rendered page. Zero dimensions fall back to the
// defaults below.
type Options struct {
	Title  string
	Height int
	Width  int

	// Extra overrides individual Barnes-Hut physics parameters
	// (springLength, gravitationalConstant, ...) on top of the defaults.
	Extra map[string]any
}

const (
	// DefaultHeight and DefaultWidth match the canvas the original
	// visualization was tuned for.
	DefaultHeight = 1000
	DefaultWidth  = 2000
)

type pageData struct {
	Title   string
	Height  int
	Width   int
	Nodes   template.JS
	Edges   template.JS
	Options template.JS
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Group string `json:"group,omitempty"`
	Color string `json:"color,omitempty"`
}

type visEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteHTML renders g as an interactive page and writes it to path. Node
// labels default to the node id and node size scales with degree; ann can
// override label, group and color per node.
func WriteHTML(path string, g *graph.Graph, ann *annotations.Set, opts Options) error {
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Title == "" {
		opts.Title = "Combined network"
	}
	if ann == nil {
		ann = &annotations.Set{}
	}

	nodes := make([]visNode, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		n := visNode{ID: id, Label: id, Value: g.Degree(id)}
		if a, ok := ann.Lookup(id); ok {
			if a.Label != "" {
				n.Label = a.Label
			}
			n.Group = a.Group
			n.Color = a.Color
		}
		nodes = append(nodes, n)
	}

	edges := make([]visEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, visEdge{From: e.Source, To: e.Target})
	}

	data := pageData{
		Title:  opts.Title,
		Height: opts.Height,
		Width:  opts.Width,
	}

	var err error
	if data.Nodes, err = marshalJS(nodes); err != nil {
		return err
	}
	if data.Edges, err = marshalJS(edges); err != nil {
		return err
	}
	if data.Options, err = marshalJS(visOptions(opts.Extra)); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering graph page: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing graph page: %w", err)
	}
	return nil
}

// visOptions builds the vis-network options object: Barnes-Hut physics with
// the layout engine's tuning, edge hiding on drag off, extras merged into the
// physics parameters.
func visOptions(extra map[string]any) map[string]any {
	barnesHut := map[string]any{
		"gravitationalConstant": -80000,
		"centralGravity":        0.3,
		"springLength":          250,
		"springConstant":        0.001,
		"damping":               0.09,
		"avoidOverlap":          0,
	}
	for k, v := range extra {
		barnesHut[k] = v
	}

	return map[string]any{
		"physics": map[string]any{
			"solver":        "barnesHut",
			"barnesHut":     barnesHut,
			"stabilization": map[string]any{"enabled": true, "iterations": 1000},
		},
		"interaction": map[string]any{
			"hideEdgesOnDrag": false,
		},
		"nodes": map[string]any{
			"shape":   "dot",
			"scaling": map[string]any{"min": 10, "max": 30},
		},
		"edges": map[string]any{
			"smooth": false,
			"color":  map[string]any{"inherit": true},
		},
	}
}

func marshalJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding graph data: %w", err)
	}
	return template.JS(b), nil
}
