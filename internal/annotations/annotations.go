// Package annotations loads the optional YAML sidecar that maps node ids to
// display attributes (group, label, color) for the visualization.
package annotations

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node holds the display overrides for one node. Empty fields mean "use the
// renderer's default".
type Node struct {
	Group string `yaml:"group"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// Set is a parsed annotations file.
type Set struct {
	Nodes map[string]Node `yaml:"nodes"`
}

// Load reads and parses the annotations file at path. An empty path returns
// an empty, usable Set, since annotations are optional.
func Load(path string) (*Set, error) {
	if path == "" {
		return &Set{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading annotations file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing annotations file %s: %w", path, err)
	}

	return &set, nil
}

// Lookup returns the annotation for id, if any.
func (s *Set) Lookup(id string) (Node, bool) {
	n, ok := s.Nodes[id]
	return n, ok
}
