package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/netvizgo/internal/annotations"
	"github.com/vk/netvizgo/internal/graph"
)

func renderToString(t *testing.T, g *graph.Graph, ann *annotations.Set, opts Options) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.html")
	require.NoError(t, WriteHTML(path, g, ann, opts))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func testGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("P1", "P2")
	g.AddEdge("P2", "P3")
	return g
}

func TestWriteHTML_ContainsGraphData(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{})

	assert.Contains(t, page, `"id":"P1"`)
	assert.Contains(t, page, `"from":"P1","to":"P2"`)
	assert.Contains(t, page, `"from":"P2","to":"P3"`)
	assert.Contains(t, page, "vis-network", "page must load the layout engine")
}

func TestWriteHTML_PhysicsAndInteractionDefaults(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{})

	assert.Contains(t, page, `"solver":"barnesHut"`)
	assert.Contains(t, page, `"hideEdgesOnDrag":false`)
	assert.Contains(t, page, `"gravitationalConstant":-80000`)
}

func TestWriteHTML_DimensionDefaults(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{})

	assert.Contains(t, page, "height: 1000px")
	assert.Contains(t, page, "width: 2000px")
}

func TestWriteHTML_CustomDimensions(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{Height: 600, Width: 800})

	assert.Contains(t, page, "height: 600px")
	assert.Contains(t, page, "width: 800px")
}

func TestWriteHTML_ExtraPhysicsOverrides(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{
		Extra: map[string]any{"springLength": 150.0},
	})

	assert.Contains(t, page, `"springLength":150`)
	assert.NotContains(t, page, `"springLength":250`)
}

func TestWriteHTML_NodeSizeScalesWithDegree(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{})

	// P2 is connected to both P1 and P3.
	assert.Contains(t, page, `"id":"P2","label":"P2","value":2`)
	assert.Contains(t, page, `"id":"P1","label":"P1","value":1`)
}

func TestWriteHTML_AnnotationsOverrideNodeStyle(t *testing.T) {
	t.Parallel()

	ann := &annotations.Set{Nodes: map[string]annotations.Node{
		"P1": {Group: "kinase", Label: "P1 (hub)"},
		"P2": {Color: "#cc3300"},
	}}

	page := renderToString(t, testGraph(), ann, Options{})

	assert.Contains(t, page, `"label":"P1 (hub)"`)
	assert.Contains(t, page, `"group":"kinase"`)
	assert.Contains(t, page, `"color":"#cc3300"`)
	// P3 keeps its defaults.
	assert.Contains(t, page, `"id":"P3","label":"P3","value":1}`)
}

func TestWriteHTML_EmptyGraph(t *testing.T) {
	t.Parallel()

	page := renderToString(t, graph.New(), nil, Options{})

	assert.Contains(t, page, "vis.DataSet([])")
}

func TestWriteHTML_CustomTitle(t *testing.T) {
	t.Parallel()

	page := renderToString(t, testGraph(), nil, Options{Title: "PPI union"})

	assert.Contains(t, page, "<title>PPI union</title>")
}
