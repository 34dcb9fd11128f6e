package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes hcl to a temp file and returns its path.
func writeConfig(t *testing.T, hcl string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netviz.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
combine {
  networks   = "Networks"
  source_col = "gene_a"
  target_col = "gene_b"
  undirected = true
  output_dir = "out"
}

render {
  enabled = true
  output  = "ppi.html"
  height  = 800
  width   = 1600
}

annotations {
  path = "groups.yaml"
}
`)

	model, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, model.Combine)
	assert.Equal(t, "Networks", *model.Combine.Networks)
	assert.Equal(t, "gene_a", *model.Combine.SourceCol)
	assert.Equal(t, "gene_b", *model.Combine.TargetCol)
	assert.True(t, *model.Combine.Undirected)
	assert.Equal(t, "out", *model.Combine.OutputDir)

	require.NotNil(t, model.Render)
	assert.True(t, *model.Render.Enabled)
	assert.Equal(t, "ppi.html", *model.Render.Output)
	assert.Equal(t, 800, *model.Render.Height)
	assert.Equal(t, 1600, *model.Render.Width)

	require.NotNil(t, model.Annotations)
	assert.Equal(t, "groups.yaml", model.Annotations.Path)
}

func TestLoad_OmittedAttributesStayNil(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
combine {
  networks = "Networks"
}
`)

	model, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, model.Combine)
	assert.Nil(t, model.Combine.SourceCol)
	assert.Nil(t, model.Combine.Undirected)
	assert.Nil(t, model.Render)
	assert.Nil(t, model.Annotations)
}

func TestLoad_VisOptionsBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
render {
  options {
    springLength          = 150
    gravitationalConstant = -30000
    avoidOverlap          = 0.5
    solverNote            = "tuned for dense hubs"
  }
}
`)

	model, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, model.VisOptions)
	assert.Equal(t, float64(150), model.VisOptions["springLength"])
	assert.Equal(t, float64(-30000), model.VisOptions["gravitationalConstant"])
	assert.Equal(t, 0.5, model.VisOptions["avoidOverlap"])
	assert.Equal(t, "tuned for dense hubs", model.VisOptions["solverNote"])
}

func TestLoad_InvalidSyntax(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `combine { networks = `)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestLoad_UnknownBlockRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
widget "x" {
  y = 1
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
