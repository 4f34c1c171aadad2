package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"visitglobe/internal/config"
)

const worldJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","id":"BEL","properties":{"name":"Belgium"},
  "geometry":{"type":"Polygon","coordinates":[[[3,50],[6,50],[6,51.5],[3,51.5],[3,50]]]}},
 {"type":"Feature","id":"JPN","properties":{"name":"Japan"},
  "geometry":{"type":"Polygon","coordinates":[[[130,31],[140,31],[140,41],[130,41],[130,31]]]}}
]}`

func fixtures(t *testing.T) (dir string, cfg config.Config) {
	t.Helper()
	dir = t.TempDir()
	cfg = config.Default()
	cfg.World = filepath.Join(dir, "world.geojson")
	cfg.Visited = filepath.Join(dir, "visited.yaml")
	cfg.Images = filepath.Join(dir, "images")
	require.NoError(t, os.WriteFile(cfg.World, []byte(worldJSON), 0o644))
	require.NoError(t, os.WriteFile(cfg.Visited, []byte("countries:\n  - Belgium\n  - Atlantis\n"), 0o644))
	require.NoError(t, os.Mkdir(cfg.Images, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Images, "belgium.jpg"), nil, 0o644))
	return dir, cfg
}

func TestLoadWorld(t *testing.T) {
	_, cfg := fixtures(t)
	w, err := loadWorld(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.close()

	assert.Len(t, w.countries, 2)
	require.True(t, w.set.Has("BEL"))
	assert.Equal(t, "belgium.jpg", w.set["BEL"].Image)
	assert.False(t, w.set.Has("JPN"))

	s := w.builder.Build(w.countries, w.set)
	assert.Equal(t, 2, s.Stats.Meshed)
}

func TestLoadWorldMissingVisited(t *testing.T) {
	_, cfg := fixtures(t)
	cfg.Visited = filepath.Join(t.TempDir(), "none.yaml")
	w, err := loadWorld(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.close()
	assert.Empty(t, w.set)
}

func TestLoadWorldMissingWorld(t *testing.T) {
	_, cfg := fixtures(t)
	cfg.World = filepath.Join(t.TempDir(), "none.geojson")
	_, err := loadWorld(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir, cfg := fixtures(t)
	out := filepath.Join(dir, "scene.json")

	root := newRootCmd()
	root.SetArgs([]string{"export",
		"--world", cfg.World,
		"--visited", cfg.Visited,
		"--images", cfg.Images,
		"-o", out,
	})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc struct {
		Countries []struct {
			ID      string `json:"id"`
			Visited bool   `json:"visited"`
			Indices []int  `json:"indices"`
		} `json:"countries"`
		Visited int `json:"visited"`
		Total   int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Countries, 2)
	assert.Equal(t, "BEL", doc.Countries[0].ID)
	assert.True(t, doc.Countries[0].Visited)
	assert.NotEmpty(t, doc.Countries[1].Indices)
	assert.Equal(t, 1, doc.Visited)
	assert.Equal(t, 195, doc.Total)
}

func TestExportBadConfig(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"export", "--max-edge", "0"})
	assert.Error(t, root.Execute())
}
