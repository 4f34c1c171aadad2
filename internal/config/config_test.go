package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	v, err := NewViper(newFlags(t), "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 0.08, c.TriangulateOptions().MaxEdgeLength)
	assert.Equal(t, 4, c.TriangulateOptions().KeyPrecision)
}

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "visitglobe.yaml")
	require.NoError(t, os.WriteFile(file, []byte("world: from-file.geojson\nmax-edge: 0.05\ncenter-lon: 10\n"), 0o644))
	t.Setenv("VISITGLOBE_MAX_EDGE", "0.04")

	v, err := NewViper(newFlags(t, "--center-lon=20"), file)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "from-file.geojson", c.World)
	assert.Equal(t, 0.04, c.MaxEdge)
	assert.Equal(t, 20.0, c.CenterLon)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := NewViper(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"zero edge", KeyMaxEdge, 0.0},
		{"negative precision", KeyKeyPrecision, -1},
		{"longitude", KeyCenterLon, 200.0},
		{"empty world", KeyWorld, ""},
		{"cache", KeyCacheBytes, int64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
