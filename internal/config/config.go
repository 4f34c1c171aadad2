// Package config resolves settings from flags, VISITGLOBE_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"visitglobe/internal/globe"
	"visitglobe/internal/triangulate"
)

const EnvPrefix = "VISITGLOBE"

const (
	KeyWorld        = "world"
	KeyVisited      = "visited"
	KeyImages       = "images"
	KeyLogFile      = "log-file"
	KeyMaxEdge      = "max-edge"
	KeyKeyPrecision = "key-precision"
	KeyCenterLon    = "center-lon"
	KeyCacheBytes   = "cache-bytes"
)

type Config struct {
	World        string
	Visited      string
	Images       string
	LogFile      string
	MaxEdge      float64
	KeyPrecision int
	CenterLon    float64
	CacheBytes   int64
}

func Default() Config {
	opts := triangulate.DefaultOptions()
	return Config{
		World:        "world.geojson",
		Visited:      "visited.yaml",
		Images:       "images",
		MaxEdge:      opts.MaxEdgeLength,
		KeyPrecision: opts.KeyPrecision,
		CenterLon:    globe.DefaultCenterLongitude,
		CacheBytes:   64 << 20,
	}
}

// RegisterFlags adds one flag per setting, defaulted from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyWorld, d.World, "GeoJSON FeatureCollection of country polygons")
	fs.String(KeyVisited, d.Visited, "YAML file listing visited countries")
	fs.String(KeyImages, d.Images, "directory of per-country images")
	fs.String(KeyLogFile, d.LogFile, "write logs to this file")
	fs.Float64(KeyMaxEdge, d.MaxEdge, "maximum chord length of a mesh edge")
	fs.Int(KeyKeyPrecision, d.KeyPrecision, "decimal places used to merge vertices")
	fs.Float64(KeyCenterLon, d.CenterLon, "longitude facing the viewer at start")
	fs.Int64(KeyCacheBytes, d.CacheBytes, "mesh cache budget in bytes")
}

// NewViper binds fs and the environment, then reads file when it is set.
func NewViper(fs *pflag.FlagSet, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}
	return v, nil
}

// Load reads every setting from v. Unset keys keep their defaults.
func Load(v *viper.Viper) (Config, error) {
	d := Default()
	v.SetDefault(KeyWorld, d.World)
	v.SetDefault(KeyVisited, d.Visited)
	v.SetDefault(KeyImages, d.Images)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyMaxEdge, d.MaxEdge)
	v.SetDefault(KeyKeyPrecision, d.KeyPrecision)
	v.SetDefault(KeyCenterLon, d.CenterLon)
	v.SetDefault(KeyCacheBytes, d.CacheBytes)

	c := Config{
		World:        v.GetString(KeyWorld),
		Visited:      v.GetString(KeyVisited),
		Images:       v.GetString(KeyImages),
		LogFile:      v.GetString(KeyLogFile),
		MaxEdge:      v.GetFloat64(KeyMaxEdge),
		KeyPrecision: v.GetInt(KeyKeyPrecision),
		CenterLon:    v.GetFloat64(KeyCenterLon),
		CacheBytes:   v.GetInt64(KeyCacheBytes),
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.World == "":
		return errors.New("world file is required")
	case !(c.MaxEdge > 0):
		return errors.Errorf("max-edge must be positive, got %v", c.MaxEdge)
	case c.KeyPrecision < 1 || c.KeyPrecision > 15:
		return errors.Errorf("key-precision out of range: %d", c.KeyPrecision)
	case c.CenterLon < -180 || c.CenterLon > 180:
		return errors.Errorf("center-lon out of range: %v", c.CenterLon)
	case c.CacheBytes <= 0:
		return errors.Errorf("cache-bytes must be positive, got %d", c.CacheBytes)
	}
	return nil
}

func (c Config) TriangulateOptions() triangulate.Options {
	return triangulate.Options{MaxEdgeLength: c.MaxEdge, KeyPrecision: c.KeyPrecision}
}
