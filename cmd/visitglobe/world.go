package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"visitglobe/internal/config"
	"visitglobe/internal/geom"
	"visitglobe/internal/globe"
	"visitglobe/internal/triangulate"
	"visitglobe/internal/visited"
)

// world is everything loaded from disk plus the scene builder over it.
type world struct {
	countries []geom.Country
	set       visited.Set
	builder   *globe.Builder
	cache     *globe.MeshCache
}

func loadWorld(cfg config.Config, logger *zap.Logger) (*world, error) {
	countries, err := geom.LoadCountries(cfg.World)
	if err != nil {
		return nil, err
	}

	list, err := visited.LoadList(cfg.Visited)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("visited list not found", zap.String("path", cfg.Visited))
	case err != nil:
		return nil, err
	}
	images, err := visited.ScanImages(cfg.Images)
	if err != nil {
		return nil, err
	}
	entries := visited.Resolve(list, countries, images, logger)

	tri := triangulate.New(cfg.TriangulateOptions())
	cache, err := globe.NewMeshCache(tri, cfg.CacheBytes)
	if err != nil {
		return nil, err
	}
	logger.Info("world loaded",
		zap.String("world", cfg.World),
		zap.Int("countries", len(countries)),
		zap.Int("visited", len(entries)),
		zap.Int("images", len(images)),
	)
	return &world{
		countries: countries,
		set:       visited.NewSet(entries),
		cache:     cache,
		builder: &globe.Builder{
			Cache:           cache,
			Triangulator:    tri,
			Logger:          logger,
			CenterLongitude: cfg.CenterLon,
		},
	}, nil
}

func (w *world) close() { w.cache.Close() }
