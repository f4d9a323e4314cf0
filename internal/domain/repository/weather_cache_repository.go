package repository

import (
	"context"
	"errors"

	"saathi/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ErrWeatherCacheMiss is returned when no cached report exists for a point.
var ErrWeatherCacheMiss = errors.New("weather cache miss")

// WeatherCacheRepository stores the last successful weather payload per
// coordinates so the weather view can fall back to it when a refresh fails.
type WeatherCacheRepository interface {
	// Load returns the cached report for the point, or ErrWeatherCacheMiss.
	Load(ctx context.Context, point orb.Point) (*entity.WeatherReport, error)

	// Save overwrites the cached report for the report's coordinates.
	Save(ctx context.Context, report *entity.WeatherReport) error
}
