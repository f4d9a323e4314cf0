package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// WeatherUsecase serves the weather view: a fresh forecast when the upstream
// call succeeds, the last cached payload when it fails, plus an AI advisory
// derived from the forecast.
type WeatherUsecase interface {
	// Forecast fetches the report for lat/lon, caching successes. On failure
	// it falls back to the cached report for the same point; only when both
	// are unavailable does it return the external-service error.
	Forecast(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error)

	// Advisory turns the current forecast into 2-3 sentences of actionable
	// advice for the farmer.
	Advisory(ctx context.Context, lat, lon float64) (string, error)
}
