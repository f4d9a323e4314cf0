package service

import (
	"context"

	"github.com/paulmach/orb"

	"saathi/internal/domain/entity"
)

// WeatherService fetches the current conditions and short forecast for a
// lon/lat point.
type WeatherService interface {
	Forecast(ctx context.Context, point orb.Point) (*entity.WeatherReport, error)
}
