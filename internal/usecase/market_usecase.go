package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// MarketUsecase serves the market prices view.
type MarketUsecase interface {
	// Fetch returns the current quote and history for a crop in a region.
	Fetch(ctx context.Context, crop, region string) (*entity.MarketData, error)

	// Forecast asks the advisory model for 7/30-day price predictions based
	// on the fetched history.
	Forecast(ctx context.Context, crop, region string) (*entity.MarketForecast, error)
}
