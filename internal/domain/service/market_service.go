package service

import (
	"context"

	"saathi/internal/domain/entity"
)

// MarketService fetches the current price and history for a crop in a region.
type MarketService interface {
	Fetch(ctx context.Context, crop, region string) (*entity.MarketData, error)
}
