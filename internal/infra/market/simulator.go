// Package market simulates mandi price data. No public price API covers the
// crops and regions the app serves, so quotes are synthesized: deterministic
// per crop/region pair, with a random-walk history behind them.
package market

import (
	"context"
	"math"
	"math/rand"
	"time"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"
)

// Base prices in INR per quintal.
var basePrices = map[string]int{
	"Wheat":    2350,
	"Rice":     3800,
	"Cotton":   7200,
	"Soyabean": 4600,
	"Mustard":  5400,
}

const (
	fallbackBasePrice = 3000
	historyDays       = 90
	dailyVolatility   = 0.02
)

// simulator implements service.MarketService.
type simulator struct {
	now func() time.Time
}

// NewSimulator is the constructor for the market data simulator.
func NewSimulator() service.MarketService {
	return &simulator{now: time.Now}
}

// Fetch synthesizes the current quote and 90-day history for a crop/region
// pair. The current price is stable for a pair across calls; the history walk
// is seeded from the pair so charts do not jump between refreshes.
func (s *simulator) Fetch(_ context.Context, crop, region string) (*entity.MarketData, error) {
	base := basePrices[crop]
	if base == 0 {
		base = fallbackBasePrice
	}

	// Deterministic variance per pair, up to +20%.
	variance := float64((stringHash(crop)%100)+(stringHash(region)%100)) / 1000
	currentPrice := int(math.Round(float64(base) * (1 + variance)))

	history := s.generateHistory(crop+"|"+region, currentPrice, historyDays)

	yesterday := currentPrice
	if len(history) >= 2 {
		yesterday = history[len(history)-2].Price
	}
	changePct := float64(currentPrice-yesterday) / float64(yesterday) * 100

	return &entity.MarketData{
		Crop:   crop,
		Region: region,
		Current: entity.CurrentPrice{
			PricePerQuintal: currentPrice,
			Market:          region + " APMC",
			ChangePct:       math.Round(changePct*100) / 100,
		},
		History: history,
	}, nil
}

// generateHistory walks the price backwards from today's quote.
func (s *simulator) generateHistory(seed string, currentPrice, days int) []entity.PricePoint {
	rng := rand.New(rand.NewSource(int64(stringHash(seed))))

	prices := make([]float64, days)
	prices[days-1] = float64(currentPrice)
	for i := days - 2; i >= 0; i-- {
		fluctuation := (rng.Float64() - 0.48) * dailyVolatility
		prices[i] = prices[i+1] / (1 + fluctuation)
	}

	today := s.now()
	history := make([]entity.PricePoint, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -(days - 1 - i))
		history = append(history, entity.PricePoint{
			Date:  date.Format("2006-01-02"),
			Price: int(math.Round(prices[i])),
		})
	}

	return history
}

// stringHash is the djb2-style hash the price variance is derived from.
func stringHash(s string) uint32 {
	var h int32
	for _, r := range s {
		h = ((h << 5) - h) + int32(r)
	}
	if h < 0 {
		return uint32(-h)
	}

	return uint32(h)
}
