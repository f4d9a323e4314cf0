package service

import (
	"context"

	"saathi/internal/domain/entity"
)

// CropConditions are the inputs to a crop recommendation request. Sensor is
// optional: when present the model is asked to refine its advice with the
// live readings.
type CropConditions struct {
	SoilType          string
	WaterAvailability string
	Season            string
	PreviousCrop      string
	Sensor            *entity.SensorSnapshot
}

// AdvisoryService is the generative-AI boundary. Structured methods request
// JSON constrained by a response schema; Chat keeps a multi-turn session per
// target language.
type AdvisoryService interface {
	// RecommendCrops returns the top crop suggestions for the conditions.
	RecommendCrops(ctx context.Context, cond CropConditions) ([]entity.CropRecommendation, error)

	// AnalyzePest diagnoses a leaf image (raw bytes + MIME type).
	AnalyzePest(ctx context.Context, image []byte, mimeType string) (*entity.PestAnalysis, error)

	// ForecastMarket predicts 7- and 30-day price ranges from history.
	ForecastMarket(ctx context.Context, crop, region string, history []entity.PricePoint) (*entity.MarketForecast, error)

	// WeatherAdvisory turns a forecast into a short actionable advisory text.
	WeatherAdvisory(ctx context.Context, report *entity.WeatherReport) (string, error)

	// Chat sends one message to the language-keyed assistant session. The
	// session is recreated whenever lang changes.
	Chat(ctx context.Context, message string, lang entity.Language) (string, error)
}
