package impl

import (
	"context"
	"log/slog"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"go.uber.org/fx"
)

// marketService implements the MarketUsecase interface.
type marketService struct {
	market   service.MarketService
	advisory service.AdvisoryService
	logger   *slog.Logger
}

// MarketServiceParams holds dependencies injected by Fx.
type MarketServiceParams struct {
	fx.In

	Market   service.MarketService
	Advisory service.AdvisoryService
	Logger   *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		market:   params.Market,
		advisory: params.Advisory,
		logger:   params.Logger,
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Fetch returns the current quote and 90-day history for a crop/region pair.
func (srv *marketService) Fetch(ctx context.Context, crop, region string) (*entity.MarketData, error) {
	data, err := srv.market.Fetch(ctx, crop, region)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Forecast feeds the fetched history to the model for 7/30-day predictions.
func (srv *marketService) Forecast(ctx context.Context, crop, region string) (*entity.MarketForecast, error) {
	data, err := srv.market.Fetch(ctx, crop, region)
	if err != nil {
		return nil, err
	}

	forecast, err := srv.advisory.ForecastMarket(ctx, crop, region, data.History)
	if err != nil {
		srv.log(ctx).Warn("Market forecast failed", slog.String("crop", crop), slog.Any("error", err))

		return nil, err
	}

	return forecast, nil
}
