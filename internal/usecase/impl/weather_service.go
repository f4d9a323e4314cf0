package impl

import (
	"context"
	"log/slog"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	weather  service.WeatherService
	advisory service.AdvisoryService
	cache    repository.WeatherCacheRepository
	logger   *slog.Logger
}

// WeatherServiceParams holds dependencies injected by Fx.
type WeatherServiceParams struct {
	fx.In

	Weather  service.WeatherService
	Advisory service.AdvisoryService
	Cache    repository.WeatherCacheRepository
	Logger   *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		weather:  params.Weather,
		advisory: params.Advisory,
		cache:    params.Cache,
		logger:   params.Logger,
	}
}

func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Forecast fetches a fresh report and caches it. When the upstream call fails
// it serves the last cached report for the same point; the external-service
// error surfaces only when the cache misses too.
func (srv *weatherService) Forecast(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error) {
	point := orb.Point{lon, lat}

	report, err := srv.weather.Forecast(ctx, point)
	if err != nil {
		srv.log(ctx).Warn("Weather fetch failed, trying cache",
			slog.Float64("lat", lat), slog.Float64("lon", lon), slog.Any("error", err))

		cached, cacheErr := srv.cache.Load(ctx, point)
		if cacheErr != nil {
			return nil, domainerrors.NewExternalServiceError("Weather service is unavailable right now. Please try again later.")
		}

		return cached, nil
	}

	if err := srv.cache.Save(ctx, report); err != nil {
		srv.log(ctx).Warn("Failed to cache weather report", slog.Any("error", err))
	}

	return report, nil
}

// Advisory fetches the forecast (cache fallback included) and asks the model
// for a short actionable advisory text.
func (srv *weatherService) Advisory(ctx context.Context, lat, lon float64) (string, error) {
	report, err := srv.Forecast(ctx, lat, lon)
	if err != nil {
		return "", err
	}

	advice, err := srv.advisory.WeatherAdvisory(ctx, report)
	if err != nil {
		return "", err
	}

	return advice, nil
}
