package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"saathi/config"
	"saathi/internal/delivery"
	"saathi/internal/delivery/http"
	"saathi/internal/delivery/http/middleware"
	"saathi/internal/delivery/http/router/handler"
	"saathi/internal/domain/service"
	"saathi/internal/infra/auth"
	"saathi/internal/infra/content"
	"saathi/internal/infra/genai"
	"saathi/internal/infra/i18n"
	"saathi/internal/infra/iot"
	logs "saathi/internal/infra/log"
	"saathi/internal/infra/market"
	"saathi/internal/infra/notification"
	"saathi/internal/infra/persistence/sqlite"
	"saathi/internal/infra/pubsub"
	"saathi/internal/infra/qrcode"
	"saathi/internal/infra/storage"
	"saathi/internal/infra/weather"
	"saathi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewFarmerRepository,
			sqlite.NewSessionRepository,
			sqlite.NewPreferenceRepository,
			sqlite.NewWeatherCacheRepository,
			sqlite.NewDeviceRepository,
			sqlite.NewAlertRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			i18n.NewCatalog,
			genai.NewAdvisoryClient,
			weather.NewClient,
			market.NewSimulator,
			iot.NewSimulator,
			content.NewStaticContent,
			qrcode.NewQRCodeService,
			storage.NewBlobImageStore,
			pubsub.NewEventPublisher,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLocalizationService,
			impl.NewSensorService,
			impl.NewAdvisoryService,
			impl.NewWeatherService,
			impl.NewMarketService,
			impl.NewContentService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewLocalizationHandler,
			handler.NewWeatherHandler,
			handler.NewMarketHandler,
			handler.NewAdvisoryHandler,
			handler.NewSensorHandler,
			handler.NewContentHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
