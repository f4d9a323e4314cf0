package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	"saathi/internal/domain/repository"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	farmerRepo repository.FarmerRepository
	deviceRepo repository.DeviceRepository
	alertRepo  repository.AlertRepository
	sensor     service.SensorService
	notifier   service.NotificationService
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies injected by Fx.
type AdminServiceParams struct {
	fx.In

	FarmerRepo repository.FarmerRepository
	DeviceRepo repository.DeviceRepository
	AlertRepo  repository.AlertRepository
	Sensor     service.SensorService
	Notifier   service.NotificationService `optional:"true"`
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService. The notification
// service is optional: without a configured push backend alerts are stored
// but not pushed.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		farmerRepo: params.FarmerRepo,
		deviceRepo: params.DeviceRepo,
		alertRepo:  params.AlertRepo,
		sensor:     params.Sensor,
		notifier:   params.Notifier,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Farmers lists every registered farmer for the directory table. The stored
// comma-separated crop string is split into the list the table renders.
func (srv *adminService) Farmers(ctx context.Context) ([]entity.FarmerSummary, error) {
	farmers, err := srv.farmerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	summaries := make([]entity.FarmerSummary, 0, len(farmers))
	for _, farmer := range farmers {
		summaries = append(summaries, entity.FarmerSummary{
			ID:           farmer.Username,
			Name:         farmer.Profile.FullName,
			Location:     farmer.Profile.Location,
			Phone:        farmer.Profile.Phone,
			PrimaryCrops: splitCrops(farmer.Profile.LastSeasonCrops),
		})
	}

	return summaries, nil
}

// Analytics builds the crop distribution from the registered farmers and a
// simulated 30-day pest-report series for the trend chart.
func (srv *adminService) Analytics(ctx context.Context) (*entity.Analytics, error) {
	farmers, err := srv.farmerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	counts := make(map[string]int)
	for _, farmer := range farmers {
		for _, crop := range splitCrops(farmer.Profile.LastSeasonCrops) {
			counts[crop]++
		}
	}

	cropData := make([]entity.CropStat, 0, len(counts))
	for name, count := range counts {
		cropData = append(cropData, entity.CropStat{Name: name, Count: count})
	}
	sort.Slice(cropData, func(i, j int) bool {
		if cropData[i].Count != cropData[j].Count {
			return cropData[i].Count > cropData[j].Count
		}

		return cropData[i].Name < cropData[j].Name
	})

	return &entity.Analytics{
		CropData: cropData,
		PestData: simulatePestSeries(time.Now(), 30),
	}, nil
}

// DeviceOverview returns one summary per registered farmer, each with about a
// day of sensor history.
func (srv *adminService) DeviceOverview(ctx context.Context) ([]entity.DeviceOverview, error) {
	farmers, err := srv.farmerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	overviews := make([]entity.DeviceOverview, 0, len(farmers))
	for _, farmer := range farmers {
		history, err := srv.sensor.History(ctx, farmer.Username)
		if err != nil {
			srv.log(ctx).Warn("Failed to read device history", slog.String("farmer", farmer.Username), slog.Any("error", err))

			continue
		}
		if len(history) == 0 {
			continue
		}

		overviews = append(overviews, entity.DeviceOverview{
			DeviceID:    "dev_" + farmer.Username,
			FarmerID:    farmer.Username,
			FarmerName:  farmer.Profile.FullName,
			LastReading: history[len(history)-1],
			History:     history,
		})
	}

	return overviews, nil
}

// PublishAlert stores the outbreak alert and pushes it to every registered
// device. Push failures are logged, not surfaced: the alert is already
// published the moment it is stored.
func (srv *adminService) PublishAlert(ctx context.Context, input *usecase.PublishAlertInput) (*usecase.PublishAlertOutput, error) {
	alert := &entity.OutbreakAlert{
		ID:      "outbreak_" + uuid.New().String(),
		Disease: input.Disease,
		Area:    input.Area,
		Advice:  input.Advice,
		Date:    time.Now().UTC(),
	}

	if err := srv.alertRepo.Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to store outbreak alert")
	}

	delivered := 0
	if srv.notifier != nil {
		devices, err := srv.deviceRepo.List(ctx)
		if err != nil {
			srv.log(ctx).Warn("Failed to list devices for alert push", slog.Any("error", err))
		} else if len(devices) > 0 {
			tokens := make([]string, 0, len(devices))
			for _, device := range devices {
				tokens = append(tokens, device.FCMToken)
			}

			delivered, err = srv.notifier.SendAlert(ctx, tokens, alert)
			if err != nil {
				srv.log(ctx).Warn("Alert push failed", slog.String("alert", alert.ID), slog.Any("error", err))
			}
		}
	}

	srv.log(ctx).Info("Outbreak alert published",
		slog.String("alert", alert.ID), slog.String("disease", alert.Disease), slog.Int("delivered", delivered))

	return &usecase.PublishAlertOutput{Alert: alert, Delivered: delivered}, nil
}

// RegisterDevice records a farmer device token for alert delivery.
func (srv *adminService) RegisterDevice(ctx context.Context, username string, input *usecase.RegisterDeviceInput) error {
	device := &entity.FarmerDevice{
		Username:  username,
		FCMToken:  input.FCMToken,
		Platform:  input.Platform,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered", slog.String("username", username), slog.String("platform", input.Platform))

	return nil
}

// splitCrops turns the stored comma-separated crop string into a trimmed list.
func splitCrops(crops string) []string {
	parts := strings.Split(crops, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// simulatePestSeries produces the daily pest-report counts for the trend
// chart, seeded by day so repeated dashboard loads agree.
func simulatePestSeries(now time.Time, days int) []entity.PestReportStat {
	series := make([]entity.PestReportStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		rng := rand.New(rand.NewSource(day.Unix() / 86400))
		series = append(series, entity.PestReportStat{
			Date:    day.Format("2 Jan"),
			Reports: rng.Intn(12) + 1,
		})
	}

	return series
}
