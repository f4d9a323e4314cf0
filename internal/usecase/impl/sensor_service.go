package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"go.uber.org/fx"
)

// sensorService implements the SensorUsecase polling contract on top of the
// raw sensor boundary. It keeps the last-known-good snapshot so background
// refresh failures never disturb the display.
type sensorService struct {
	mu     sync.Mutex
	view   *entity.SensorSnapshot
	sensor service.SensorService
	logger *slog.Logger
}

// SensorServiceParams holds dependencies injected by Fx.
type SensorServiceParams struct {
	fx.In

	Sensor service.SensorService
	Logger *slog.Logger
}

// NewSensorService is the constructor for sensorService.
func NewSensorService(params SensorServiceParams) usecase.SensorUsecase {
	return &sensorService{
		sensor: params.Sensor,
		logger: params.Logger,
	}
}

func (srv *sensorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Snapshot is the blocking initial read: failures surface to the caller so
// the view can show its connection-error state.
func (srv *sensorService) Snapshot(ctx context.Context) (*entity.SensorSnapshot, error) {
	snapshot, err := srv.sensor.Read(ctx)
	if err != nil {
		srv.log(ctx).Warn("Sensor read failed", slog.Any("error", err))

		return nil, domainerrors.NewExternalServiceError("Failed to connect to the soil sensor. Please check the device.")
	}

	srv.mu.Lock()
	srv.view = snapshot
	srv.mu.Unlock()

	return snapshot, nil
}

// TogglePump applies the requested state to the local view before the sensor
// acknowledges, and restores the prior state if the call fails.
func (srv *sensorService) TogglePump(ctx context.Context, state entity.PumpState) (*entity.SensorSnapshot, error) {
	srv.mu.Lock()
	if srv.view == nil {
		srv.mu.Unlock()

		return nil, domainerrors.NewExternalServiceError("No sensor connection. Connect the soil sensor first.")
	}
	prior := srv.view.Pump
	srv.view.Pump = state
	optimistic := *srv.view
	srv.mu.Unlock()

	if err := srv.sensor.SetPump(ctx, state); err != nil {
		srv.mu.Lock()
		srv.view.Pump = prior
		srv.mu.Unlock()

		srv.log(ctx).Warn("Pump toggle failed, reverted", slog.String("requested", string(state)), slog.String("restored", string(prior)))

		return nil, domainerrors.NewExternalServiceError("Failed to switch the water pump. Please try again.")
	}

	return &optimistic, nil
}

// Monitor polls the sensor until ctx is cancelled. Transient failures are
// logged and swallowed; a read completing after cancellation is discarded.
func (srv *sensorService) Monitor(ctx context.Context, interval time.Duration, onReading func(*entity.SensorSnapshot)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snapshot, err := srv.sensor.Read(ctx)
				if err != nil {
					srv.logger.Warn("Background sensor refresh failed", slog.Any("error", err))

					continue
				}
				if ctx.Err() != nil {
					return
				}

				srv.mu.Lock()
				srv.view = snapshot
				srv.mu.Unlock()

				onReading(snapshot)
			}
		}
	}()
}
