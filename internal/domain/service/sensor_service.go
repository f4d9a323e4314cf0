package service

import (
	"context"

	"saathi/internal/domain/entity"
)

// SensorService is the IoT soil-sensor boundary.
type SensorService interface {
	// Read takes one snapshot from the sensor kit. May fail transiently.
	Read(ctx context.Context) (*entity.SensorSnapshot, error)

	// SetPump switches the water pump and acknowledges the new state.
	SetPump(ctx context.Context, state entity.PumpState) error

	// History returns roughly a day of past readings for a farmer's device,
	// newest last. Used by the admin overview.
	History(ctx context.Context, farmerID string) ([]entity.TimestampedReading, error)
}
