package repository

import (
	"context"

	"saathi/internal/domain/entity"
)

// DeviceRepository stores the push tokens of farmer devices so outbreak
// alerts can be delivered even when the app is closed.
type DeviceRepository interface {
	// Upsert registers a device token, replacing any previous token for the
	// same username/platform pair.
	Upsert(ctx context.Context, device *entity.FarmerDevice) error

	// List returns every registered device.
	List(ctx context.Context) ([]*entity.FarmerDevice, error)
}
