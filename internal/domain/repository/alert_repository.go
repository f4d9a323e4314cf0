package repository

import (
	"context"

	"saathi/internal/domain/entity"
)

// AlertRepository stores outbreak alerts published by admins.
type AlertRepository interface {
	// Create persists a new alert.
	Create(ctx context.Context, alert *entity.OutbreakAlert) error

	// List returns alerts newest first.
	List(ctx context.Context) ([]*entity.OutbreakAlert, error)
}
