package service

import (
	"context"

	"saathi/internal/domain/entity"
)

// NotificationService pushes outbreak alerts to registered farmer devices.
type NotificationService interface {
	// SendAlert delivers an alert notification to the given device tokens.
	// Returns the number of successful deliveries.
	SendAlert(ctx context.Context, tokens []string, alert *entity.OutbreakAlert) (int, error)
}
