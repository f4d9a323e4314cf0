package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// PublishAlertInput defines a new outbreak alert.
type PublishAlertInput struct {
	Disease string `json:"disease" validate:"required"`
	Area    string `json:"area" validate:"required"`
	Advice  string `json:"advice" validate:"required"`
}

// RegisterDeviceInput registers a device token for alert pushes.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// PublishAlertOutput reports the stored alert and push delivery count.
type PublishAlertOutput struct {
	Alert     *entity.OutbreakAlert `json:"alert"`
	Delivered int                   `json:"delivered"`
}

// AdminUsecase backs the admin dashboard.
type AdminUsecase interface {
	// Farmers lists every registered farmer for the directory table.
	Farmers(ctx context.Context) ([]entity.FarmerSummary, error)

	// Analytics returns the crop distribution and pest-report series.
	Analytics(ctx context.Context) (*entity.Analytics, error)

	// DeviceOverview returns sensor device summaries with 24h history.
	DeviceOverview(ctx context.Context) ([]entity.DeviceOverview, error)

	// PublishAlert stores an outbreak alert and pushes it to registered
	// farmer devices when a push backend is configured.
	PublishAlert(ctx context.Context, input *PublishAlertInput) (*PublishAlertOutput, error)

	// RegisterDevice records a farmer device token for alert delivery.
	RegisterDevice(ctx context.Context, username string, input *RegisterDeviceInput) error
}
