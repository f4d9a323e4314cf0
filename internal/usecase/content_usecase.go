package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// ContentUsecase serves schemes, allocations, and outbreak alerts.
type ContentUsecase interface {
	Schemes(ctx context.Context) ([]entity.Scheme, error)

	// SchemeQR renders a QR code PNG of a scheme's application link.
	SchemeQR(ctx context.Context, schemeID int) ([]byte, error)

	Allocations(ctx context.Context) ([]entity.Allocation, error)

	Alerts(ctx context.Context) ([]*entity.OutbreakAlert, error)
}
