package service

import (
	"context"

	"saathi/internal/domain/entity"
)

// ContentService serves the static government content: schemes and
// allocations. Outbreak alerts are admin-published and live behind
// repository.AlertRepository instead.
type ContentService interface {
	Schemes(ctx context.Context) ([]entity.Scheme, error)
	Allocations(ctx context.Context) ([]entity.Allocation, error)
}
