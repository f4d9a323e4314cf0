package sqlite

import (
	"context"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the domain.AlertRepository interface using GORM.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// Create persists a new alert.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.OutbreakAlert) error {
	alertM := model.AlertModel{
		ID:      alert.ID,
		Disease: alert.Disease,
		Area:    alert.Area,
		Advice:  alert.Advice,
		Date:    alert.Date,
	}
	if err := repo.db.WithContext(ctx).Create(&alertM).Error; err != nil {
		return errors.Wrap(err, "failed to create alert")
	}

	return nil
}

// List returns alerts newest first.
func (repo *alertRepository) List(ctx context.Context) ([]*entity.OutbreakAlert, error) {
	var models []model.AlertModel
	if err := repo.db.WithContext(ctx).Order("date desc").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	alerts := make([]*entity.OutbreakAlert, 0, len(models))
	for i := range models {
		alerts = append(alerts, &entity.OutbreakAlert{
			ID:      models[i].ID,
			Disease: models[i].Disease,
			Area:    models[i].Area,
			Advice:  models[i].Advice,
			Date:    models[i].Date,
		})
	}

	return alerts, nil
}
