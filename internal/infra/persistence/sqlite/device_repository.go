package sqlite

import (
	"context"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert registers a device token, replacing any previous token for the same
// username/platform pair.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.FarmerDevice) error {
	deviceM := model.DeviceModel{
		Username: device.Username,
		Platform: device.Platform,
		FCMToken: device.FCMToken,
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}, {Name: "platform"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "updated_at"}),
		}).
		Create(&deviceM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	return nil
}

// List returns every registered device.
func (repo *deviceRepository) List(ctx context.Context) ([]*entity.FarmerDevice, error) {
	var models []model.DeviceModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.FarmerDevice, 0, len(models))
	for i := range models {
		devices = append(devices, &entity.FarmerDevice{
			Username:  models[i].Username,
			FCMToken:  models[i].FCMToken,
			Platform:  models[i].Platform,
			CreatedAt: models[i].CreatedAt,
		})
	}

	return devices, nil
}
