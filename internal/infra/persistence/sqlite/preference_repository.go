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

// preferenceRepository implements the domain.PreferenceRepository interface
// using GORM over a small key-value table.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Language returns the persisted device-level language preference.
func (repo *preferenceRepository) Language(ctx context.Context) (entity.Language, error) {
	var prefM model.PreferenceModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", model.PreferenceKeyLanguage).
		First(&prefM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrPreferenceNotFound
		}

		return "", errors.Wrap(err, "failed to load language preference")
	}

	return entity.Language(prefM.Value), nil
}

// SaveLanguage overwrites the device-level language preference.
func (repo *preferenceRepository) SaveLanguage(ctx context.Context, lang entity.Language) error {
	prefM := model.PreferenceModel{
		Key:   model.PreferenceKeyLanguage,
		Value: string(lang),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&prefM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save language preference")
	}

	return nil
}
