package sqlite

import (
	"context"
	"encoding/json"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface using
// GORM. The snapshot lives in a single fixed row.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Load restores the persisted principal, or ErrSessionNotFound.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.Principal, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).First(&sessionM, model.SessionRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session snapshot")
	}

	var principal entity.Principal
	if err := json.Unmarshal([]byte(sessionM.Payload), &principal); err != nil {
		return nil, errors.Wrap(err, "failed to decode session snapshot")
	}

	return &principal, nil
}

// Save overwrites the persisted principal snapshot.
func (repo *sessionRepository) Save(ctx context.Context, principal *entity.Principal) error {
	payload, err := json.Marshal(principal)
	if err != nil {
		return errors.Wrap(err, "failed to encode session snapshot")
	}

	sessionM := model.SessionModel{
		ID:      model.SessionRowID,
		Payload: string(payload),
	}
	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&sessionM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session snapshot")
	}

	return nil
}

// Clear removes the snapshot. Clearing an absent snapshot is a no-op.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, model.SessionRowID).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear session snapshot")
	}

	return nil
}
