package sqlite

import (
	"context"
	"strings"

	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// farmerRepository implements the domain.FarmerRepository interface using GORM.
type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository is the constructor for farmerRepository.
func NewFarmerRepository(db *gorm.DB) repository.FarmerRepository {
	return &farmerRepository{db: db}
}

// FindByUsername retrieves a farmer's public record by username.
func (repo *farmerRepository) FindByUsername(ctx context.Context, username string) (*entity.Farmer, error) {
	var farmerM model.FarmerModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&farmerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by username")
	}

	return toFarmerDomain(&farmerM), nil
}

// FindCredential retrieves the authentication half of a farmer record.
func (repo *farmerRepository) FindCredential(ctx context.Context, username string) (*entity.Credential, error) {
	var farmerM model.FarmerModel
	err := repo.db.WithContext(ctx).
		Select("username", "password_hash").
		Where("username = ?", username).
		First(&farmerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		Username:     farmerM.Username,
		PasswordHash: farmerM.PasswordHash,
	}, nil
}

// Create persists a new credential record. A username conflict maps to the
// domain's duplicate-username error and leaves the existing record untouched.
func (repo *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer, passwordHash string) error {
	farmerM := fromFarmerDomain(farmer)
	farmerM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(farmerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUsername
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farmer")
	}

	farmer.CreatedAt = farmerM.CreatedAt
	farmer.UpdatedAt = farmerM.UpdatedAt

	return nil
}

// UpdateProfile replaces the stored profile of an existing record.
func (repo *farmerRepository) UpdateProfile(ctx context.Context, username string, profile entity.FarmerProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmerModel{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"full_name":          profile.FullName,
			"phone":              profile.Phone,
			"location":           profile.Location,
			"land_size_acres":    profile.LandSizeAcres,
			"soil_type":          string(profile.SoilType),
			"irrigation_source":  string(profile.IrrigationSource),
			"last_season_crops":  profile.LastSeasonCrops,
			"preferred_language": string(profile.PreferredLanguage),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update farmer profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFarmerNotFound
	}

	return nil
}

// List returns all registered farmers, ordered by creation time.
func (repo *farmerRepository) List(ctx context.Context) ([]*entity.Farmer, error) {
	var models []model.FarmerModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	farmers := make([]*entity.Farmer, 0, len(models))
	for i := range models {
		farmers = append(farmers, toFarmerDomain(&models[i]))
	}

	return farmers, nil
}

// isUniqueConstraintViolation detects SQLite's unique constraint failure.
// glebarez/sqlite surfaces it as a plain error string, not a typed error.
func isUniqueConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --- Mapper Functions ---

// toFarmerDomain converts a GORM FarmerModel to a domain Farmer entity.
func toFarmerDomain(data *model.FarmerModel) *entity.Farmer {
	if data == nil {
		return nil
	}

	return &entity.Farmer{
		Username: data.Username,
		Profile: entity.FarmerProfile{
			FullName:          data.FullName,
			Phone:             data.Phone,
			Location:          data.Location,
			LandSizeAcres:     data.LandSizeAcres,
			SoilType:          entity.SoilType(data.SoilType),
			IrrigationSource:  entity.IrrigationSource(data.IrrigationSource),
			LastSeasonCrops:   data.LastSeasonCrops,
			PreferredLanguage: entity.Language(data.PreferredLanguage),
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFarmerDomain converts a domain Farmer entity to a GORM FarmerModel.
func fromFarmerDomain(data *entity.Farmer) *model.FarmerModel {
	if data == nil {
		return nil
	}

	return &model.FarmerModel{
		Username:          data.Username,
		FullName:          data.Profile.FullName,
		Phone:             data.Profile.Phone,
		Location:          data.Profile.Location,
		LandSizeAcres:     data.Profile.LandSizeAcres,
		SoilType:          string(data.Profile.SoilType),
		IrrigationSource:  string(data.Profile.IrrigationSource),
		LastSeasonCrops:   data.Profile.LastSeasonCrops,
		PreferredLanguage: string(data.Profile.PreferredLanguage),
	}
}
