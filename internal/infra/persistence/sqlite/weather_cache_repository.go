package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// weatherCacheRepository implements the domain.WeatherCacheRepository
// interface using GORM.
type weatherCacheRepository struct {
	db *gorm.DB
}

// NewWeatherCacheRepository is the constructor for weatherCacheRepository.
func NewWeatherCacheRepository(db *gorm.DB) repository.WeatherCacheRepository {
	return &weatherCacheRepository{db: db}
}

// Load returns the cached report for the point, or ErrWeatherCacheMiss.
func (repo *weatherCacheRepository) Load(ctx context.Context, point orb.Point) (*entity.WeatherReport, error) {
	var cacheM model.WeatherCacheModel
	err := repo.db.WithContext(ctx).
		Where("point_key = ?", pointKey(point)).
		First(&cacheM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeatherCacheMiss
		}

		return nil, errors.Wrap(err, "failed to load cached weather")
	}

	var report entity.WeatherReport
	if err := json.Unmarshal([]byte(cacheM.Payload), &report); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached weather")
	}

	return &report, nil
}

// Save overwrites the cached report for the report's coordinates.
func (repo *weatherCacheRepository) Save(ctx context.Context, report *entity.WeatherReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "failed to encode weather report")
	}

	cacheM := model.WeatherCacheModel{
		PointKey: pointKey(report.Coordinates),
		Payload:  string(payload),
	}
	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "point_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&cacheM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save cached weather")
	}

	return nil
}

// pointKey rounds coordinates to ~11m so nearby fixes of the same device hit
// the same cache row.
func pointKey(point orb.Point) string {
	return fmt.Sprintf("%.4f,%.4f", point.Lon(), point.Lat())
}
