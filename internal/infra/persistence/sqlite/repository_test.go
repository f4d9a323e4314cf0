package sqlite

import (
	"context"
	"testing"
	"time"

	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.FarmerModel{},
		&model.SessionModel{},
		&model.PreferenceModel{},
		&model.DeviceModel{},
		&model.AlertModel{},
		&model.WeatherCacheModel{},
	))

	return db
}

func testFarmer(username string) *entity.Farmer {
	return &entity.Farmer{
		Username: username,
		Profile: entity.FarmerProfile{
			FullName:          "Test Farmer",
			Phone:             "9876543210",
			Location:          "Nashik, Maharashtra",
			LandSizeAcres:     5,
			SoilType:          entity.SoilBlack,
			IrrigationSource:  entity.IrrigationBorewell,
			LastSeasonCrops:   "Cotton, Soyabean",
			PreferredLanguage: "mr",
		},
	}
}

func TestFarmerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFarmerRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testFarmer("ramesh"), "hash-1"))

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, testFarmer("ramesh"), "hash-2")
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)

		// The original credential must be untouched.
		cred, err := repo.FindCredential(ctx, "ramesh")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", cred.PasswordHash)
	})

	t.Run("find by username", func(t *testing.T) {
		farmer, err := repo.FindByUsername(ctx, "ramesh")
		require.NoError(t, err)
		assert.Equal(t, "Test Farmer", farmer.Profile.FullName)
		assert.Equal(t, entity.SoilBlack, farmer.Profile.SoilType)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, repository.ErrFarmerNotFound)

		_, err = repo.FindCredential(ctx, "nobody")
		assert.ErrorIs(t, err, repository.ErrFarmerNotFound)
	})

	t.Run("update profile", func(t *testing.T) {
		farmer, err := repo.FindByUsername(ctx, "ramesh")
		require.NoError(t, err)

		profile := farmer.Profile
		profile.Location = "Pune, Maharashtra"
		profile.PreferredLanguage = "hi"
		require.NoError(t, repo.UpdateProfile(ctx, "ramesh", profile))

		updated, err := repo.FindByUsername(ctx, "ramesh")
		require.NoError(t, err)
		assert.Equal(t, "Pune, Maharashtra", updated.Profile.Location)
		assert.Equal(t, entity.Language("hi"), updated.Profile.PreferredLanguage)

		err = repo.UpdateProfile(ctx, "nobody", profile)
		assert.ErrorIs(t, err, repository.ErrFarmerNotFound)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testFarmer("suresh"), "hash-3"))

		farmers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, farmers, 2)
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	profile := testFarmer("ramesh").Profile
	principal := &entity.Principal{Role: entity.RoleFarmer, Username: "ramesh", Profile: &profile}
	require.NoError(t, repo.Save(ctx, principal))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ramesh", loaded.Username)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, profile.Location, loaded.Profile.Location)

	// Overwrite keeps a single row.
	admin := &entity.Principal{Role: entity.RoleAdmin, Username: "admin1"}
	require.NoError(t, repo.Save(ctx, admin))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, loaded.Role)
	assert.Nil(t, loaded.Profile)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Clearing again is a no-op.
	assert.NoError(t, repo.Clear(ctx))
}

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(newTestDB(t))

	_, err := repo.Language(ctx)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)

	require.NoError(t, repo.SaveLanguage(ctx, "hi"))
	lang, err := repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Language("hi"), lang)

	require.NoError(t, repo.SaveLanguage(ctx, "ta"))
	lang, err = repo.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Language("ta"), lang)
}

func TestWeatherCacheRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWeatherCacheRepository(newTestDB(t))

	point := orb.Point{75.7873, 26.9124}
	_, err := repo.Load(ctx, point)
	assert.ErrorIs(t, err, repository.ErrWeatherCacheMiss)

	report := &entity.WeatherReport{
		Coordinates: point,
		Current: entity.CurrentWeather{
			TempC:       31,
			Description: "Sunny",
			Icon:        "sun",
			Location:    "Jaipur",
		},
		Daily: []entity.DailyForecast{{Date: "2026-09-01", Day: "Tue", MinC: 24, MaxC: 33, Icon: "sun"}},
	}
	require.NoError(t, repo.Save(ctx, report))

	cached, err := repo.Load(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, report.Current, cached.Current)
	require.Len(t, cached.Daily, 1)

	// A different point is a separate cache entry.
	_, err = repo.Load(ctx, orb.Point{73.8567, 18.5204})
	assert.ErrorIs(t, err, repository.ErrWeatherCacheMiss)
}

func TestDeviceRepository_UpsertReplacesToken(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, &entity.FarmerDevice{
		Username: "ramesh", Platform: "android", FCMToken: "token-old",
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.FarmerDevice{
		Username: "ramesh", Platform: "android", FCMToken: "token-new",
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.FarmerDevice{
		Username: "ramesh", Platform: "web", FCMToken: "token-web",
	}))

	devices, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	tokens := map[string]string{}
	for _, device := range devices {
		tokens[device.Platform] = device.FCMToken
	}
	assert.Equal(t, "token-new", tokens["android"])
	assert.Equal(t, "token-web", tokens["web"])
}

func TestAlertRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewAlertRepository(newTestDB(t))

	older := &entity.OutbreakAlert{
		ID: "outbreak_1", Disease: "Blight", Area: "Nashik", Advice: "Spray fungicide.",
		Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	newer := &entity.OutbreakAlert{
		ID: "outbreak_2", Disease: "Locusts", Area: "Jaipur", Advice: "Report sightings.",
		Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "outbreak_2", alerts[0].ID)
	assert.Equal(t, "outbreak_1", alerts[1].ID)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	farmerRepo := NewFarmerRepository(db)
	sessionRepo := NewSessionRepository(db)

	require.NoError(t, farmerRepo.Create(ctx, testFarmer("ramesh"), "hash-1"))

	profile := testFarmer("ramesh").Profile
	profile.Location = "Changed"
	principal := &entity.Principal{Role: entity.RoleFarmer, Username: "ramesh", Profile: &profile}

	err := tm.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.FarmerRepo().UpdateProfile(ctx, "ramesh", profile); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	// The profile write inside the failed transaction must not be visible.
	farmer, err := farmerRepo.FindByUsername(ctx, "ramesh")
	require.NoError(t, err)
	assert.NotEqual(t, "Changed", farmer.Profile.Location)

	// A successful transaction commits both writes.
	err = tm.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.FarmerRepo().UpdateProfile(ctx, "ramesh", profile); err != nil {
			return err
		}

		return txRepos.SessionRepo().Save(ctx, principal)
	})
	require.NoError(t, err)

	farmer, err = farmerRepo.FindByUsername(ctx, "ramesh")
	require.NoError(t, err)
	assert.Equal(t, "Changed", farmer.Profile.Location)

	loaded, err := sessionRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Changed", loaded.Profile.Location)
}
