package impl

import (
	"context"
	"testing"

	"saathi/config"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (usecase.SessionUsecase, *fakeFarmerRepo, *fakeSessionRepo) {
	t.Helper()

	farmerRepo := newFakeFarmerRepo()
	sessionRepo := &fakeSessionRepo{}

	cfg := &config.Config{}
	cfg.Admin.Username = "admin1"
	cfg.Admin.Password = "admin123"

	svc, err := NewSessionService(SessionServiceParams{
		TxManager:   &fakeTxManager{farmerRepo: farmerRepo, sessionRepo: sessionRepo},
		FarmerRepo:  farmerRepo,
		SessionRepo: sessionRepo,
		Hasher:      fakeHasher{},
		TokenSvc:    fakeTokenService{},
		Config:      cfg,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	return svc, farmerRepo, sessionRepo
}

func TestSessionService_SeedsDemoFarmer(t *testing.T) {
	svc, farmerRepo, _ := newSessionFixture(t)
	ctx := context.Background()

	farmer, err := farmerRepo.FindByUsername(ctx, "farmer1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Farmer", farmer.Profile.FullName)

	// Demo credential logs in out of the box.
	output, err := svc.Login(ctx, &usecase.LoginInput{Username: "farmer1", Password: "farmer123", Role: entity.RoleFarmer})
	require.NoError(t, err)
	assert.True(t, output.Principal.IsFarmer())
	assert.NotEmpty(t, output.AccessToken)
}

func TestSessionService_LoginFailureIsUniform(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	// Unknown username and wrong password produce the identical error, so the
	// response never reveals which part was wrong.
	_, unknownErr := svc.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "x", Role: entity.RoleFarmer})
	_, wrongPassErr := svc.Login(ctx, &usecase.LoginInput{Username: "farmer1", Password: "wrong", Role: entity.RoleFarmer})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)

	// Username matching is exact, no case normalization.
	_, caseErr := svc.Login(ctx, &usecase.LoginInput{Username: "FARMER1", Password: "farmer123", Role: entity.RoleFarmer})
	assert.ErrorIs(t, caseErr, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_AdminLogin(t *testing.T) {
	svc, _, sessionRepo := newSessionFixture(t)
	ctx := context.Background()

	output, err := svc.Login(ctx, &usecase.LoginInput{Username: "admin1", Password: "admin123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Principal.Role)
	assert.Nil(t, output.Principal.Profile)

	// The snapshot is persisted so a restart restores the login.
	persisted, err := sessionRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, persisted.Role)

	// Admin credentials only work for the admin role.
	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "admin1", Password: "admin123", Role: entity.RoleFarmer})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_SignupThenLogin(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	input := &usecase.SignupInput{
		Username: "ramesh",
		Password: "secret99",
		Profile:  entity.FarmerProfile{FullName: "Ramesh Kumar", PreferredLanguage: "hi"},
	}
	require.NoError(t, svc.Signup(ctx, input))

	// Signup does not log the farmer in.
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	output, err := svc.Login(ctx, &usecase.LoginInput{Username: "ramesh", Password: "secret99", Role: entity.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", output.Principal.Profile.FullName)
}

func TestSessionService_SignupDuplicateUsername(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	err := svc.Signup(ctx, &usecase.SignupInput{Username: "farmer1", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestSessionService_SignupRejectsNegativeLandSize(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	err := svc.Signup(context.Background(), &usecase.SignupInput{
		Username: "suresh",
		Password: "pw",
		Profile:  entity.FarmerProfile{LandSizeAcres: -1},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSessionService_UpdateProfileMergesAndPersists(t *testing.T) {
	svc, farmerRepo, sessionRepo := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "farmer1", Password: "farmer123", Role: entity.RoleFarmer})
	require.NoError(t, err)

	location := "Jaipur, Rajasthan"
	lang := entity.Language("hi")
	principal, err := svc.UpdateProfile(ctx, &usecase.ProfileUpdate{Location: &location, PreferredLanguage: &lang})
	require.NoError(t, err)

	// Changed fields applied, untouched fields kept.
	assert.Equal(t, location, principal.Profile.Location)
	assert.Equal(t, lang, principal.Profile.PreferredLanguage)
	assert.Equal(t, "Demo Farmer", principal.Profile.FullName)

	// Both the credential record and the session snapshot were rewritten.
	farmer, err := farmerRepo.FindByUsername(ctx, "farmer1")
	require.NoError(t, err)
	assert.Equal(t, location, farmer.Profile.Location)

	persisted, err := sessionRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, location, persisted.Profile.Location)
}

func TestSessionService_UpdateProfileRollsBackOnFailure(t *testing.T) {
	svc, farmerRepo, sessionRepo := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "farmer1", Password: "farmer123", Role: entity.RoleFarmer})
	require.NoError(t, err)

	sessionRepo.saveErr = errors.New("disk full")
	location := "Nowhere"
	_, err = svc.UpdateProfile(ctx, &usecase.ProfileUpdate{Location: &location})
	require.Error(t, err)
	sessionRepo.saveErr = nil

	// The credential record kept its prior profile.
	farmer, err := farmerRepo.FindByUsername(ctx, "farmer1")
	require.NoError(t, err)
	assert.Equal(t, "Ramgarh, Rajasthan", farmer.Profile.Location)

	// The in-memory principal was not advanced either.
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ramgarh, Rajasthan", current.Profile.Location)
}

func TestSessionService_UpdateProfileRequiresFarmer(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	// Logged out.
	name := "X"
	_, err := svc.UpdateProfile(ctx, &usecase.ProfileUpdate{FullName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotFarmer)

	// Admin session.
	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "admin1", Password: "admin123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	_, err = svc.UpdateProfile(ctx, &usecase.ProfileUpdate{FullName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotFarmer)
}

func TestSessionService_LogoutIsIdempotent(t *testing.T) {
	svc, _, sessionRepo := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Username: "farmer1", Password: "farmer123", Role: entity.RoleFarmer})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
	_, err = sessionRepo.Load(ctx)
	assert.Error(t, err)

	// Logging out again is a no-op.
	require.NoError(t, svc.Logout(ctx))
}

func TestSessionService_RestoresPersistedSession(t *testing.T) {
	farmerRepo := newFakeFarmerRepo()
	sessionRepo := &fakeSessionRepo{principal: &entity.Principal{
		Role:     entity.RoleFarmer,
		Username: "ramesh",
		Profile:  &entity.FarmerProfile{FullName: "Ramesh Kumar"},
	}}

	cfg := &config.Config{}
	cfg.Admin.Username = "admin1"
	cfg.Admin.Password = "admin123"

	svc, err := NewSessionService(SessionServiceParams{
		TxManager:   &fakeTxManager{farmerRepo: farmerRepo, sessionRepo: sessionRepo},
		FarmerRepo:  farmerRepo,
		SessionRepo: sessionRepo,
		Hasher:      fakeHasher{},
		TokenSvc:    fakeTokenService{},
		Config:      cfg,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ramesh", current.Username)
}
