// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"saathi/config"
	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/domain/service"
	"saathi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Demo credential seeded on first run so the app is usable out of the box.
const (
	demoUsername = "farmer1"
	demoPassword = "farmer123"
)

var demoProfile = entity.FarmerProfile{
	FullName:          "Demo Farmer",
	Phone:             "9876543210",
	Location:          "Ramgarh, Rajasthan",
	LandSizeAcres:     10,
	SoilType:          entity.SoilLoamy,
	IrrigationSource:  entity.IrrigationCanal,
	LastSeasonCrops:   "Wheat, Mustard",
	PreferredLanguage: entity.LanguageEnglish,
}

// sessionService implements the SessionUsecase interface. It keeps the
// current principal in memory, mirrored to the persisted session snapshot.
type sessionService struct {
	mu            sync.RWMutex
	current       *entity.Principal
	txManager     repository.TransactionManager
	farmerRepo    repository.FarmerRepository
	sessionRepo   repository.SessionRepository
	hasher        service.PasswordHasher
	tokenSvc      service.TokenService
	adminUsername string
	adminPassword string
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FarmerRepo  repository.FarmerRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.TokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService constructs the session store. It restores any persisted
// session snapshot so a login survives a restart, and seeds the demo farmer
// credential when it is absent.
func NewSessionService(params SessionServiceParams) (usecase.SessionUsecase, error) {
	srv := &sessionService{
		txManager:     params.TxManager,
		farmerRepo:    params.FarmerRepo,
		sessionRepo:   params.SessionRepo,
		hasher:        params.Hasher,
		tokenSvc:      params.TokenSvc,
		adminUsername: params.Config.Admin.Username,
		adminPassword: params.Config.Admin.Password,
		logger:        params.Logger,
	}

	ctx := context.Background()

	principal, err := params.SessionRepo.Load(ctx)
	switch {
	case err == nil:
		srv.current = principal
		params.Logger.Info("Restored session snapshot", slog.String("username", principal.Username), slog.String("role", string(principal.Role)))
	case errors.Is(err, repository.ErrSessionNotFound):
		// Fresh start, nobody logged in.
	default:
		return nil, errors.Wrap(err, "failed to restore session snapshot")
	}

	if err := srv.seedDemoFarmer(ctx); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *sessionService) seedDemoFarmer(ctx context.Context) error {
	_, err := srv.farmerRepo.FindByUsername(ctx, demoUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrFarmerNotFound) {
		return errors.Wrap(err, "failed to check for demo farmer")
	}

	hash, err := srv.hasher.Hash(demoPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash demo farmer password")
	}

	farmer := &entity.Farmer{Username: demoUsername, Profile: demoProfile}
	if err := srv.farmerRepo.Create(ctx, farmer, hash); err != nil {
		return errors.Wrap(err, "failed to seed demo farmer")
	}

	srv.logger.Info("Seeded demo farmer credential", slog.String("username", demoUsername))

	return nil
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates the pair for the requested role. The failure path is
// deliberately uniform: the same error and message for an unknown username
// and for a wrong password, with no case normalization on either side.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var principal *entity.Principal

	switch input.Role {
	case entity.RoleAdmin:
		if input.Username != srv.adminUsername || input.Password != srv.adminPassword {
			srv.log(ctx).Warn("Admin login rejected", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}
		principal = &entity.Principal{Role: entity.RoleAdmin, Username: input.Username}

	case entity.RoleFarmer:
		credential, err := srv.farmerRepo.FindCredential(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrFarmerNotFound) {
				srv.log(ctx).Warn("Farmer login rejected", slog.String("username", input.Username))

				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, errors.Wrap(err, "failed to look up credential")
		}
		if !srv.hasher.Check(input.Password, credential.PasswordHash) {
			srv.log(ctx).Warn("Farmer login rejected", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		farmer, err := srv.farmerRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load farmer record")
		}
		profile := farmer.Profile
		principal = &entity.Principal{Role: entity.RoleFarmer, Username: farmer.Username, Profile: &profile}

	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	if err := srv.sessionRepo.Save(ctx, principal); err != nil {
		return nil, errors.Wrap(err, "failed to persist session snapshot")
	}

	token, err := srv.tokenSvc.GenerateToken(principal.Username, principal.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.mu.Lock()
	srv.current = principal
	srv.mu.Unlock()

	srv.log(ctx).Info("Login succeeded", slog.String("username", principal.Username), slog.String("role", string(principal.Role)))

	return &usecase.LoginOutput{Principal: principal, AccessToken: token}, nil
}

// Signup appends a new credential record. It never logs the farmer in; the
// client is redirected to the login form afterwards.
func (srv *sessionService) Signup(ctx context.Context, input *usecase.SignupInput) error {
	if input.Profile.LandSizeAcres < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("land size must not be negative")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during signup")
	}

	farmer := &entity.Farmer{Username: input.Username, Profile: input.Profile}
	if err := srv.farmerRepo.Create(ctx, farmer, hash); err != nil {
		return err
	}

	srv.log(ctx).Info("Farmer signed up", slog.String("username", input.Username))

	return nil
}

// Logout clears the current session. Logging out while already logged out is
// a no-op, not an error.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session snapshot")
	}

	srv.mu.Lock()
	srv.current = nil
	srv.mu.Unlock()

	srv.log(ctx).Info("Logged out")

	return nil
}

// UpdateProfile shallow-merges the partial update into the current farmer
// principal and its credential record. Both writes run in one transaction so
// the session snapshot and the credential list can never diverge.
func (srv *sessionService) UpdateProfile(ctx context.Context, update *usecase.ProfileUpdate) (*entity.Principal, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.current.IsFarmer() {
		return nil, domainerrors.ErrNotFarmer
	}

	merged := mergeProfile(*srv.current.Profile, update)
	if merged.LandSizeAcres < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("land size must not be negative")
	}

	principal := &entity.Principal{
		Role:     entity.RoleFarmer,
		Username: srv.current.Username,
		Profile:  &merged,
	}

	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.FarmerRepo().UpdateProfile(ctx, principal.Username, merged); err != nil {
			return errors.Wrap(err, "failed to update credential record")
		}
		if err := txRepos.SessionRepo().Save(ctx, principal); err != nil {
			return errors.Wrap(err, "failed to update session snapshot")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.String("username", principal.Username), slog.Any("error", err))

		return nil, err
	}

	srv.current = principal

	srv.log(ctx).Debug("Profile updated", slog.String("username", principal.Username))

	return principal, nil
}

// Current returns the in-memory principal, nil when logged out.
func (srv *sessionService) Current(ctx context.Context) (*entity.Principal, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current, nil
}

// mergeProfile applies the shallow-merge rule: nil fields keep prior values.
func mergeProfile(prior entity.FarmerProfile, update *usecase.ProfileUpdate) entity.FarmerProfile {
	merged := prior
	if update.FullName != nil {
		merged.FullName = *update.FullName
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Location != nil {
		merged.Location = *update.Location
	}
	if update.LandSizeAcres != nil {
		merged.LandSizeAcres = *update.LandSizeAcres
	}
	if update.SoilType != nil {
		merged.SoilType = *update.SoilType
	}
	if update.IrrigationSource != nil {
		merged.IrrigationSource = *update.IrrigationSource
	}
	if update.LastSeasonCrops != nil {
		merged.LastSeasonCrops = *update.LastSeasonCrops
	}
	if update.PreferredLanguage != nil {
		merged.PreferredLanguage = *update.PreferredLanguage
	}

	return merged
}
