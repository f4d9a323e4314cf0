package impl

import (
	"context"
	"log/slog"

	deliverycontext "saathi/internal/delivery/context"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"
	"saathi/internal/infra/i18n"
	"saathi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// localizationService implements the LocalizationUsecase interface.
//
// The active language is never stored here: it is derived on each read from
// the current principal and the device preference. That makes the profile
// authoritative the moment a farmer logs in, with no sync step.
type localizationService struct {
	session  usecase.SessionUsecase
	prefRepo repository.PreferenceRepository
	catalog  *i18n.Catalog
	logger   *slog.Logger
}

// LocalizationServiceParams holds dependencies injected by Fx.
type LocalizationServiceParams struct {
	fx.In

	Session  usecase.SessionUsecase
	PrefRepo repository.PreferenceRepository
	Catalog  *i18n.Catalog
	Logger   *slog.Logger
}

// NewLocalizationService is the constructor for localizationService.
func NewLocalizationService(params LocalizationServiceParams) usecase.LocalizationUsecase {
	return &localizationService{
		session:  params.Session,
		prefRepo: params.PrefRepo,
		catalog:  params.Catalog,
		logger:   params.Logger,
	}
}

func (srv *localizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActiveLanguage resolves, in order: the logged-in farmer's preferred
// language, the persisted device preference, English.
func (srv *localizationService) ActiveLanguage(ctx context.Context) entity.Language {
	principal, err := srv.session.Current(ctx)
	if err == nil && principal.IsFarmer() && principal.Profile.PreferredLanguage != "" {
		return principal.Profile.PreferredLanguage
	}

	lang, err := srv.prefRepo.Language(ctx)
	if err == nil && entity.IsSupportedLanguage(lang) {
		return lang
	}

	return entity.LanguageEnglish
}

// SetLanguage persists the device preference unconditionally (it must survive
// logout) and writes the profile only when a farmer is logged in with a
// different stored preference.
func (srv *localizationService) SetLanguage(ctx context.Context, lang entity.Language) error {
	if !entity.IsSupportedLanguage(lang) {
		return domainerrors.ErrUnsupportedLanguage.WrapMessage(string(lang))
	}

	if err := srv.prefRepo.SaveLanguage(ctx, lang); err != nil {
		return errors.Wrap(err, "failed to persist device language preference")
	}

	principal, err := srv.session.Current(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read current session")
	}
	if principal.IsFarmer() && principal.Profile.PreferredLanguage != lang {
		if _, err := srv.session.UpdateProfile(ctx, &usecase.ProfileUpdate{PreferredLanguage: &lang}); err != nil {
			return errors.Wrap(err, "failed to write language into profile")
		}
	}

	srv.log(ctx).Debug("Language changed", slog.String("language", string(lang)))

	return nil
}

// Translate walks the dot-delimited key through the active language catalog.
// A miss resolves to the key itself; that sentinel (value equal to the key)
// also triggers one re-resolution against the English catalog. A key missing
// from both renders literally as the key string, an intentional soft failure.
func (srv *localizationService) Translate(ctx context.Context, key string) string {
	lang := srv.ActiveLanguage(ctx)

	resolved, ok := srv.catalog.Lookup(lang, key)
	if !ok {
		resolved = key
	}

	if lang != entity.LanguageEnglish && resolved == key {
		fallback, ok := srv.catalog.Lookup(entity.LanguageEnglish, key)
		if !ok {
			return key
		}

		return fallback
	}

	return resolved
}

// SupportedLanguages lists the fixed language set.
func (srv *localizationService) SupportedLanguages() []entity.LanguageInfo {
	return entity.SupportedLanguages
}
