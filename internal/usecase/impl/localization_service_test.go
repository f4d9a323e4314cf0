package impl

import (
	"context"
	"testing"

	"saathi/config"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/infra/i18n"
	"saathi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type localizationFixture struct {
	loc      usecase.LocalizationUsecase
	session  usecase.SessionUsecase
	prefRepo *fakePrefRepo
}

func newLocalizationFixture(t *testing.T) *localizationFixture {
	t.Helper()

	farmerRepo := newFakeFarmerRepo()
	sessionRepo := &fakeSessionRepo{}
	prefRepo := &fakePrefRepo{}

	cfg := &config.Config{}
	cfg.Admin.Username = "admin1"
	cfg.Admin.Password = "admin123"

	session, err := NewSessionService(SessionServiceParams{
		TxManager:   &fakeTxManager{farmerRepo: farmerRepo, sessionRepo: sessionRepo},
		FarmerRepo:  farmerRepo,
		SessionRepo: sessionRepo,
		Hasher:      fakeHasher{},
		TokenSvc:    fakeTokenService{},
		Config:      cfg,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	catalog, err := i18n.NewCatalog()
	require.NoError(t, err)

	loc := NewLocalizationService(LocalizationServiceParams{
		Session:  session,
		PrefRepo: prefRepo,
		Catalog:  catalog,
		Logger:   discardLogger(),
	})

	return &localizationFixture{loc: loc, session: session, prefRepo: prefRepo}
}

func (f *localizationFixture) loginDemoFarmer(t *testing.T) {
	t.Helper()

	_, err := f.session.Login(context.Background(), &usecase.LoginInput{
		Username: "farmer1",
		Password: "farmer123",
		Role:     entity.RoleFarmer,
	})
	require.NoError(t, err)
}

func TestLocalization_DerivationOrder(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	// Logged out, no preference: English.
	assert.Equal(t, entity.LanguageEnglish, fixture.loc.ActiveLanguage(ctx))

	// Device preference wins while logged out.
	fixture.prefRepo.lang = "ta"
	assert.Equal(t, entity.Language("ta"), fixture.loc.ActiveLanguage(ctx))

	// A logged-in farmer's profile language beats the device preference.
	fixture.loginDemoFarmer(t)
	lang := entity.Language("hi")
	_, err := fixture.session.UpdateProfile(ctx, &usecase.ProfileUpdate{PreferredLanguage: &lang})
	require.NoError(t, err)
	assert.Equal(t, lang, fixture.loc.ActiveLanguage(ctx))

	// Logout falls back to the device preference again.
	require.NoError(t, fixture.session.Logout(ctx))
	assert.Equal(t, entity.Language("ta"), fixture.loc.ActiveLanguage(ctx))
}

func TestLocalization_SetLanguagePersistsDevicePreference(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	require.NoError(t, fixture.loc.SetLanguage(ctx, "gu"))
	assert.Equal(t, entity.Language("gu"), fixture.prefRepo.lang)
	assert.Equal(t, entity.Language("gu"), fixture.loc.ActiveLanguage(ctx))
}

func TestLocalization_SetLanguageWritesIntoFarmerProfile(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	fixture.loginDemoFarmer(t)
	require.NoError(t, fixture.loc.SetLanguage(ctx, "hi"))

	current, err := fixture.session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Language("hi"), current.Profile.PreferredLanguage)

	// The choice survives logout via the device preference.
	require.NoError(t, fixture.session.Logout(ctx))
	assert.Equal(t, entity.Language("hi"), fixture.loc.ActiveLanguage(ctx))
}

func TestLocalization_SetLanguageRejectsUnsupported(t *testing.T) {
	fixture := newLocalizationFixture(t)

	err := fixture.loc.SetLanguage(context.Background(), "fr")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedLanguage)
}

func TestLocalization_TranslateActiveLanguage(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	assert.Equal(t, "Your AI Farming Assistant", fixture.loc.Translate(ctx, "login.subtitle"))

	require.NoError(t, fixture.loc.SetLanguage(ctx, "hi"))
	assert.Equal(t, "फसल सलाह", fixture.loc.Translate(ctx, "dashboard.cropAdvice"))
}

func TestLocalization_TranslateFallsBackToEnglish(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	// Marathi ships without the signup section, so those keys resolve from
	// the English catalog instead.
	require.NoError(t, fixture.loc.SetLanguage(ctx, "mr"))
	assert.Equal(t, "Create Farmer Account", fixture.loc.Translate(ctx, "signup.title"))

	// Tamil carries only the chat greeting; everything else falls back too.
	require.NoError(t, fixture.loc.SetLanguage(ctx, "ta"))
	assert.Equal(t, "Kisan Saathi", fixture.loc.Translate(ctx, "header.title"))
}

func TestLocalization_TranslateMissingKeyRendersLiterally(t *testing.T) {
	fixture := newLocalizationFixture(t)
	ctx := context.Background()

	assert.Equal(t, "no.such.key", fixture.loc.Translate(ctx, "no.such.key"))

	require.NoError(t, fixture.loc.SetLanguage(ctx, "hi"))
	assert.Equal(t, "no.such.key", fixture.loc.Translate(ctx, "no.such.key"))
}

func TestLocalization_SupportedLanguages(t *testing.T) {
	fixture := newLocalizationFixture(t)

	languages := fixture.loc.SupportedLanguages()
	require.Len(t, languages, 12)
	assert.Equal(t, entity.LanguageEnglish, languages[0].Code)
}
