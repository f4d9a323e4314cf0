package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// LocalizationUsecase is the single source for the active UI language and the
// translate lookup.
//
// The active language is derived, not stored: a farmer session with a
// non-empty preferred language wins, then the persisted device preference,
// then English. Because derivation happens on every read, a principal change
// re-derives automatically and the profile stays authoritative post-login.
type LocalizationUsecase interface {
	// ActiveLanguage resolves the language every translate call uses.
	ActiveLanguage(ctx context.Context) entity.Language

	// SetLanguage switches the active language. It always persists the
	// device-level preference (so the choice survives logout) and, when a
	// farmer is logged in with a different stored preference, writes the new
	// code into the profile as well.
	SetLanguage(ctx context.Context, lang entity.Language) error

	// Translate resolves a dot-delimited key against the active language's
	// catalog. A key missing from both the active language and English
	// renders literally as the key string; this is a soft-failure display
	// mode, never an error.
	Translate(ctx context.Context, key string) string

	// SupportedLanguages lists the fixed language set for the picker.
	SupportedLanguages() []entity.LanguageInfo
}
