package repository

import (
	"context"
	"errors"

	"saathi/internal/domain/entity"
)

// ErrPreferenceNotFound is returned when no device-level preference is stored.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository persists device-level settings that outlive a session,
// most importantly the UI language chosen before any login.
type PreferenceRepository interface {
	// Language returns the persisted device-level language preference.
	Language(ctx context.Context) (entity.Language, error)

	// SaveLanguage overwrites the device-level language preference.
	SaveLanguage(ctx context.Context, lang entity.Language) error
}
