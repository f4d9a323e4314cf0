package repository

import (
	"context"
	"errors"

	"saathi/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session snapshot is persisted.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the single current-session snapshot so a login
// survives a process restart. At most one principal is stored at a time.
type SessionRepository interface {
	// Load restores the persisted principal, or ErrSessionNotFound.
	Load(ctx context.Context) (*entity.Principal, error)

	// Save overwrites the persisted principal snapshot.
	Save(ctx context.Context, principal *entity.Principal) error

	// Clear removes the snapshot. Clearing an absent snapshot is a no-op.
	Clear(ctx context.Context) error
}
