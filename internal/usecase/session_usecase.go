// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"saathi/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=farmer admin"`
}

// SignupInput defines the data required to register a new farmer.
type SignupInput struct {
	Username string               `json:"username" validate:"required"`
	Password string               `json:"password" validate:"required"`
	Profile  entity.FarmerProfile `json:"profile"`
}

// ProfileUpdate is a partial profile: nil fields keep their prior values
// (shallow merge).
type ProfileUpdate struct {
	FullName          *string                  `json:"fullName,omitempty"`
	Phone             *string                  `json:"phone,omitempty"`
	Location          *string                  `json:"location,omitempty"`
	LandSizeAcres     *float64                 `json:"landSize,omitempty"`
	SoilType          *entity.SoilType         `json:"soilType,omitempty"`
	IrrigationSource  *entity.IrrigationSource `json:"irrigationSource,omitempty"`
	LastSeasonCrops   *string                  `json:"lastSeasonCrops,omitempty"`
	PreferredLanguage *entity.Language         `json:"preferredLanguage,omitempty"`
}

// --- Output DTOs ---

// LoginOutput returns the authenticated principal plus the access token the
// client sends on subsequent requests.
type LoginOutput struct {
	Principal   *entity.Principal `json:"principal"`
	AccessToken string            `json:"accessToken"`
}

// SessionUsecase owns the single current principal and the durable credential
// records. It is the only component that creates, mutates, or destroys a
// principal.
type SessionUsecase interface {
	// Login authenticates a username/password pair for a role and persists
	// the resulting principal as the current session. Fails with a uniform
	// ErrInvalidCredentials that never reveals which part was wrong.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Signup appends a new credential record. It does not log the farmer in;
	// the client redirects to login afterwards.
	Signup(ctx context.Context, input *SignupInput) error

	// Logout clears the current session. Idempotent.
	Logout(ctx context.Context) error

	// UpdateProfile shallow-merges a partial profile into the current farmer
	// principal and its credential record, atomically.
	UpdateProfile(ctx context.Context, update *ProfileUpdate) (*entity.Principal, error)

	// Current returns the restored principal, or nil when logged out.
	Current(ctx context.Context) (*entity.Principal, error)
}
