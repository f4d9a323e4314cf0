// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"saathi/internal/domain/entity"
)

// ErrFarmerNotFound is a domain-specific error returned when no credential
// record exists for a username.
var ErrFarmerNotFound = errors.New("farmer not found")

// FarmerRepository manages the durable set of farmer credential records.
// Records are created at signup and never deleted.
type FarmerRepository interface {
	// FindByUsername retrieves a farmer's public record by username.
	FindByUsername(ctx context.Context, username string) (*entity.Farmer, error)

	// FindCredential retrieves the authentication half of a farmer record.
	FindCredential(ctx context.Context, username string) (*entity.Credential, error)

	// Create persists a new credential record. Returns
	// domainerrors.ErrDuplicateUsername when the username is already taken,
	// leaving the existing record untouched.
	Create(ctx context.Context, farmer *entity.Farmer, passwordHash string) error

	// UpdateProfile replaces the stored profile of an existing record.
	UpdateProfile(ctx context.Context, username string, profile entity.FarmerProfile) error

	// List returns all registered farmers, ordered by creation time.
	List(ctx context.Context) ([]*entity.Farmer, error)
}
