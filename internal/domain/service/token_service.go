package service

import (
	"github.com/golang-jwt/jwt/v5"

	"saathi/internal/domain/entity"
)

// TokenService issues and validates the access tokens the mobile client sends
// on authenticated requests.
type TokenService interface {
	// GenerateToken creates a signed access token for a principal.
	GenerateToken(username string, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
