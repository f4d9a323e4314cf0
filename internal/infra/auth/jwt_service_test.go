package auth

import (
	"testing"

	"saathi/config"
	"saathi/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.GenerateToken("farmer1", entity.RoleFarmer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "farmer1", claims["sub"])
	assert.Equal(t, string(entity.RoleFarmer), claims["role"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.GenerateToken("admin1", entity.RoleAdmin)
	require.NoError(t, err)

	other := &config.Config{}
	other.SecretKey.Access = "a_completely_different_secret_key_string"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
