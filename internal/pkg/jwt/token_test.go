package jwt

import (
	"testing"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "fanloop-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestValidateToken_Valid(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	token, _, err := GenerateToken(userID, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	token, _, err := GenerateToken(uuid.New(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iss":     cfg.JWT.Issuer,
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
