package auth

import (
	"testing"
	"time"

	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key",
		TokenExpiration: expiration,
		Issuer:          "finvoice-test",
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := newTestJWTService(time.Hour)
	companyID := uuid.New()
	employeeID := uuid.New()

	token, err := service.GenerateToken(GenerateTokenInput{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Email:      "alice@example.com",
		IsManager:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, companyID.String(), claims.CompanyID)
	assert.Equal(t, employeeID.String(), claims.EmployeeID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsManager)
	assert.Equal(t, "finvoice-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "every token needs a JTI for revocation")
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, err := service.GenerateToken(GenerateTokenInput{
		CompanyID:  uuid.New(),
		EmployeeID: uuid.New(),
		Email:      "bob@example.com",
	})
	require.NoError(t, err)

	_, err = service.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	verifier := NewJWTService(config.JWTConfig{
		Secret:          "different-secret",
		TokenExpiration: time.Hour,
		Issuer:          "finvoice-test",
	})

	token, err := issuer.GenerateToken(GenerateTokenInput{
		CompanyID:  uuid.New(),
		EmployeeID: uuid.New(),
		Email:      "carol@example.com",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("")
	assert.Error(t, err)
}

func TestClaimsRemainingTTL(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken(GenerateTokenInput{
		CompanyID:  uuid.New(),
		EmployeeID: uuid.New(),
		Email:      "dave@example.com",
	})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	ttl := claims.RemainingTTL()
	assert.Greater(t, ttl, 50*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
	assert.False(t, claims.GetIssuedAtTime().IsZero())
}
