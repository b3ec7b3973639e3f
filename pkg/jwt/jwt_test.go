package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing-purposes"

func TestNewService(t *testing.T) {
	service := NewService(testSecret, time.Hour)

	assert.NotNil(t, service)
	assert.Equal(t, testSecret, service.secret)
	assert.Equal(t, time.Hour, service.tokenExpiry)
}

func TestGenerateToken(t *testing.T) {
	service := NewService(testSecret, time.Hour)
	customerID := uuid.New()
	email := "ayesha@example.com"

	token, err := service.GenerateToken(customerID, email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate the generated token
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, customerID, claims.CustomerID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, "themepark-backend", claims.Issuer)
	assert.Equal(t, customerID.String(), claims.Subject)
}

func TestValidateToken(t *testing.T) {
	service := NewService(testSecret, time.Hour)
	customerID := uuid.New()

	token, err := service.GenerateToken(customerID, "ayesha@example.com")
	require.NoError(t, err)

	t.Run("Valid Token", func(t *testing.T) {
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, customerID, claims.CustomerID)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		claims, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewService("a-different-secret-entirely", time.Hour)
		claims, err := other.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := NewService(testSecret, -time.Minute)
		expiredToken, err := expired.GenerateToken(customerID, "ayesha@example.com")
		require.NoError(t, err)

		claims, err := expired.ValidateToken(expiredToken)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Signing Method", func(t *testing.T) {
		// Tokens signed with none must be rejected.
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			CustomerID: customerID,
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := service.ValidateToken(tokenString)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
