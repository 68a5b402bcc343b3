package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quytran/folio/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

// TestJWTService_RoundTrip tests generate-then-validate
func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService("test-secret")
	sessionID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.GetSessionID())
}

// TestJWTService_WrongSecret tests rejection of tokens signed elsewhere
func TestJWTService_WrongSecret(t *testing.T) {
	token, _, err := testJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

// TestJWTService_ExpiredToken tests rejection of an already expired token
func TestJWTService_ExpiredToken(t *testing.T) {
	svc := testJWTService("test-secret")

	// Hand-build a token that expired an hour ago.
	claims := &Claims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

// TestJWTService_MalformedToken tests rejection of garbage input
func TestJWTService_MalformedToken(t *testing.T) {
	svc := testJWTService("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

// TestJWTService_RejectsUnexpectedSigningMethod tests the alg check
func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := testJWTService("test-secret")

	// An unsigned token declares alg "none".
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: uuid.New()})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
