package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestPair(t *testing.T, issuer string, audience []string, expiry time.Duration) (*JWTGenerator, *JWTValidator) {
	t.Helper()

	gen, err := NewJWTGenerator(testSecret, issuer, audience, expiry)
	require.NoError(t, err)

	val, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: issuer, Audience: audience})
	require.NoError(t, err)

	return gen, val
}

func TestValidateToken_Roundtrip(t *testing.T) {
	gen, val := newTestPair(t, "aura", []string{"aura-api"}, time.Hour)

	token, err := gen.GenerateToken("user-123", "user@example.com", []string{"member"})
	require.NoError(t, err)

	claims, err := val.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, []string{"member"}, claims.Roles)
	assert.Equal(t, "aura", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_StripsBearerPrefix(t *testing.T) {
	gen, val := newTestPair(t, "", nil, time.Hour)

	token, err := gen.GenerateToken("user-123", "", nil)
	require.NoError(t, err)

	claims, err := val.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateToken_MissingToken(t *testing.T) {
	_, val := newTestPair(t, "", nil, time.Hour)

	_, err := val.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = val.ValidateToken("Bearer   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateToken_Expired(t *testing.T) {
	gen, val := newTestPair(t, "", nil, -time.Minute)

	token, err := gen.GenerateToken("user-123", "", nil)
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	gen, err := NewJWTGenerator("a-completely-different-secret", "", nil, time.Hour)
	require.NoError(t, err)

	_, val := newTestPair(t, "", nil, time.Hour)

	token, err := gen.GenerateToken("user-123", "", nil)
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	gen, err := NewJWTGenerator(testSecret, "someone-else", nil, time.Hour)
	require.NoError(t, err)

	val, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "aura"})
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "", nil)
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	gen, err := NewJWTGenerator(testSecret, "aura", []string{"other-api"}, time.Hour)
	require.NoError(t, err)

	val, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "aura", Audience: []string{"aura-api"}})
	require.NoError(t, err)

	token, err := gen.GenerateToken("user-123", "", nil)
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)

	_, err = NewJWTGenerator("", "", nil, time.Hour)
	assert.Error(t, err)
}

func TestUserContext_Roundtrip(t *testing.T) {
	user := &UserContext{UserID: "user-123", Email: "user@example.com", Roles: []string{"member"}}

	ctx := SetUserInContext(context.Background(), user)
	got, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = GetUserFromContext(context.Background())
	assert.Error(t, err)
}
