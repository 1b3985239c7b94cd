package authControllers

import (
	"testing"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "access-secret-for-tests")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret-for-tests")
}

var testUser = models.User{
	ID:    "7b0c2f1e-9a4d-4c7b-8a7e-2f54c1d9e0aa",
	Email: "buyer@example.com",
	Role:  models.RoleB2B,
}

func TestIssueTokenPairClaims(t *testing.T) {
	setTestSecrets(t)

	pair, err := IssueTokenPair(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := VerifyToken(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, claims.UserID)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.Equal(t, models.RoleB2B, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	refreshClaims, err := VerifyToken(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.Type)
}

func TestTokenTypeSeparation(t *testing.T) {
	setTestSecrets(t)

	pair, err := IssueTokenPair(testUser)
	require.NoError(t, err)

	// a refresh token must never pass where an access token is required
	_, err = VerifyToken(pair.RefreshToken, TokenTypeAccess)
	assert.Error(t, err)

	// and vice versa
	_, err = VerifyToken(pair.AccessToken, TokenTypeRefresh)
	assert.Error(t, err)
}

func TestTokenTypeClaimCheckedEvenWithSharedSecret(t *testing.T) {
	// With identical secrets the signature alone can no longer tell the
	// two types apart, so the type claim has to do it.
	t.Setenv("JWT_SECRET", "one-secret")
	t.Setenv("JWT_REFRESH_SECRET", "one-secret")

	refresh, err := SignToken(testUser, TokenTypeRefresh)
	require.NoError(t, err)

	_, err = VerifyToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	setTestSecrets(t)
	t.Setenv("JWT_ACCESS_EXPIRY", "-1h")

	token, err := SignToken(testUser, TokenTypeAccess)
	require.NoError(t, err)

	_, err = VerifyToken(token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestExpiryEnvOverride(t *testing.T) {
	setTestSecrets(t)
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")

	token, err := SignToken(testUser, TokenTypeAccess)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64((15 * time.Minute).Seconds()), exp-iat)
}

func TestAssignRole(t *testing.T) {
	assert.Equal(t, models.RoleAdmin, assignRole("ops@bundleup.com", "b2c"))
	assert.Equal(t, models.RoleB2B, assignRole("buyer@biz.com", "b2b"))
	assert.Equal(t, models.RoleB2C, assignRole("new@biz.com", ""))
	assert.Equal(t, models.RoleB2C, assignRole("new@biz.com", "bogus"))
}
