package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authControllers "github.com/FreshDev-Capstone/bundle-up-sub000/controllers/auth"
	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Setenv("JWT_SECRET", "mw-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "mw-refresh-secret")
	t.Setenv("OPS_API_KEY", "ops-key")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/private", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c), "role": string(UserRole(c))})
	})
	r.GET("/admin", ValidateToken, RequireAdmin, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/public", OptionalToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(UserRole(c))})
	})
	r.GET("/ops", ValidateAPIKey, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func issue(t *testing.T, role models.Role, tokenType string) string {
	token, err := authControllers.SignToken(models.User{
		ID:    "11111111-2222-3333-4444-555555555555",
		Email: "mw@example.com",
		Role:  role,
	}, tokenType)
	require.NoError(t, err)
	return token
}

func do(r *gin.Engine, path, authHeader, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenMissingHeader(t *testing.T) {
	r := setupRouter(t)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "", "").Code)
}

func TestValidateTokenAcceptsAccessToken(t *testing.T) {
	r := setupRouter(t)
	w := do(r, "/private", "Bearer "+issue(t, models.RoleB2B, authControllers.TokenTypeAccess), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"b2b"`)
}

func TestBearerSchemeRequired(t *testing.T) {
	r := setupRouter(t)
	token := issue(t, models.RoleB2C, authControllers.TokenTypeAccess)

	// no space between scheme and token
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "Bearer"+token, "").Code)

	// other schemes are not raw tokens
	assert.Equal(t, http.StatusUnauthorized, do(r, "/private", "Basic dXNlcjpwYXNz", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/public", "Basic dXNlcjpwYXNz", "").Code)
}

func TestValidateTokenRejectsRefreshToken(t *testing.T) {
	r := setupRouter(t)
	w := do(r, "/private", "Bearer "+issue(t, models.RoleB2B, authControllers.TokenTypeRefresh), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/admin", "Bearer "+issue(t, models.RoleB2C, authControllers.TokenTypeAccess), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, "/admin", "Bearer "+issue(t, models.RoleAdmin, authControllers.TokenTypeAccess), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalToken(t *testing.T) {
	r := setupRouter(t)

	// anonymous browsing resolves to the retail tier
	w := do(r, "/public", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"b2c"`)

	w = do(r, "/public", "Bearer "+issue(t, models.RoleB2B, authControllers.TokenTypeAccess), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"b2b"`)

	w = do(r, "/public", "Bearer not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateAPIKey(t *testing.T) {
	r := setupRouter(t)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/ops", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/ops", "", "wrong").Code)
	assert.Equal(t, http.StatusOK, do(r, "/ops", "", "ops-key").Code)
}
