package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/marwan-sadiq/deptapp/internal/application/identity"
	"github.com/marwan-sadiq/deptapp/internal/domain/identity"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/auth"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthTestFixture(t *testing.T) (*gin.Engine, *MockUserRepository) {
	t.Helper()

	users := new(MockUserRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret-at-least-32-chars!!",
		AccessTokenExpiration:  time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "deptapp-test",
	})
	service := identityapp.NewAuthService(
		users,
		jwtService,
		auth.NewInMemoryTokenBlacklist(),
		config.AuthConfig{MaxFailedAttempts: 3, LockoutDuration: 15 * time.Minute},
		zap.NewNop(),
	)

	r := gin.New()
	api := r.Group("/api/v1")
	NewAuthHandler(service).RegisterRoutes(api)
	return r, users
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r, users := newAuthTestFixture(t)

	user, err := identity.NewUser("aram", "correct-password")
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "aram").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"aram","password":"correct-password"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	r, users := newAuthTestFixture(t)

	user, err := identity.NewUser("aram", "correct-password")
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "aram").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"aram","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INVALID_CREDENTIALS")
}

func TestLoginUnknownUser(t *testing.T) {
	r, users := newAuthTestFixture(t)

	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, assert.AnError)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"ghost","password":"whatever-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INVALID_CREDENTIALS")
}

func TestLoginValidationError(t *testing.T) {
	r, _ := newAuthTestFixture(t)

	w := postJSON(r, "/api/v1/auth/login", `{"username":"aram"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
}

func TestRefreshInvalidToken(t *testing.T) {
	r, _ := newAuthTestFixture(t)

	w := postJSON(r, "/api/v1/auth/refresh", `{"refresh_token":"not-a-real-token"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
}

func TestRegisterRequiresManager(t *testing.T) {
	r, _ := newAuthTestFixture(t)

	// No JWT context at all, so the manager flag is absent
	w := postJSON(r, "/api/v1/auth/register", `{"username":"newbie","password":"secret-pass-1"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
