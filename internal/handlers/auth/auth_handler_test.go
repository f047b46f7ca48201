package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vos-erp-service/internal/domain/user"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/pkg/token"
	authService "vos-erp-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type memoryStore struct {
	byID map[int64]*user.User
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (m *memoryStore) FindByRFID(_ context.Context, rf string) (*user.User, error) {
	for _, u := range m.byID {
		if u.RFID.Valid && u.RFID.String == rf {
			return u, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (m *memoryStore) SessionToken(_ context.Context, id int64) (sql.NullString, error) {
	u, ok := m.byID[id]
	if !ok {
		return sql.NullString{}, xerrors.ErrNotFound
	}
	return u.SessionToken, nil
}

func (m *memoryStore) UpdateSessionToken(_ context.Context, id int64, jti string) error {
	u, ok := m.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	u.SessionToken = sql.NullString{String: jti, Valid: true}
	return nil
}

func (m *memoryStore) ClearSessionToken(_ context.Context, id int64) error {
	if u, ok := m.byID[id]; ok {
		u.SessionToken = sql.NullString{}
	}
	return nil
}

func newLoginEnv(t *testing.T) (*gin.Engine, *memoryStore, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &memoryStore{byID: map[int64]*user.User{
		9: {
			ID:           9,
			Email:        "ops@vos.ph",
			PasswordHash: string(hash),
			FirstName:    "Op",
			LastName:     "Erator",
			Status:       user.StatusActive,
		},
	}}

	manager, err := token.NewManager(token.Config{
		Secret:     "handler-test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	svc := authService.NewService(store, manager, nil, nil, zap.NewNop())
	cookies := &CookieWriter{
		AccessName:  "vos_app_access",
		RefreshName: "vos_app_refresh",
		AccessTTL:   15 * time.Minute,
		RefreshTTL:  24 * time.Hour,
	}
	h := NewAuthHandler(svc, cookies, zap.NewNop())

	r := gin.New()
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/logout", h.Logout)
	return r, store, manager
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookies(t *testing.T) {
	r, store, manager := newLoginEnv(t)

	body := strings.NewReader(`{"email":"ops@vos.ph","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool             `json:"ok"`
		User user.SessionUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "9", resp.User.Sub)
	assert.Equal(t, "ops@vos.ph", resp.User.Email)
	assert.NotEmpty(t, resp.User.JTI)

	// Tokens ride in cookies, never in the JSON body.
	assert.NotContains(t, w.Body.String(), "accessToken")
	assert.NotContains(t, w.Body.String(), "eyJ")

	access := cookieByName(w.Result().Cookies(), "vos_app_access")
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	assert.False(t, access.Secure)

	refresh := cookieByName(w.Result().Cookies(), "vos_app_refresh")
	require.NotNil(t, refresh)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refresh.MaxAge)

	// The cookie decodes to the same identity the body echoed, and the
	// stored session pointer matches the minted jti.
	claims, err := manager.Verifier.Verify(access.Value)
	require.NoError(t, err)
	assert.Equal(t, "9", claims.UserID())
	assert.Equal(t, resp.User.JTI, claims.SessionID())

	stored := store.byID[9].SessionToken
	require.True(t, stored.Valid)
	assert.Equal(t, claims.SessionID(), stored.String)
}

func TestLoginWrongPasswordSetsNoCookies(t *testing.T) {
	r, _, _ := newLoginEnv(t)

	body := strings.NewReader(`{"email":"ops@vos.ph","password":"wrong-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
	assert.NotContains(t, w.Body.String(), "secret123")
}

func TestLoginMissingFields(t *testing.T) {
	r, _, _ := newLoginEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"ops@vos.ph"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsCookiesAndSessionPointer(t *testing.T) {
	r, store, manager := newLoginEnv(t)

	// Establish a session first.
	body := strings.NewReader(`{"email":"ops@vos.ph","password":"secret123"}`)
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	loginReq.Header.Set("Content-Type", "application/json")
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	access := cookieByName(loginW.Result().Cookies(), "vos_app_access")
	require.NotNil(t, access)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logoutReq.AddCookie(access)
	logoutW := httptest.NewRecorder()
	r.ServeHTTP(logoutW, logoutReq)

	assert.Equal(t, http.StatusOK, logoutW.Code)

	cleared := cookieByName(logoutW.Result().Cookies(), "vos_app_access")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)

	assert.False(t, store.byID[9].SessionToken.Valid)

	// The old token still verifies locally; only the stored pointer died.
	_, err := manager.Verifier.Verify(access.Value)
	assert.NoError(t, err)
}

func TestLogoutWithoutCookieIsOK(t *testing.T) {
	r, _, _ := newLoginEnv(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
