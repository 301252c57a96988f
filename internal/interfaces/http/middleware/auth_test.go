package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authusecases "curator/internal/application/auth/usecases"
	"curator/internal/domain/user"
	"curator/internal/infrastructure/auth"
	"curator/internal/shared/authorization"
	"curator/internal/shared/biztime"
	"curator/internal/shared/config"
	"curator/internal/shared/errors"
)

type stubSessionRepo struct {
	sessions map[string]*user.Session // by token
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*user.Session{}}
}

func (r *stubSessionRepo) Replace(_ context.Context, s *user.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *stubSessionRepo) GetByUserAndToken(_ context.Context, userID uint, token string) (*user.Session, error) {
	s, ok := r.sessions[token]
	if !ok || s.UserID != userID || s.IsExpired() {
		return nil, errors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (r *stubSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *stubSessionRepo) ListActive(_ context.Context) ([]user.ActiveSessionInfo, error) {
	return nil, nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func setupAuthTest(t *testing.T) (*gin.Engine, *stubSessionRepo, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := newStubSessionRepo()
	tokens := auth.NewJWTService("test-secret", 60, "curator-auth")
	authenticate := authusecases.NewAuthenticateUseCase(sessions, tokens)

	cookieCfg := config.CookieConfig{Name: "auth_token", Path: "/", SameSite: "Strict"}
	m := NewAuthMiddleware(authenticate, cookieCfg)

	router := gin.New()
	authed := router.Group("", m.Handle())
	authed.GET("/whoami", func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(ContextUserID),
			"role":    role,
		})
	})
	authed.GET("/admin-only", RequireRole(authorization.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	authed.GET("/super-only", RequireRole(authorization.RoleSuperadmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, sessions, tokens
}

func issueWithSession(t *testing.T, sessions *stubSessionRepo, tokens *auth.JWTService, userID uint, role authorization.Role) string {
	t.Helper()
	token, expiresAt, err := tokens.Issue(userID, role)
	require.NoError(t, err)
	s, err := user.NewSession(userID, token, "10.0.0.1", "go-test", expiresAt)
	require.NoError(t, err)
	require.NoError(t, sessions.Replace(context.Background(), s))
	return token
}

func doRequest(router *gin.Engine, path, cookie, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsCookieAndBearer(t *testing.T) {
	router, sessions, tokens := setupAuthTest(t)
	token := issueWithSession(t, sessions, tokens, 7, authorization.RoleAdmin)

	assert.Equal(t, http.StatusOK, doRequest(router, "/whoami", token, "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/whoami", "", token).Code)
}

func TestAuthMiddlewareMissingTokenIs401(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	w := doRequest(router, "/whoami", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareForgedAndRevokedAreUniform403(t *testing.T) {
	router, sessions, tokens := setupAuthTest(t)

	// Token signed with another key.
	other := auth.NewJWTService("other-secret", 60, "curator-auth")
	forged, _, err := other.Issue(7, authorization.RoleAdmin)
	require.NoError(t, err)
	forgedResp := doRequest(router, "/whoami", forged, "")
	assert.Equal(t, http.StatusForbidden, forgedResp.Code)

	// Valid token whose session row was deleted.
	token := issueWithSession(t, sessions, tokens, 7, authorization.RoleAdmin)
	require.NoError(t, sessions.DeleteByToken(context.Background(), token))
	revokedResp := doRequest(router, "/whoami", token, "")
	assert.Equal(t, http.StatusForbidden, revokedResp.Code)

	// The bodies must not reveal which case it was.
	assert.JSONEq(t, forgedResp.Body.String(), revokedResp.Body.String())
	assert.JSONEq(t,
		`{"success":false,"error":{"type":"authentication_failed","message":"Session expired or invalid"}}`,
		forgedResp.Body.String())
}

func TestAuthMiddlewareClearsCookieOnFailure(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	w := doRequest(router, "/whoami", "garbage-token", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the session cookie to be cleared")
}

func TestAuthMiddlewareExpiredSessionRowIs403(t *testing.T) {
	router, sessions, tokens := setupAuthTest(t)

	token, _, err := tokens.Issue(7, authorization.RoleAdmin)
	require.NoError(t, err)
	s, err := user.NewSession(7, token, "", "", biztime.NowUTC().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, sessions.Replace(context.Background(), s))

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/whoami", token, "").Code)
}

func TestRequireRoleIsExactMatch(t *testing.T) {
	router, sessions, tokens := setupAuthTest(t)

	adminToken := issueWithSession(t, sessions, tokens, 1, authorization.RoleAdmin)
	superToken := issueWithSession(t, sessions, tokens, 2, authorization.RoleSuperadmin)

	assert.Equal(t, http.StatusOK, doRequest(router, "/admin-only", adminToken, "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/super-only", superToken, "").Code)

	// No hierarchy in either direction.
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin-only", superToken, "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/super-only", adminToken, "").Code)
}
