// Package middleware holds the gin middleware chain: authentication, role
// gates, request logging, panic recovery, and login rate limiting.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	authusecases "curator/internal/application/auth/usecases"
	"curator/internal/shared/config"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

// Context keys set by the auth middleware.
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextAuthToken = "auth_token"
)

type AuthMiddleware struct {
	authenticate *authusecases.AuthenticateUseCase
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthMiddleware(authenticate *authusecases.AuthenticateUseCase, cookieConfig config.CookieConfig) *AuthMiddleware {
	return &AuthMiddleware{
		authenticate: authenticate,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger().With("middleware", "auth"),
	}
}

// Handle authenticates the request. The session cookie takes precedence;
// a Bearer header is the fallback for non-browser clients. Every failure
// clears the cookie so a stale token is not replayed on the next request.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, m.cookieConfig)
		if token == "" {
			token = bearerToken(c)
		}

		identity, err := m.authenticate.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("authentication rejected",
					"error", err, "ip", c.ClientIP(), "path", c.Request.URL.Path,
					"security_event", errors.IsSecurityEvent(err))
			}
			utils.ClearSessionCookie(c, m.cookieConfig)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserRole, identity.Role)
		c.Set(ContextAuthToken, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
