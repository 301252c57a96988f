package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curator/internal/shared/config"
)

const DefaultSessionCookie = "auth_token"

// SetSessionCookie sets the bearer token as an HttpOnly session cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieName(cookieConfig),
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie. Called on logout and on
// every authentication failure so a poisoned cookie is not retried.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieName(cookieConfig),
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie retrieves the bearer token from the session cookie.
// Returns "" when the cookie is absent; header fallback is handled in middleware.
func GetTokenFromCookie(c *gin.Context, cookieConfig config.CookieConfig) string {
	token, err := c.Cookie(cookieName(cookieConfig))
	if err == nil && token != "" {
		return token
	}
	return ""
}

func cookieName(cookieConfig config.CookieConfig) string {
	if cookieConfig.Name != "" {
		return cookieConfig.Name
	}
	return DefaultSessionCookie
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
