// Package handlers maps HTTP requests onto the application usecases.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authusecases "curator/internal/application/auth/usecases"
	"curator/internal/domain/user"
	"curator/internal/interfaces/http/middleware"
	"curator/internal/shared/biztime"
	"curator/internal/shared/config"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

type AuthHandler struct {
	login        *authusecases.LoginWithPasswordUseCase
	logout       *authusecases.LogoutUseCase
	users        user.Repository
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	login *authusecases.LoginWithPasswordUseCase,
	logout *authusecases.LogoutUseCase,
	users user.Repository,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		login:        login,
		logout:       logout,
		users:        users,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger().With("handler", "auth"),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  user.Summary `json:"user"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email and password are required"))
		return
	}

	out, err := h.login.Execute(c.Request.Context(), authusecases.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(out.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, out.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", loginResponse{
		Token: out.Token,
		User:  out.User,
	})
}

// Logout handles POST /api/logout. The route sits behind the auth
// middleware, so the token in context is the verified one.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextAuthToken)

	if err := h.logout.Execute(c.Request.Context(), token); err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("logout failed"))
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// AdminData handles GET /api/admin-data: the caller's own account summary
// plus a server timestamp.
func (h *AuthHandler) AdminData(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	account, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		// The session outlived the row; treat as a revoked session.
		if errors.IsNotFoundError(err) {
			utils.ErrorResponseWithError(c, errors.NewSessionNotFoundError())
			return
		}
		h.logger.Errorw("failed to load account", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to load account"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":      account.Summary(),
		"timestamp": biztime.NowUTC(),
	})
}
