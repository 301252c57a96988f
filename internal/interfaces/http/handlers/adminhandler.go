package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "curator/internal/application/admin/usecases"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

type AdminHandler struct {
	createAdmin   *adminusecases.CreateAdminUseCase
	listSessions  *adminusecases.ListActiveSessionsUseCase
	pendingAdmins *adminusecases.ListPendingAdminRequestsUseCase
	logger        logger.Interface
}

func NewAdminHandler(
	createAdmin *adminusecases.CreateAdminUseCase,
	listSessions *adminusecases.ListActiveSessionsUseCase,
	pendingAdmins *adminusecases.ListPendingAdminRequestsUseCase,
) *AdminHandler {
	return &AdminHandler{
		createAdmin:   createAdmin,
		listSessions:  listSessions,
		pendingAdmins: pendingAdmins,
		logger:        logger.NewLogger().With("handler", "admin"),
	}
}

type createAdminRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateAdmin handles POST /api/create-admin.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email, password and role are required"))
		return
	}

	summary, err := h.createAdmin.Execute(c.Request.Context(), adminusecases.CreateAdminInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, summary, "Admin account created")
}

// ActiveSessions handles GET /api/active-sessions.
func (h *AdminHandler) ActiveSessions(c *gin.Context) {
	infos, err := h.listSessions.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", infos)
}

// PendingAdminRequests handles GET /api/admin-requests.
func (h *AdminHandler) PendingAdminRequests(c *gin.Context) {
	requests, err := h.pendingAdmins.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", requests)
}
