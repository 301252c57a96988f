package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "curator/internal/application/admin/usecases"
	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

type ReportHandler struct {
	reports *adminusecases.ReportsUseCase
	logger  logger.Interface
}

func NewReportHandler(reports *adminusecases.ReportsUseCase) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger.NewLogger().With("handler", "report"),
	}
}

// SentimentData handles GET /api/sentiment-data.
func (h *ReportHandler) SentimentData(c *gin.Context) {
	data, err := h.reports.SentimentData(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", data)
}

// TotalAdmins handles GET /api/total-admins.
func (h *ReportHandler) TotalAdmins(c *gin.Context) {
	count, err := h.reports.TotalAdmins(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"total_admins": count})
}

// RequestHistory handles GET /api/request-history.
func (h *ReportHandler) RequestHistory(c *gin.Context) {
	entries, err := h.reports.RequestHistory(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", entries)
}
