package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	knowledgeusecases "curator/internal/application/knowledge/usecases"
	"curator/internal/interfaces/http/middleware"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
	"curator/internal/shared/utils"
)

type KnowledgeHandler struct {
	submit        *knowledgeusecases.SubmitRequestUseCase
	listOwn       *knowledgeusecases.ListOwnRequestsUseCase
	listPending   *knowledgeusecases.ListPendingRequestsUseCase
	decide        *knowledgeusecases.DecideRequestUseCase
	getAttachment *knowledgeusecases.GetAttachmentUseCase
	logger        logger.Interface
}

func NewKnowledgeHandler(
	submit *knowledgeusecases.SubmitRequestUseCase,
	listOwn *knowledgeusecases.ListOwnRequestsUseCase,
	listPending *knowledgeusecases.ListPendingRequestsUseCase,
	decide *knowledgeusecases.DecideRequestUseCase,
	getAttachment *knowledgeusecases.GetAttachmentUseCase,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		submit:        submit,
		listOwn:       listOwn,
		listPending:   listPending,
		decide:        decide,
		getAttachment: getAttachment,
		logger:        logger.NewLogger().With("handler", "knowledge"),
	}
}

type submitRequestBody struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// Submit handles POST /api/knowledge-requests. PDF submissions arrive as
// multipart forms with a "file" part; text and link submissions may use
// either a form or a JSON body.
func (h *KnowledgeHandler) Submit(c *gin.Context) {
	input := knowledgeusecases.SubmitRequestInput{
		AdminID: c.GetUint(middleware.ContextUserID),
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input.Title = c.PostForm("title")
		input.ContentType = c.PostForm("type")
		input.Content = c.PostForm("content")
		input.Description = c.PostForm("description")

		if fileHeader, err := c.FormFile("file"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
				return
			}
			defer file.Close()
			input.FileName = fileHeader.Filename
			input.File = file
		}
	} else {
		var body submitRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("title and type are required"))
			return
		}
		input.Title = body.Title
		input.ContentType = body.Type
		input.Content = body.Content
		input.Description = body.Description
	}

	out, err := h.submit.Execute(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, out, "Knowledge request submitted")
}

// ListOwn handles GET /api/knowledge-requests.
func (h *KnowledgeHandler) ListOwn(c *gin.Context) {
	requests, err := h.listOwn.Execute(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ListPending handles GET /api/knowledge-requests/pending.
func (h *KnowledgeHandler) ListPending(c *gin.Context) {
	items, err := h.listPending.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Decide handles POST /api/knowledge-requests/:id/:action.
func (h *KnowledgeHandler) Decide(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request ID"))
		return
	}

	out, err := h.decide.Execute(c.Request.Context(), knowledgeusecases.DecideRequestInput{
		RequestID: uint(id),
		Action:    c.Param("action"),
		DeciderID: c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request "+out.Status, out)
}

// Download handles GET /api/knowledge-files/:filename. The usecase re-checks
// ownership on every call before the path is resolved.
func (h *KnowledgeHandler) Download(c *gin.Context) {
	out, err := h.getAttachment.Execute(c.Request.Context(), knowledgeusecases.GetAttachmentInput{
		Filename: c.Param("filename"),
		UserID:   c.GetUint(middleware.ContextUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(out.Path, out.Filename)
}
