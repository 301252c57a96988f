// Package usecases implements the knowledge-request workflow: submission,
// the owner and review listings, the decision, and attachment retrieval.
package usecases

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"curator/internal/domain/knowledge"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

// AttachmentStore is the blob store behind pdf submissions.
type AttachmentStore interface {
	GenerateFilename(originalName string) string
	Stage(filename string, src io.Reader) error
	Promote(filename string) (string, error)
	Discard(filename string) error
	FinalPath(filename string) string
	Resolve(filename string) (string, error)
}

type SubmitRequestInput struct {
	AdminID     uint
	Title       string
	ContentType string
	Content     string
	Description string
	// FileName and File are set only for pdf submissions.
	FileName string
	File     io.Reader
}

type SubmitRequestOutput struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type SubmitRequestUseCase struct {
	requests  knowledge.Repository
	store     AttachmentStore
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewSubmitRequestUseCase(requests knowledge.Repository, store AttachmentStore) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requests:  requests,
		store:     store,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.NewLogger().With("usecase", "submit_request"),
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, input SubmitRequestInput) (*SubmitRequestOutput, error) {
	contentType := knowledge.ContentType(input.ContentType)
	if !contentType.IsValid() {
		return nil, errors.NewValidationError("invalid content type", "type must be text, link or pdf")
	}

	title := strings.TrimSpace(uc.sanitizer.Sanitize(input.Title))
	description := strings.TrimSpace(uc.sanitizer.Sanitize(input.Description))

	var req *knowledge.Request
	var stagedName string
	var err error

	switch contentType {
	case knowledge.TypePDF:
		req, stagedName, err = uc.buildPDFRequest(input, title, description)
	default:
		content := input.Content
		if contentType == knowledge.TypeText {
			content = strings.TrimSpace(uc.sanitizer.Sanitize(content))
		}
		req, err = knowledge.NewRequest(input.AdminID, title, contentType, content, description)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.requests.Create(ctx, req); err != nil {
		if stagedName != "" {
			if derr := uc.store.Discard(stagedName); derr != nil {
				uc.logger.Warnw("failed to discard staged upload", "error", derr, "filename", stagedName)
			}
		}
		uc.logger.Errorw("failed to persist request", "error", err, "admin_id", input.AdminID)
		return nil, errors.NewInternalError("failed to submit request")
	}

	if stagedName != "" {
		if _, err := uc.store.Promote(stagedName); err != nil {
			// The row exists but its blob is gone; surface loudly.
			uc.logger.Errorw("failed to promote staged upload", "error", err, "request_id", req.ID())
			return nil, errors.NewInternalError("failed to store uploaded file")
		}
	}

	uc.logger.Infow("knowledge request submitted",
		"request_id", req.ID(), "admin_id", input.AdminID, "type", contentType.String())

	return &SubmitRequestOutput{ID: req.ID(), Status: req.Status().String()}, nil
}

func (uc *SubmitRequestUseCase) buildPDFRequest(input SubmitRequestInput, title, description string) (*knowledge.Request, string, error) {
	if input.File == nil || input.FileName == "" {
		return nil, "", errors.NewValidationError("PDF file is required")
	}
	if !strings.EqualFold(filepath.Ext(input.FileName), ".pdf") {
		return nil, "", errors.NewValidationError("only PDF files are accepted")
	}

	name := uc.store.GenerateFilename(input.FileName)
	if err := uc.store.Stage(name, input.File); err != nil {
		return nil, "", err
	}

	req, err := knowledge.NewPDFRequest(input.AdminID, title, description, name, uc.store.FinalPath(name))
	if err != nil {
		if derr := uc.store.Discard(name); derr != nil {
			uc.logger.Warnw("failed to discard staged upload", "error", derr, "filename", name)
		}
		return nil, "", err
	}
	return req, name, nil
}
