// Package knowledge models the knowledge-request lifecycle: an admin submits
// an artifact, it waits in pending, and a superadmin approves or rejects it
// exactly once.
package knowledge

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"curator/internal/shared/biztime"
	"curator/internal/shared/errors"
)

const (
	TitleMinLen       = 5
	TitleMaxLen       = 255
	DescriptionMaxLen = 500
)

type Request struct {
	id          uint
	adminID     uint
	title       string
	contentType ContentType
	content     string
	description string
	filePath    string
	status      Status
	decisionBy  *uint
	decisionAt  *time.Time
	createdAt   time.Time
}

// NewRequest creates a pending text or link request owned by the submitting
// admin. Link content must parse as an absolute URL.
func NewRequest(adminID uint, title string, contentType ContentType, content, description string) (*Request, error) {
	if contentType == TypePDF {
		return nil, errors.NewValidationError("pdf requests require an attached file")
	}
	if err := validateCommon(adminID, title, contentType, description); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.NewValidationError("content is required")
	}
	if contentType == TypeLink {
		u, err := url.Parse(content)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, errors.NewValidationError("invalid URL format")
		}
	}

	return &Request{
		adminID:     adminID,
		title:       title,
		contentType: contentType,
		content:     content,
		description: description,
		status:      StatusPending,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// NewPDFRequest creates a pending pdf request referencing an uploaded file.
// The content column carries the tagged filename so ownership of the blob can
// be resolved back to this request.
func NewPDFRequest(adminID uint, title, description, filename, filePath string) (*Request, error) {
	if err := validateCommon(adminID, title, TypePDF, description); err != nil {
		return nil, err
	}
	if filename == "" || filePath == "" {
		return nil, errors.NewValidationError("PDF file is required")
	}

	return &Request{
		adminID:     adminID,
		title:       title,
		contentType: TypePDF,
		content:     PDFContentPrefix + filename,
		description: description,
		filePath:    filePath,
		status:      StatusPending,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func validateCommon(adminID uint, title string, contentType ContentType, description string) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID is required")
	}
	if len(title) < TitleMinLen || len(title) > TitleMaxLen {
		return errors.NewValidationError(fmt.Sprintf("title must be %d-%d characters", TitleMinLen, TitleMaxLen))
	}
	if !contentType.IsValid() {
		return errors.NewValidationError("invalid content type")
	}
	if len(description) > DescriptionMaxLen {
		return errors.NewValidationError(fmt.Sprintf("description too long (max %d chars)", DescriptionMaxLen))
	}
	return nil
}

// ReconstructRequest rebuilds a request from persistence.
func ReconstructRequest(
	id uint,
	adminID uint,
	title string,
	contentType ContentType,
	content string,
	description string,
	filePath string,
	status Status,
	decisionBy *uint,
	decisionAt *time.Time,
	createdAt time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !contentType.IsValid() {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Request{
		id:          id,
		adminID:     adminID,
		title:       title,
		contentType: contentType,
		content:     content,
		description: description,
		filePath:    filePath,
		status:      status,
		decisionBy:  decisionBy,
		decisionAt:  decisionAt,
		createdAt:   createdAt,
	}, nil
}

func (r *Request) ID() uint                 { return r.id }
func (r *Request) AdminID() uint            { return r.adminID }
func (r *Request) Title() string            { return r.title }
func (r *Request) ContentType() ContentType { return r.contentType }
func (r *Request) Content() string          { return r.content }
func (r *Request) Description() string      { return r.description }
func (r *Request) FilePath() string         { return r.filePath }
func (r *Request) Status() Status           { return r.status }
func (r *Request) DecisionBy() *uint        { return r.decisionBy }
func (r *Request) DecisionAt() *time.Time   { return r.decisionAt }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }

// SetID sets the request ID (only for persistence layer use)
func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// AttachmentFilename returns the generated filename of a pdf request, or ""
// for other types.
func (r *Request) AttachmentFilename() string {
	if r.contentType != TypePDF {
		return ""
	}
	return strings.TrimPrefix(r.content, PDFContentPrefix)
}

// IsOwnedBy reports whether the given identity submitted this request.
// Attachment access is keyed on this, not on role.
func (r *Request) IsOwnedBy(userID uint) bool {
	return r.adminID == userID
}

// Approve transitions the request from pending to approved. Deciding an
// already-decided request is a conflict.
func (r *Request) Approve(deciderID uint) error {
	return r.decide(StatusApproved, deciderID)
}

// Reject transitions the request from pending to rejected.
func (r *Request) Reject(deciderID uint) error {
	return r.decide(StatusRejected, deciderID)
}

func (r *Request) decide(target Status, deciderID uint) error {
	if r.status.IsTerminal() {
		return errors.NewConflictError("request already decided", fmt.Sprintf("current status is %s", r.status))
	}
	if deciderID == 0 {
		return fmt.Errorf("decider ID is required")
	}

	now := biztime.NowUTC()
	r.status = target
	r.decisionBy = &deciderID
	r.decisionAt = &now
	return nil
}
