package knowledge

import "curator/internal/shared/errors"

// Status is the lifecycle state of a knowledge request. Pending transitions
// exactly once to approved or rejected; both are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// ContentType describes the payload of a knowledge request.
type ContentType string

const (
	TypeText ContentType = "text"
	TypeLink ContentType = "link"
	TypePDF  ContentType = "pdf"
)

func (t ContentType) IsValid() bool {
	return t == TypeText || t == TypeLink || t == TypePDF
}

func (t ContentType) String() string {
	return string(t)
}

// PDFContentPrefix tags the content column of pdf-type requests with the
// generated attachment filename, e.g. "PDF:kb-1712345678901-123456789.pdf".
const PDFContentPrefix = "PDF:"

// ParseDecision maps a decision action to its target status. Anything other
// than approve or reject is rejected as a validation error.
func ParseDecision(action string) (Status, error) {
	switch action {
	case "approve":
		return StatusApproved, nil
	case "reject":
		return StatusRejected, nil
	default:
		return "", errors.NewValidationError("invalid action", "action must be approve or reject")
	}
}
