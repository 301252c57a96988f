package usecases

import (
	"context"
	"os"

	"curator/internal/domain/knowledge"
	"curator/internal/shared/biztime"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

type DecideRequestInput struct {
	RequestID uint
	Action    string
	DeciderID uint
}

type DecideRequestOutput struct {
	ID       uint   `json:"id"`
	Status   string `json:"status"`
	FilePath string `json:"filePath,omitempty"`
}

type DecideRequestUseCase struct {
	requests knowledge.Repository
	logger   logger.Interface
}

func NewDecideRequestUseCase(requests knowledge.Repository) *DecideRequestUseCase {
	return &DecideRequestUseCase{
		requests: requests,
		logger:   logger.NewLogger().With("usecase", "decide_request"),
	}
}

// Execute applies a terminal decision to a pending request. The repository
// guard makes the transition single-shot, so a second decision (or two
// racing reviewers) yields a conflict rather than a silent overwrite.
func (uc *DecideRequestUseCase) Execute(ctx context.Context, input DecideRequestInput) (*DecideRequestOutput, error) {
	status, err := knowledge.ParseDecision(input.Action)
	if err != nil {
		return nil, err
	}
	if input.DeciderID == 0 {
		return nil, errors.NewValidationError("decider is required")
	}

	filePath, err := uc.requests.DecideIfPending(ctx, input.RequestID, status, input.DeciderID, biztime.NowUTC())
	if err != nil {
		if errors.IsNotFoundError(err) || errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to decide request", "error", err, "request_id", input.RequestID)
		return nil, errors.NewInternalError("failed to decide request")
	}

	// A rejected pdf leaves no blob behind. Removal is best-effort; the
	// decision already stands.
	if status == knowledge.StatusRejected && filePath != "" {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			uc.logger.Warnw("failed to remove rejected attachment", "error", err, "path", filePath)
		}
	}

	uc.logger.Infow("request decided",
		"request_id", input.RequestID, "status", status.String(), "decider_id", input.DeciderID)

	return &DecideRequestOutput{ID: input.RequestID, Status: status.String(), FilePath: filePath}, nil
}
