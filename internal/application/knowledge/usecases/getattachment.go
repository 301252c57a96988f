package usecases

import (
	"context"

	"curator/internal/domain/knowledge"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

type GetAttachmentInput struct {
	Filename string
	UserID   uint
}

type GetAttachmentOutput struct {
	Path     string
	Filename string
}

type GetAttachmentUseCase struct {
	requests knowledge.Repository
	store    AttachmentStore
	logger   logger.Interface
}

func NewGetAttachmentUseCase(requests knowledge.Repository, store AttachmentStore) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		requests: requests,
		store:    store,
		logger:   logger.NewLogger().With("usecase", "get_attachment"),
	}
}

// Execute resolves an attachment for download. The blob must exist, and the
// content tag must walk back to a request submitted by the caller. The
// ownership check runs on every call, never cached.
func (uc *GetAttachmentUseCase) Execute(ctx context.Context, input GetAttachmentInput) (*GetAttachmentOutput, error) {
	path, err := uc.store.Resolve(input.Filename)
	if err != nil {
		return nil, err
	}

	ownerID, err := uc.requests.GetOwnerIDByContent(ctx, knowledge.PDFContentPrefix+input.Filename)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("file not found")
		}
		uc.logger.Errorw("failed to resolve attachment owner", "error", err)
		return nil, errors.NewInternalError("failed to retrieve file")
	}
	if ownerID != input.UserID {
		uc.logger.Warnw("cross-user attachment access denied",
			"filename", input.Filename, "owner_id", ownerID, "user_id", input.UserID)
		return nil, errors.NewForbiddenError("access denied")
	}

	return &GetAttachmentOutput{Path: path, Filename: input.Filename}, nil
}
