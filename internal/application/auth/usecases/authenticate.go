package usecases

import (
	"context"

	"curator/internal/domain/user"
	"curator/internal/infrastructure/auth"
	"curator/internal/shared/authorization"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

// TokenVerifier checks a bearer token's signature and embedded expiry.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID uint
	Role   authorization.Role
}

type AuthenticateUseCase struct {
	sessions user.SessionRepository
	tokens   TokenVerifier
	logger   logger.Interface
}

func NewAuthenticateUseCase(sessions user.SessionRepository, tokens TokenVerifier) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger.NewLogger().With("usecase", "authenticate"),
	}
}

// Execute resolves a bearer token to an identity. A valid signature alone is
// not enough: the exact token must still be present in the session registry,
// so revoked and superseded tokens are rejected here no matter what their
// claims say.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, errors.NewMissingTokenError()
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.NewTokenInvalidError()
	}

	session, err := uc.sessions.GetByUserAndToken(ctx, claims.SubjectID, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewSessionNotFoundError()
		}
		uc.logger.Errorw("session lookup failed", "error", err, "user_id", claims.SubjectID)
		return nil, errors.NewInternalError("authentication failed")
	}

	return &Identity{
		UserID: session.UserID,
		Role:   claims.Role,
	}, nil
}
