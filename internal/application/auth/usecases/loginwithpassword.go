// Package usecases implements the authentication flows: password login,
// logout, and per-request authentication against the session registry.
package usecases

import (
	"context"
	"net/mail"
	"time"

	"curator/internal/domain/user"
	"curator/internal/shared/authorization"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

const minPasswordLen = 8

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs bearer tokens for authenticated identities.
type TokenIssuer interface {
	Issue(subjectID uint, role authorization.Role) (string, time.Time, error)
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      user.Summary
}

type LoginWithPasswordUseCase struct {
	users    user.Repository
	sessions user.SessionRepository
	hasher   PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	users user.Repository,
	sessions user.SessionRepository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.NewLogger().With("usecase", "login_with_password"),
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, errors.NewValidationError("invalid email format")
	}
	if len(input.Password) < minPasswordLen {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	account, err := uc.users.GetActiveByEmail(ctx, input.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, errors.NewInternalError("login failed")
	}
	if account == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(input.Password, account.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresAt, err := uc.tokens.Issue(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	session, err := user.NewSession(account.ID(), token, input.IPAddress, input.UserAgent, expiresAt)
	if err != nil {
		return nil, errors.NewInternalError("login failed")
	}

	// Replacing rather than appending: one live session per account.
	if err := uc.sessions.Replace(ctx, session); err != nil {
		uc.logger.Errorw("failed to register session", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("login failed")
	}

	uc.logger.Infow("login succeeded", "user_id", account.ID(), "ip", input.IPAddress)

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      account.Summary(),
	}, nil
}
