// Package usecases implements the superadmin operations: account creation,
// session oversight, and the read-only reports.
package usecases

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"curator/internal/domain/user"
	"curator/internal/shared/authorization"
	"curator/internal/shared/errors"
	"curator/internal/shared/logger"
)

const minAdminPasswordLen = 8

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateAdminInput struct {
	Email    string
	Password string
	Role     string
}

type CreateAdminUseCase struct {
	users       user.Repository
	hasher      PasswordHasher
	emailDomain string
	logger      logger.Interface
}

// NewCreateAdminUseCase builds the account-creation flow. When emailDomain
// is non-empty, new accounts are restricted to that domain.
func NewCreateAdminUseCase(users user.Repository, hasher PasswordHasher, emailDomain string) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		users:       users,
		hasher:      hasher,
		emailDomain: strings.ToLower(emailDomain),
		logger:      logger.NewLogger().With("usecase", "create_admin"),
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, input CreateAdminInput) (*user.Summary, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.NewValidationError("invalid email format")
	}
	if uc.emailDomain != "" && !strings.HasSuffix(email, "@"+uc.emailDomain) {
		return nil, errors.NewValidationError(fmt.Sprintf("email must belong to the %s domain", uc.emailDomain))
	}
	if err := validatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	role, ok := authorization.ParseRole(input.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role", "role must be admin or superadmin")
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}
	if exists {
		return nil, errors.NewValidationError("admin with this email already exists")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	account, err := user.NewUser(email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.users.Create(ctx, account); err != nil {
		// A concurrent insert can still hit the unique index.
		if errors.IsConflictError(err) {
			return nil, errors.NewValidationError("admin with this email already exists")
		}
		uc.logger.Errorw("failed to create admin", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	uc.logger.Infow("admin account created", "user_id", account.ID(), "role", role.String())

	summary := account.Summary()
	return &summary, nil
}

// validatePasswordStrength requires length plus mixed character classes.
func validatePasswordStrength(password string) error {
	if len(password) < minAdminPasswordLen {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.NewValidationError("password must contain uppercase, lowercase, numeric and special characters")
	}
	return nil
}
