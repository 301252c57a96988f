package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeMissingToken       ErrorType = "missing_token"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeSessionNotFound    ErrorType = "session_not_found"

	// ErrorTypeAuthenticationFailed is the only type exposed in 403 auth
	// response bodies. Both rejected-token cases map to it on the wire so
	// the body never reveals whether the token was forged or the session
	// revoked; the specific types above exist for logging only.
	ErrorTypeAuthenticationFailed ErrorType = "authentication_failed"
)

// AuthError represents authentication-specific errors with enhanced security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged
	// Some auth errors (like invalid credentials) may be expected and don't need error-level logging
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message must not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false, // Expected error, don't clutter logs
		SecurityEvent: true,  // Track for brute force detection
	}
}

// NewMissingTokenError creates an error for requests that carry no token at all
func NewMissingTokenError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeMissingToken,
			Message: "Authentication token missing",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates an error for tokens the codec rejects.
// The response body is intentionally identical to a revoked session so
// callers cannot distinguish a forged token from a revoked one.
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Session expired or invalid",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true, // May indicate tampering
		SecurityEvent: true,
	}
}

// NewSessionNotFoundError creates an error for tokens that verify but have
// no backing session row (logged out, expired, or superseded by a new login).
func NewSessionNotFoundError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionNotFound,
			Message: "Session expired or invalid",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false, // Normal revocation path
		SecurityEvent: false,
	}
}

// PublicType returns the error type safe to expose in a response body.
func (e *AuthError) PublicType() ErrorType {
	switch e.Type {
	case ErrorTypeTokenInvalid, ErrorTypeSessionNotFound:
		return ErrorTypeAuthenticationFailed
	default:
		return e.Type
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true // Default to logging if not an AuthError
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
