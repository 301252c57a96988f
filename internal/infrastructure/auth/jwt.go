package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"curator/internal/shared/authorization"
	"curator/internal/shared/biztime"
)

// Claims is the payload of the signed bearer token: identity, role, and
// issuer. A verified token is necessary but never sufficient proof of an
// active session; the session registry is consulted on every request.
type Claims struct {
	SubjectID uint               `json:"sub_id"`
	Role      authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies bearer tokens. The signing key is
// process-wide configuration, loaded once at startup.
type JWTService struct {
	secret     []byte
	expMinutes int
	issuer     string
}

func NewJWTService(secret string, expMinutes int, issuer string) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
		issuer:     issuer,
	}
}

// Issue produces a signed token with the fixed validity window. The random
// token ID makes every issued token distinct, so superseding a session
// always invalidates the previous token even within the same second.
func (s *JWTService) Issue(subjectID uint, role authorization.Role) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.expMinutes) * time.Minute)

	var id [16]byte
	if _, err := rand.Read(id[:]); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        hex.EncodeToString(id[:]),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the signature and the embedded expiry claim. Malformed or
// expired tokens fail with no side effects.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
