package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-job-tracker/internal/model"
)

// TokenService issues and validates stateless HS512-signed bearer tokens.
// There is no server-side token state: validity is proven by signature and
// expiry alone, so a compromised token cannot be revoked before it expires.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token for the principal: sub is the principal's username
// (the email), exp is iat plus the configured lifetime.
func (s *TokenService) Issue(principal model.Principal) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   principal.Username(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token parses, carries a valid signature and
// is not expired. Every failure kind is terminal; the specific kind is
// logged for operators but never distinguished to the caller.
func (s *TokenService) Validate(tokenString string) bool {
	if strings.TrimSpace(tokenString) == "" {
		slog.Error("JWT claims string is empty")
		return false
	}

	_, err := s.parse(tokenString)
	if err == nil {
		return true
	}

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		slog.Error("invalid JWT signature")
	case errors.Is(err, jwt.ErrTokenExpired):
		slog.Error("expired JWT token")
	case errors.Is(err, jwt.ErrTokenMalformed):
		slog.Error("invalid JWT token")
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		slog.Error("unsupported JWT token")
	default:
		slog.Error("JWT validation failed", "error", err)
	}
	return false
}

// ExtractSubject parses and verifies the token and returns its subject
// claim. Callers must not trust the subject of a token that fails here.
func (s *TokenService) ExtractSubject(tokenString string) (string, error) {
	parsed, err := s.parse(tokenString)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read token subject: %w", err)
	}
	if subject == "" {
		return "", errors.New("token has no subject")
	}
	return subject, nil
}

func (s *TokenService) parse(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
}
