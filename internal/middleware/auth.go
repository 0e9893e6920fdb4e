package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go-job-tracker/internal/model"
)

type tokenValidator interface {
	Validate(tokenString string) bool
	ExtractSubject(tokenString string) (string, error)
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type contextKey string

const principalContextKey contextKey = "principal"

// The prefix match is case-sensitive with exactly one space, per RFC 6750
// usage in the Authorization header.
const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	tokens tokenValidator
	users  userFinder
}

func NewAuthMiddleware(tokens tokenValidator, users userFinder) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate is the per-request authentication gate. It never rejects:
// when a valid bearer token names a known user, the principal is attached
// to the request context; on any failure the request simply proceeds
// unauthenticated and enforcement happens downstream.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := m.resolvePrincipal(r); ok {
			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolvePrincipal(r *http.Request) (principal model.Principal, ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("could not establish request authentication",
				"error", fmt.Sprintf("%v", recovered))
			principal = model.Principal{}
			ok = false
		}
	}()

	token := extractBearerToken(r)
	if token == "" || !m.tokens.Validate(token) {
		return model.Principal{}, false
	}

	subject, err := m.tokens.ExtractSubject(token)
	if err != nil {
		slog.Error("could not extract token subject", "error", err)
		return model.Principal{}, false
	}

	user, err := m.users.FindByEmail(r.Context(), subject)
	if err != nil {
		slog.Error("could not load user for token subject", "error", err)
		return model.Principal{}, false
	}

	return model.NewPrincipal(user), true
}

// RequireAuth rejects requests that reached a protected route without an
// established principal.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles allows the request through when the principal holds at
// least one of the listed role labels.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	authoritySet := map[string]struct{}{}
	for _, role := range allowedRoles {
		authoritySet["ROLE_"+strings.TrimSpace(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			for _, authority := range principal.Authorities() {
				if _, allowed := authoritySet[authority]; allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		})
	}
}

func PrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(model.Principal)
	return principal, ok
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
