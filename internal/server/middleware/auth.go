// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// memberIDKey is the context key for storing the authenticated member ID.
const memberIDKey ContextKey = "memberID"

// TokenValidator is an interface for validating bearer tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (MemberIDGetter, error)
}

// MemberIDGetter is an interface for extracting the member ID from token claims.
type MemberIDGetter interface {
	GetMemberID() uuid.UUID
}

// AuthMiddleware creates middleware that validates bearer tokens and adds the
// member ID to the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithMemberID(r.Context(), claims.GetMemberID())))
		})
	}
}

// bearerToken extracts the token from an Authorization header. The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetMemberID extracts the authenticated member ID from the request context.
func GetMemberID(r *http.Request) (uuid.UUID, error) {
	memberID, ok := r.Context().Value(memberIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("member ID not found in request context")
	}
	return memberID, nil
}

// WithMemberID returns a copy of ctx carrying the authenticated memberID.
func WithMemberID(ctx context.Context, memberID uuid.UUID) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}
