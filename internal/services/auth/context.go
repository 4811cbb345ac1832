package auth

import (
	"context"

	"sokoni/internal/models"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims attaches validated JWT claims to ctx so services below
// the HTTP layer can resolve the caller.
func ContextWithClaims(ctx context.Context, claims *models.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims attached by the auth middleware, or
// nil when the request is unauthenticated.
func ClaimsFromContext(ctx context.Context) *models.UserClaims {
	claims, _ := ctx.Value(claimsContextKey).(*models.UserClaims)
	return claims
}
