// Package session keeps the signed-in identity of a browser session and
// hands it to the rest of the request as a Principal value.
package session

import (
	"context"

	"github.com/capsule-retail/inventory-dashboard/internal/models"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
