package session

import (
	"context"

	"hoteladmin/models"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying the signed-in staff member.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the staff member stored by WithPrincipal.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}
