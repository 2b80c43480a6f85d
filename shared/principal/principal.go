// Package principal carries the authenticated actor of a request down to the services.
package principal

import (
	"context"
	"slices"

	"hotelpos/shared/constant"
)

type Principal struct {
	UserID   string
	Username string
	Role     string
}

// System is used by the seeders and the background worker.
var System = Principal{Username: constant.ContextSystem, Role: constant.RoleAdmin}

func (p Principal) IsZero() bool {
	return p.Username == ""
}

func (p Principal) HasRole(roles ...string) bool {
	return slices.Contains(roles, p.Role)
}

// WithPrincipal stores p on the context using the same keys the auth middleware writes.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, p.Username)

	return context.WithValue(ctx, constant.ContextKeyUserRole, p.Role)
}

// FromContext returns the principal stored by the auth middleware, or a zero value.
func FromContext(ctx context.Context) Principal {
	var p Principal

	p.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	p.Username, _ = ctx.Value(constant.ContextKeyUsername).(string)
	p.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return p
}
