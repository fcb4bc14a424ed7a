// Package tenantctx carries the per-request tenant binding as an explicit
// context value. The binding is set once by the resolution middleware and
// dies with the request context, so a reused worker can never observe the
// previous request's tenant.
package tenantctx

import (
	"context"
	"errors"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type ctxKey struct{}

// ErrNoTenant is returned when a caller requires a bound tenant and none
// was resolved for the request. It is never substituted with a default.
var ErrNoTenant = errors.New("no tenant bound to context")

// WithTenant returns a child context carrying the resolved tenant.
func WithTenant(ctx context.Context, tenant *domain.Tenant) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenant)
}

// FromContext returns the bound tenant, or false when the request resolved
// no tenant (public routes, batch jobs, administrative commands).
func FromContext(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(ctxKey{}).(*domain.Tenant)
	if !ok || tenant == nil {
		return nil, false
	}
	return tenant, true
}

// Require returns the bound tenant or ErrNoTenant. Protected data paths
// call this so an unresolved tenant is a hard failure, not a silent scan
// of someone else's partition.
func Require(ctx context.Context) (*domain.Tenant, error) {
	tenant, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoTenant
	}
	return tenant, nil
}
