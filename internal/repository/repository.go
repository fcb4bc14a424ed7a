package repository

import (
	"context"
	"time"

	"github.com/complyhub/complyhub-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByHostname(ctx context.Context, hostname string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	AddDomain(ctx context.Context, d *domain.TenantDomain) error
	ProvisionSchema(ctx context.Context, schemaName string) error
}

//go:generate mockery --name PlanRepository --output ../mocks
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
}

//go:generate mockery --name SubscriptionRepository --output ../mocks
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetByID(ctx context.Context, id string) (*domain.Subscription, error)
	// GetByTenantID preloads the plan so effective limits resolve without a
	// second read.
	GetByTenantID(ctx context.Context, tenantID string) (*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
}

// OverrideRepository persists limit override requests. The transition
// methods re-read the row under a row lock before mutating so concurrent
// approvals cannot both succeed.
//
//go:generate mockery --name OverrideRepository --output ../mocks
type OverrideRepository interface {
	Create(ctx context.Context, req *domain.LimitOverrideRequest) error
	GetByID(ctx context.Context, id string) (*domain.LimitOverrideRequest, error)
	List(ctx context.Context, filter domain.OverrideFilter) ([]domain.LimitOverrideRequest, error)
	// Transition locks the request row, hands the fresh copy to mutate, and
	// persists the result. mutate returning an error aborts the transaction.
	Transition(ctx context.Context, id string, mutate func(req *domain.LimitOverrideRequest) error) (*domain.LimitOverrideRequest, error)
	// Apply locks both the request and its subscription, hands both to
	// mutate, and persists request, subscription, and the returned audit
	// event in one transaction. A nil event skips the audit write (the
	// idempotent second apply path).
	Apply(ctx context.Context, id string, mutate func(req *domain.LimitOverrideRequest, sub *domain.Subscription) (*domain.AuditEvent, error)) (*domain.LimitOverrideRequest, error)
	// ExpireStale moves unapplied requests whose expiry has passed into the
	// expired status and returns the affected requests.
	ExpireStale(ctx context.Context, now time.Time) ([]domain.LimitOverrideRequest, error)
}

//go:generate mockery --name AuditEventRepository --output ../mocks
type AuditEventRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, filter domain.AuditEventFilter) ([]domain.AuditEvent, error)
	ListBeforeDate(ctx context.Context, tenantID string, beforeDate time.Time) ([]domain.AuditEvent, error)
	DeleteBeforeDate(ctx context.Context, tenantID string, beforeDate time.Time) (int64, error)
}

// UsageRepository reads live resource counts from a tenant's own schema.
// Counts are never cached across requests; staleness under concurrent
// writes is worse than the extra read.
//
//go:generate mockery --name UsageRepository --output ../mocks
type UsageRepository interface {
	Count(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType) (int, error)
}

//go:generate mockery --name OpenSearchRepository --output ../mocks
type OpenSearchRepository interface {
	Index(ctx context.Context, event *domain.AuditEvent) error
	BulkIndex(ctx context.Context, events []domain.AuditEvent) error
	Search(ctx context.Context, filter *domain.AuditEventFilter) ([]domain.AuditEvent, error)
	CreateIndex(ctx context.Context, tenantID string, t time.Time) error
	DeleteIndex(ctx context.Context, tenantID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Plan() PlanRepository
	Subscription() SubscriptionRepository
	Override() OverrideRepository
	AuditEvent() AuditEventRepository
	Usage() UsageRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	OpenSearch() OpenSearchRepository
}
