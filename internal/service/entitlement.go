package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
)

// Feature flags a plan may carry. A flag name outside this set is an
// unknown-feature denial, which is distinct from a plan lacking the flag.
var knownFeatures = map[string]struct{}{
	"sso":               {},
	"api_access":        {},
	"custom_frameworks": {},
	"vendor_automation": {},
	"advanced_reports":  {},
}

// CheckResult is the structured outcome of an entitlement check. Denials
// always carry the reason and the numbers behind it so the HTTP layer can
// render an actionable message, never a bare boolean.
type CheckResult struct {
	Allowed       bool   `json:"allowed"`
	Reason        string `json:"reason,omitempty"`
	Current       int    `json:"current"`
	Max           int    `json:"max"`
	Remaining     int    `json:"remaining"`
	UpgradeNeeded bool   `json:"upgrade_needed,omitempty"`
}

// EntitlementService computes effective resource limits and feature
// availability for a tenant. Usage counts are read live from the tenant's
// partition on every check; nothing is cached across requests.
//
// Check-then-consume is not atomic: two concurrent requests can both pass a
// check for the last remaining unit and overshoot the limit by one. The
// limit is best-effort by design of the consuming writers, which own the
// final count.
type EntitlementService struct {
	repo repository.PostgresRepository
}

func NewEntitlementService(repo repository.PostgresRepository) *EntitlementService {
	return &EntitlementService{repo: repo}
}

// EffectiveLimit resolves the ceiling for one resource: the subscription's
// custom override when set, else the plan default.
func (s *EntitlementService) EffectiveLimit(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType) (int, error) {
	if !resource.Valid() {
		return 0, ErrUnknownResource
	}

	sub, err := s.subscription(ctx, tenant)
	if err != nil {
		return 0, err
	}
	return sub.EffectiveLimit(resource), nil
}

// HasFeature reports whether the tenant's plan carries a named flag. An
// unknown flag name is an error, not a quiet false.
func (s *EntitlementService) HasFeature(ctx context.Context, tenant *domain.Tenant, feature string) (bool, error) {
	if _, known := knownFeatures[feature]; !known {
		return false, fmt.Errorf("%w: %s", ErrUnknownFeature, feature)
	}

	sub, err := s.subscription(ctx, tenant)
	if err != nil {
		return false, err
	}
	if sub.Plan == nil {
		return false, nil
	}

	flags, err := sub.Plan.FeatureFlags()
	if err != nil {
		return false, fmt.Errorf("failed to decode plan features: %w", err)
	}
	return flags[feature], nil
}

// Check decides whether the tenant may consume requestedDelta more units of
// a resource. A tenant without a usable subscription denies every check.
func (s *EntitlementService) Check(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType, requestedDelta int) (*CheckResult, error) {
	if !resource.Valid() {
		return nil, ErrUnknownResource
	}

	sub, err := s.repo.Subscription().GetByTenantID(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CheckResult{
				Allowed:       false,
				Reason:        "tenant has no subscription",
				UpgradeNeeded: true,
			}, nil
		}
		return nil, err
	}

	if !sub.IsUsable() {
		return &CheckResult{
			Allowed:       false,
			Reason:        fmt.Sprintf("subscription status is %s", sub.Status),
			UpgradeNeeded: sub.Status == domain.SubscriptionPastDue || sub.Status == domain.SubscriptionCanceled,
		}, nil
	}

	max := sub.EffectiveLimit(resource)
	current, err := s.repo.Usage().Count(ctx, tenant, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage for %s: %w", resource, err)
	}

	remaining := max - current
	if requestedDelta > remaining {
		return &CheckResult{
			Allowed:       false,
			Reason:        fmt.Sprintf("%s limit reached", resource),
			Current:       current,
			Max:           max,
			Remaining:     maxInt(remaining, 0),
			UpgradeNeeded: true,
		}, nil
	}

	return &CheckResult{
		Allowed:   true,
		Current:   current,
		Max:       max,
		Remaining: remaining,
	}, nil
}

// EntitlementSummary is the full entitlement picture for one tenant.
type EntitlementSummary struct {
	SubscriptionID string
	PlanName       string
	Status         domain.SubscriptionStatus
	Limits         map[domain.ResourceType]int
	Features       map[string]bool
}

// Summary resolves every effective limit and feature flag in one read.
func (s *EntitlementService) Summary(ctx context.Context, tenant *domain.Tenant) (*EntitlementSummary, error) {
	sub, err := s.subscription(ctx, tenant)
	if err != nil {
		return nil, err
	}

	summary := &EntitlementSummary{
		SubscriptionID: sub.ID,
		Status:         sub.Status,
		Limits:         make(map[domain.ResourceType]int),
		Features:       make(map[string]bool),
	}
	for _, resource := range []domain.ResourceType{
		domain.ResourceSeats,
		domain.ResourceDocuments,
		domain.ResourceFrameworks,
		domain.ResourceStorageMB,
	} {
		summary.Limits[resource] = sub.EffectiveLimit(resource)
	}

	if sub.Plan != nil {
		summary.PlanName = sub.Plan.Name
		flags, err := sub.Plan.FeatureFlags()
		if err != nil {
			return nil, fmt.Errorf("failed to decode plan features: %w", err)
		}
		for feature := range knownFeatures {
			summary.Features[feature] = flags[feature]
		}
	}

	return summary, nil
}

func (s *EntitlementService) subscription(ctx context.Context, tenant *domain.Tenant) (*domain.Subscription, error) {
	sub, err := s.repo.Subscription().GetByTenantID(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSubscription
		}
		return nil, err
	}
	return sub, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
