package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
)

// OverrideService runs the two-person approval workflow that raises a
// subscription limit beyond its plan default.
//
// The same-actor guard on the second approval is a security control: one
// operator must never be able to self-approve a limit increase. Every
// transition re-reads state under a row lock, so concurrent approvals and
// concurrent applies serialize instead of double-firing.
type OverrideService struct {
	repo  repository.PostgresRepository
	audit *AuditService
}

func NewOverrideService(repo repository.PostgresRepository, audit *AuditService) *OverrideService {
	return &OverrideService{repo: repo, audit: audit}
}

// Create opens a new request in pending_first. The current limit is
// captured from the subscription at creation time so approvers see the
// delta the requester saw.
func (s *OverrideService) Create(ctx context.Context, req dto.CreateOverrideRequest) (*domain.LimitOverrideRequest, error) {
	resource := domain.ResourceType(req.ResourceType)
	if !resource.Valid() {
		return nil, ErrUnknownResource
	}
	if req.Temporary && req.ExpiresAt == nil {
		return nil, ErrExpiryRequired
	}

	sub, err := s.repo.Subscription().GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSubscription
		}
		return nil, err
	}

	current := sub.EffectiveLimit(resource)
	if req.RequestedLimit <= current {
		return nil, ErrRequestedNotIncrease
	}

	override := &domain.LimitOverrideRequest{
		ID:             uuid.NewString(),
		SubscriptionID: sub.ID,
		ResourceType:   resource,
		CurrentLimit:   current,
		RequestedLimit: req.RequestedLimit,
		Justification:  req.Justification,
		Urgency:        domain.OverrideUrgency(req.Urgency),
		Temporary:      req.Temporary,
		ExpiresAt:      req.ExpiresAt,
		RequestedBy:    req.Actor,
		Status:         domain.OverridePendingFirst,
	}
	if override.Urgency == "" {
		override.Urgency = domain.UrgencyNormal
	}

	if err := s.repo.Override().Create(ctx, override); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, s.event(override, sub.TenantID, domain.EventOverrideCreated, req.Actor, map[string]any{
		"resource_type":   string(resource),
		"current_limit":   current,
		"requested_limit": req.RequestedLimit,
	}))

	return override, nil
}

func (s *OverrideService) GetByID(ctx context.Context, id string) (*domain.LimitOverrideRequest, error) {
	req, err := s.repo.Override().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return req, nil
}

// ApproveFirst moves pending_first to pending_second.
func (s *OverrideService) ApproveFirst(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
	req, err := s.transition(ctx, id, func(req *domain.LimitOverrideRequest) error {
		if req.Status != domain.OverridePendingFirst || req.FirstApprovedBy != "" {
			return ErrNotPendingFirst
		}
		now := time.Now()
		req.Status = domain.OverridePendingSecond
		req.FirstApprovedBy = actor
		req.FirstApprovedAt = &now
		req.FirstApprovalNotes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, s.event(req, s.tenantIDFor(ctx, req), domain.EventOverrideFirstApproved, actor, map[string]any{"notes": notes}))
	return req, nil
}

// ApproveSecond moves pending_second to approved. The actor must differ
// from the first approver.
func (s *OverrideService) ApproveSecond(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
	req, err := s.transition(ctx, id, func(req *domain.LimitOverrideRequest) error {
		if req.Status != domain.OverridePendingSecond || req.FirstApprovedBy == "" || req.SecondApprovedBy != "" {
			return ErrNotPendingSecond
		}
		if actor == req.FirstApprovedBy {
			return ErrSameApprover
		}
		now := time.Now()
		req.Status = domain.OverrideApproved
		req.SecondApprovedBy = actor
		req.SecondApprovedAt = &now
		req.SecondApprovalNotes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, s.event(req, s.tenantIDFor(ctx, req), domain.EventOverrideSecondApproved, actor, map[string]any{"notes": notes}))
	return req, nil
}

// Reject terminates the request from any state before applied. The reason
// is mandatory.
func (s *OverrideService) Reject(ctx context.Context, id, actor, reason string) (*domain.LimitOverrideRequest, error) {
	if reason == "" {
		return nil, ErrEmptyRejectionReason
	}

	req, err := s.transition(ctx, id, func(req *domain.LimitOverrideRequest) error {
		if req.Status.IsTerminal() {
			return ErrAlreadyTerminal
		}
		now := time.Now()
		req.Status = domain.OverrideRejected
		req.RejectedBy = actor
		req.RejectedAt = &now
		req.RejectionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, s.event(req, s.tenantIDFor(ctx, req), domain.EventOverrideRejected, actor, map[string]any{"reason": reason}))
	return req, nil
}

// Apply mutates the subscription's custom limit to the requested value and
// writes the audit event in the same transaction. A second apply observes
// the applied status and no-ops instead of raising the limit twice.
func (s *OverrideService) Apply(ctx context.Context, id, actor string) (*domain.LimitOverrideRequest, error) {
	req, err := s.repo.Override().Apply(ctx, id, func(req *domain.LimitOverrideRequest, sub *domain.Subscription) (*domain.AuditEvent, error) {
		if req.Status == domain.OverrideApplied {
			return nil, nil // already applied, idempotent
		}
		if req.Status != domain.OverrideApproved || req.FirstApprovedBy == "" || req.SecondApprovedBy == "" {
			return nil, ErrNotApproved
		}

		previous := sub.EffectiveLimit(req.ResourceType)
		sub.SetCustomLimit(req.ResourceType, req.RequestedLimit)

		now := time.Now()
		req.Status = domain.OverrideApplied
		req.AppliedBy = actor
		req.AppliedAt = &now

		return s.event(req, sub.TenantID, domain.EventOverrideApplied, actor, map[string]any{
			"resource_type":  string(req.ResourceType),
			"previous_limit": previous,
			"new_limit":      req.RequestedLimit,
			"request_id":     req.ID,
		}), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListPendingApprovals returns requests still waiting on either approver.
func (s *OverrideService) ListPendingApprovals(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error) {
	return s.repo.Override().List(ctx, domain.OverrideFilter{
		Statuses: []domain.OverrideStatus{domain.OverridePendingFirst, domain.OverridePendingSecond},
		Limit:    limit,
		Offset:   offset,
	})
}

// ListApprovedPendingApplication returns fully approved requests that have
// not been applied yet.
func (s *OverrideService) ListApprovedPendingApplication(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error) {
	return s.repo.Override().List(ctx, domain.OverrideFilter{
		Statuses: []domain.OverrideStatus{domain.OverrideApproved},
		Limit:    limit,
		Offset:   offset,
	})
}

// ExpireStale closes out unapplied requests whose expiry has passed. Run by
// the expiry worker; applied overrides are deliberately left alone.
func (s *OverrideService) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.repo.Override().ExpireStale(ctx, now)
	if err != nil {
		return 0, err
	}

	for i := range expired {
		s.audit.Record(ctx, s.event(&expired[i], s.tenantIDFor(ctx, &expired[i]), domain.EventOverrideExpired, "system", map[string]any{
			"expired_at": now,
		}))
	}
	return len(expired), nil
}

func (s *OverrideService) transition(ctx context.Context, id string, mutate func(req *domain.LimitOverrideRequest) error) (*domain.LimitOverrideRequest, error) {
	req, err := s.repo.Override().Transition(ctx, id, mutate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return req, nil
}

// tenantIDFor resolves the tenant an audit event belongs to. Best effort:
// a failed lookup leaves the event unscoped rather than dropping it.
func (s *OverrideService) tenantIDFor(ctx context.Context, req *domain.LimitOverrideRequest) string {
	sub, err := s.repo.Subscription().GetByID(ctx, req.SubscriptionID)
	if err != nil {
		return ""
	}
	return sub.TenantID
}

func (s *OverrideService) event(req *domain.LimitOverrideRequest, tenantID, name, actor string, detail map[string]any) *domain.AuditEvent {
	detail["request_id"] = req.ID

	event := &domain.AuditEvent{
		ID:        uuid.NewString(),
		EventName: name,
		Actor:     actor,
		Detail:    mustDetail(detail),
		Timestamp: time.Now(),
	}
	event.ScopeToTenant(tenantID)
	return event
}
