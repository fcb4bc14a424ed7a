package dto

import (
	"github.com/complyhub/complyhub-api/internal/domain"
)

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		Status:    string(tenant.Status),
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

// FromPlan converts a Plan domain model to a PlanResponse DTO
func FromPlan(plan *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:                plan.ID,
		Name:              plan.Name,
		MaxSeats:          plan.MaxSeats,
		MaxDocuments:      plan.MaxDocuments,
		MaxFrameworks:     plan.MaxFrameworks,
		MaxStorageMB:      plan.MaxStorageMB,
		MonthlyPriceCents: plan.MonthlyPriceCents,
		Features:          plan.Features,
	}
}

// FromOverride converts a LimitOverrideRequest domain model to an
// OverrideResponse DTO
func FromOverride(req *domain.LimitOverrideRequest) *OverrideResponse {
	return &OverrideResponse{
		ID:             req.ID,
		SubscriptionID: req.SubscriptionID,
		ResourceType:   string(req.ResourceType),
		CurrentLimit:   req.CurrentLimit,
		RequestedLimit: req.RequestedLimit,
		Justification:  req.Justification,
		Urgency:        string(req.Urgency),
		Temporary:      req.Temporary,
		ExpiresAt:      req.ExpiresAt,
		RequestedBy:    req.RequestedBy,
		Status:         string(req.Status),

		FirstApprovedBy:    req.FirstApprovedBy,
		FirstApprovedAt:    req.FirstApprovedAt,
		FirstApprovalNotes: req.FirstApprovalNotes,

		SecondApprovedBy:    req.SecondApprovedBy,
		SecondApprovedAt:    req.SecondApprovedAt,
		SecondApprovalNotes: req.SecondApprovalNotes,

		RejectedBy:      req.RejectedBy,
		RejectedAt:      req.RejectedAt,
		RejectionReason: req.RejectionReason,

		AppliedBy: req.AppliedBy,
		AppliedAt: req.AppliedAt,

		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
}

func FromOverrides(reqs []domain.LimitOverrideRequest) []OverrideResponse {
	responses := make([]OverrideResponse, len(reqs))
	for i, req := range reqs {
		responses[i] = *FromOverride(&req)
	}
	return responses
}

// FromAuditEvent converts an AuditEvent domain model to an
// AuditEventResponse DTO
func FromAuditEvent(event *domain.AuditEvent) *AuditEventResponse {
	return &AuditEventResponse{
		ID:        event.ID,
		TenantID:  event.TenantScope(),
		EventName: event.EventName,
		Actor:     event.Actor,
		Detail:    event.Detail,
		Timestamp: event.Timestamp,
	}
}

func FromAuditEvents(events []domain.AuditEvent) []AuditEventResponse {
	responses := make([]AuditEventResponse, len(events))
	for i, event := range events {
		responses[i] = *FromAuditEvent(&event)
	}
	return responses
}
