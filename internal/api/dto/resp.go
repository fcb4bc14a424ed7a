package dto

import (
	"encoding/json"
	"time"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Corp"`
	Slug      string    `json:"slug" example:"acme"`
	Status    string    `json:"status" example:"ACTIVE"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-30T09:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-08-30T09:00:00Z"`
}

// PlanResponse represents a published plan
type PlanResponse struct {
	ID                string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name              string          `json:"name" example:"growth"`
	MaxSeats          int             `json:"max_seats" example:"50"`
	MaxDocuments      int             `json:"max_documents" example:"1000"`
	MaxFrameworks     int             `json:"max_frameworks" example:"5"`
	MaxStorageMB      int             `json:"max_storage_mb" example:"10240"`
	MonthlyPriceCents int64           `json:"monthly_price_cents" example:"49900"`
	Features          json.RawMessage `json:"features,omitempty" swaggertype:"object"`
}

// EntitlementResponse is the full entitlement picture for the bound tenant:
// every effective limit plus the resolved feature flags.
type EntitlementResponse struct {
	SubscriptionID string          `json:"subscription_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PlanName       string          `json:"plan_name" example:"growth"`
	Status         string          `json:"status" example:"active"`
	Limits         map[string]int  `json:"limits"`
	Features       map[string]bool `json:"features"`
}

// CheckEntitlementResponse mirrors service.CheckResult on the wire.
type CheckEntitlementResponse struct {
	Allowed       bool   `json:"allowed" example:"false"`
	Reason        string `json:"reason,omitempty" example:"limit_exceeded"`
	Current       int    `json:"current" example:"1000"`
	Max           int    `json:"max" example:"1000"`
	Remaining     int    `json:"remaining" example:"0"`
	UpgradeNeeded bool   `json:"upgrade_needed" example:"true"`
}

// OverrideResponse represents a limit override request with its full
// approval state.
type OverrideResponse struct {
	ID             string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SubscriptionID string     `json:"subscription_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ResourceType   string     `json:"resource_type" example:"SEATS"`
	CurrentLimit   int        `json:"current_limit" example:"50"`
	RequestedLimit int        `json:"requested_limit" example:"75"`
	Justification  string     `json:"justification" example:"Onboarding 25 auditors for Q4 assessment"`
	Urgency        string     `json:"urgency" example:"normal"`
	Temporary      bool       `json:"temporary" example:"false"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	RequestedBy    string     `json:"requested_by" example:"ops@complyhub.io"`
	Status         string     `json:"status" example:"pending_second"`

	FirstApprovedBy    string     `json:"first_approved_by,omitempty"`
	FirstApprovedAt    *time.Time `json:"first_approved_at,omitempty"`
	FirstApprovalNotes string     `json:"first_approval_notes,omitempty"`

	SecondApprovedBy    string     `json:"second_approved_by,omitempty"`
	SecondApprovedAt    *time.Time `json:"second_approved_at,omitempty"`
	SecondApprovalNotes string     `json:"second_approval_notes,omitempty"`

	RejectedBy      string     `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	AppliedBy string     `json:"applied_by,omitempty"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditEventResponse represents a single audit event in the response
type AuditEventResponse struct {
	ID        string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID  string          `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	EventName string          `json:"event_name" example:"override.applied"`
	Actor     string          `json:"actor" example:"carol@complyhub.io"`
	Detail    json.RawMessage `json:"detail,omitempty" swaggertype:"object"`
	Timestamp time.Time       `json:"timestamp" example:"2026-08-30T09:00:00Z"`
}

// EvidenceResponse describes a stored evidence file
type EvidenceResponse struct {
	Path      string `json:"path" example:"evidence/soc2/report.pdf"`
	SizeBytes int64  `json:"size_bytes" example:"482133"`
	URL       string `json:"url" example:"http://localhost:4566/complyhub-acme/evidence/soc2/report.pdf"`
}
