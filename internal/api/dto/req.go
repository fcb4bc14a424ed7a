package dto

import (
	"time"
)

type CreateTenantRequest struct {
	Name     string `json:"name" binding:"required" example:"Acme Corp"`
	Slug     string `json:"slug" binding:"required" example:"acme"`
	Hostname string `json:"hostname" example:"acme.complyhub.io"`
	// Actor comes from the authenticated claims, never the body.
	Actor string `json:"-"`
}

type CreatePlanRequest struct {
	Name              string         `json:"name" binding:"required" example:"growth"`
	MaxSeats          int            `json:"max_seats" binding:"required" example:"50"`
	MaxDocuments      int            `json:"max_documents" binding:"required" example:"1000"`
	MaxFrameworks     int            `json:"max_frameworks" binding:"required" example:"5"`
	MaxStorageMB      int            `json:"max_storage_mb" binding:"required" example:"10240"`
	MonthlyPriceCents int64          `json:"monthly_price_cents" example:"49900"`
	Features          map[string]any `json:"features" swaggertype:"object"`
}

type CreateOverrideRequest struct {
	SubscriptionID string     `json:"subscription_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ResourceType   string     `json:"resource_type" binding:"required" example:"SEATS"`
	RequestedLimit int        `json:"requested_limit" binding:"required" example:"75"`
	Justification  string     `json:"justification" binding:"required" example:"Onboarding 25 auditors for Q4 assessment"`
	Urgency        string     `json:"urgency" example:"normal"`
	Temporary      bool       `json:"temporary" example:"false"`
	ExpiresAt      *time.Time `json:"expires_at" example:"2026-12-31T00:00:00Z"`
	Actor          string     `json:"-"`
}

// ApprovalRequest carries optional notes for approve transitions.
type ApprovalRequest struct {
	Notes string `json:"notes" example:"Capacity confirmed with infra"`
}

// RejectionRequest carries the mandatory rejection reason.
type RejectionRequest struct {
	Reason string `json:"reason" binding:"required" example:"Requested limit exceeds contract ceiling"`
}

// CheckEntitlementRequest asks whether consuming delta more units of a
// resource would stay within the effective limit.
type CheckEntitlementRequest struct {
	ResourceType string `json:"resource_type" binding:"required" example:"DOCUMENTS"`
	Delta        int    `json:"delta" example:"1"`
}
