package domain

import (
	"encoding/json"
	"time"
)

// Well-known audit event names emitted by the entitlement subsystem.
const (
	EventOverrideCreated        = "override.created"
	EventOverrideFirstApproved  = "override.first_approved"
	EventOverrideSecondApproved = "override.second_approved"
	EventOverrideRejected       = "override.rejected"
	EventOverrideApplied        = "override.applied"
	EventOverrideExpired        = "override.expired"
	EventTenantProvisioned      = "tenant.provisioned"
)

// AuditEvent is an immutable compliance-evidence record. Events are only
// ever appended; there is no update or delete path outside retention.
// TenantID is nullable: an event whose tenant could not be resolved is
// stored unscoped instead of being dropped.
type AuditEvent struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID  *string         `gorm:"type:uuid" json:"tenant_id,omitempty"`
	EventName string          `gorm:"type:text;not null" json:"event_name"`
	Actor     string          `gorm:"type:text;not null" json:"actor"`
	Detail    json.RawMessage `gorm:"type:jsonb" json:"detail,omitempty"`
	Timestamp time.Time       `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
	CreatedAt time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}

// TenantScope returns the owning tenant's ID, or the empty string for
// events recorded outside any tenant scope.
func (e *AuditEvent) TenantScope() string {
	if e.TenantID == nil {
		return ""
	}
	return *e.TenantID
}

// ScopeToTenant binds the event to a tenant. An empty ID leaves the event
// unscoped.
func (e *AuditEvent) ScopeToTenant(tenantID string) {
	if tenantID == "" {
		e.TenantID = nil
		return
	}
	e.TenantID = &tenantID
}

type AuditEventFilter struct {
	TenantID  string    `json:"tenant_id"`
	EventName string    `json:"event_name"`
	Actor     string    `json:"actor"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
}
