package domain

import (
	"time"
)

type OverrideStatus string

const (
	OverridePendingFirst  OverrideStatus = "pending_first"
	OverridePendingSecond OverrideStatus = "pending_second"
	OverrideApproved      OverrideStatus = "approved"
	OverrideRejected      OverrideStatus = "rejected"
	OverrideApplied       OverrideStatus = "applied"
	OverrideExpired       OverrideStatus = "expired"
)

type OverrideUrgency string

const (
	UrgencyLow      OverrideUrgency = "low"
	UrgencyNormal   OverrideUrgency = "normal"
	UrgencyCritical OverrideUrgency = "critical"
)

// LimitOverrideRequest asks to raise one subscription limit above its plan
// default. Two distinct approvers must sign off before it can be applied;
// apply is the only transition that touches the subscription.
type LimitOverrideRequest struct {
	ID             string          `gorm:"primaryKey;type:uuid" json:"id"`
	SubscriptionID string          `gorm:"type:uuid;not null" json:"subscription_id"`
	ResourceType   ResourceType    `gorm:"type:text;not null" json:"resource_type"`
	CurrentLimit   int             `gorm:"not null" json:"current_limit"`
	RequestedLimit int             `gorm:"not null" json:"requested_limit"`
	Justification  string          `gorm:"type:text;not null" json:"justification"`
	Urgency        OverrideUrgency `gorm:"type:text;not null;default:'normal'" json:"urgency"`
	Temporary      bool            `gorm:"not null;default:false" json:"temporary"`
	ExpiresAt      *time.Time      `gorm:"type:timestamp with time zone" json:"expires_at,omitempty"`
	RequestedBy    string          `gorm:"type:text;not null" json:"requested_by"`

	Status OverrideStatus `gorm:"type:text;not null;default:'pending_first'" json:"status"`

	FirstApprovedBy    string     `gorm:"type:text" json:"first_approved_by,omitempty"`
	FirstApprovedAt    *time.Time `gorm:"type:timestamp with time zone" json:"first_approved_at,omitempty"`
	FirstApprovalNotes string     `gorm:"type:text" json:"first_approval_notes,omitempty"`

	SecondApprovedBy    string     `gorm:"type:text" json:"second_approved_by,omitempty"`
	SecondApprovedAt    *time.Time `gorm:"type:timestamp with time zone" json:"second_approved_at,omitempty"`
	SecondApprovalNotes string     `gorm:"type:text" json:"second_approval_notes,omitempty"`

	RejectedBy      string     `gorm:"type:text" json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `gorm:"type:timestamp with time zone" json:"rejected_at,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`

	AppliedBy string     `gorm:"type:text" json:"applied_by,omitempty"`
	AppliedAt *time.Time `gorm:"type:timestamp with time zone" json:"applied_at,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Subscription *Subscription `gorm:"foreignKey:SubscriptionID" json:"-"`
}

func (LimitOverrideRequest) TableName() string {
	return "limit_override_requests"
}

// IsTerminal reports whether no further transition may leave this status.
func (s OverrideStatus) IsTerminal() bool {
	return s == OverrideRejected || s == OverrideApplied || s == OverrideExpired
}

// OverrideFilter narrows operator listing views.
type OverrideFilter struct {
	SubscriptionID string           `json:"subscription_id"`
	Statuses       []OverrideStatus `json:"statuses"`
	ResourceType   ResourceType     `json:"resource_type"`
	Limit          int              `json:"limit"`
	Offset         int              `json:"offset"`
}
