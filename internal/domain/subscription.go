package domain

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription links a tenant to a plan. Nullable custom columns override
// the plan default for one resource; null means "use the plan default".
type Subscription struct {
	ID                 string             `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID           string             `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	PlanID             string             `gorm:"type:uuid;not null" json:"plan_id"`
	Status             SubscriptionStatus `gorm:"type:text;not null;default:'trialing'" json:"status"`
	CustomMaxSeats     *int               `gorm:"column:custom_max_seats" json:"custom_max_seats,omitempty"`
	CustomMaxDocuments *int               `gorm:"column:custom_max_documents" json:"custom_max_documents,omitempty"`
	CustomMaxFramework *int               `gorm:"column:custom_max_frameworks" json:"custom_max_frameworks,omitempty"`
	CustomMaxStorageMB *int               `gorm:"column:custom_max_storage_mb" json:"custom_max_storage_mb,omitempty"`
	CustomPriceCents   *int64             `gorm:"column:custom_price_cents" json:"custom_price_cents,omitempty"`
	CreatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Plan   *Plan   `gorm:"foreignKey:PlanID" json:"-"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsUsable reports whether entitlement checks may pass under this
// subscription. past_due and canceled deny everything.
func (s *Subscription) IsUsable() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

// CustomLimit returns the override column for a resource, nil when unset.
func (s *Subscription) CustomLimit(resource ResourceType) *int {
	switch resource {
	case ResourceSeats:
		return s.CustomMaxSeats
	case ResourceDocuments:
		return s.CustomMaxDocuments
	case ResourceFrameworks:
		return s.CustomMaxFramework
	case ResourceStorageMB:
		return s.CustomMaxStorageMB
	}
	return nil
}

// SetCustomLimit sets the override column for a resource. Applying an
// approved override request is the only caller that should mutate these.
func (s *Subscription) SetCustomLimit(resource ResourceType, limit int) {
	switch resource {
	case ResourceSeats:
		s.CustomMaxSeats = &limit
	case ResourceDocuments:
		s.CustomMaxDocuments = &limit
	case ResourceFrameworks:
		s.CustomMaxFramework = &limit
	case ResourceStorageMB:
		s.CustomMaxStorageMB = &limit
	}
}

// EffectiveLimit resolves the ceiling for a resource: the custom override
// when set, else the plan default. Plan must be preloaded.
func (s *Subscription) EffectiveLimit(resource ResourceType) int {
	if custom := s.CustomLimit(resource); custom != nil {
		return *custom
	}
	if s.Plan == nil {
		return 0
	}
	return s.Plan.DefaultLimit(resource)
}
