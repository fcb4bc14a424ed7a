package domain

import (
	"encoding/json"
	"time"
)

// ResourceType identifies a governed resource. Effective limits for these
// come from the plan defaults unless an approved override raised them.
type ResourceType string

const (
	ResourceSeats      ResourceType = "SEATS"
	ResourceDocuments  ResourceType = "DOCUMENTS"
	ResourceFrameworks ResourceType = "FRAMEWORKS"
	ResourceStorageMB  ResourceType = "STORAGE_MB"
)

func (r ResourceType) Valid() bool {
	switch r {
	case ResourceSeats, ResourceDocuments, ResourceFrameworks, ResourceStorageMB:
		return true
	}
	return false
}

// Plan is a published subscription tier. Many tenants reference one plan;
// it is immutable outside administrative updates.
type Plan struct {
	ID                string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name              string          `gorm:"type:text;not null;uniqueIndex" json:"name"`
	MaxSeats          int             `gorm:"not null" json:"max_seats"`
	MaxDocuments      int             `gorm:"not null" json:"max_documents"`
	MaxFrameworks     int             `gorm:"not null" json:"max_frameworks"`
	MaxStorageMB      int             `gorm:"not null" json:"max_storage_mb"`
	Features          json.RawMessage `gorm:"type:jsonb" json:"features,omitempty"`
	MonthlyPriceCents int64           `gorm:"column:monthly_price_cents;not null;default:0" json:"monthly_price_cents"`
	CreatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

// DefaultLimit returns the plan's static ceiling for a resource.
func (p *Plan) DefaultLimit(resource ResourceType) int {
	switch resource {
	case ResourceSeats:
		return p.MaxSeats
	case ResourceDocuments:
		return p.MaxDocuments
	case ResourceFrameworks:
		return p.MaxFrameworks
	case ResourceStorageMB:
		return p.MaxStorageMB
	}
	return 0
}

// FeatureFlags decodes the plan's feature map. A nil Features column is an
// empty flag set, not an error.
func (p *Plan) FeatureFlags() (map[string]bool, error) {
	flags := make(map[string]bool)
	if len(p.Features) == 0 {
		return flags, nil
	}
	if err := json.Unmarshal(p.Features, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}
