package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantActive    TenantStatus = "ACTIVE"
	TenantSuspended TenantStatus = "SUSPENDED"
)

// Tenant is an isolated customer account. Business data lives in the
// tenant's own postgres schema; the tenant record itself lives in the
// shared partition so operators can query across tenants.
type Tenant struct {
	ID         string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name       string       `gorm:"type:text;not null" json:"name"`
	Slug       string       `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	SchemaName string       `gorm:"type:text;not null;uniqueIndex" json:"schema_name"`
	Status     TenantStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Domains      []TenantDomain `gorm:"foreignKey:TenantID" json:"-"`
	Subscription *Subscription  `gorm:"foreignKey:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantDomain binds a hostname to exactly one tenant. Only subdomain-mode
// resolution consults it; at most one domain per tenant is primary.
type TenantDomain struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Hostname  string    `gorm:"type:text;not null;uniqueIndex" json:"hostname"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TenantDomain) TableName() string {
	return "tenant_domains"
}
