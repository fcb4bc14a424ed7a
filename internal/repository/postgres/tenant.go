package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByHostname(ctx context.Context, hostname string) (*domain.Tenant, error) {
	var d domain.TenantDomain
	if err := r.readerDB.WithContext(ctx).First(&d, "hostname = ?", hostname).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, d.TenantID)
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := r.readerDB.WithContext(ctx).Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) AddDomain(ctx context.Context, d *domain.TenantDomain) error {
	return r.writerDB.WithContext(ctx).Create(d).Error
}

// ProvisionSchema creates the tenant's isolated partition. Schema names are
// derived from slugs, which are validated to a safe charset before this is
// reached; the identifier is still quoted.
func (r *TenantRepository) ProvisionSchema(ctx context.Context, schemaName string) error {
	stmt := fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, schemaName)
	return r.writerDB.WithContext(ctx).Exec(stmt).Error
}
