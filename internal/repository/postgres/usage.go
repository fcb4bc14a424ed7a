package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
)

// UsageRepository reads live counts from a tenant's own schema. Queries are
// schema-qualified rather than relying on search_path, so a usage read can
// never land in another tenant's partition.
type UsageRepository struct {
	readerDB *gorm.DB
}

func NewUsageRepository(readerDB *gorm.DB) *UsageRepository {
	return &UsageRepository{readerDB: readerDB}
}

func (r *UsageRepository) Count(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType) (int, error) {
	var count int64
	var err error

	switch resource {
	case domain.ResourceSeats:
		err = r.countRows(ctx, tenant.SchemaName, "users", &count)
	case domain.ResourceDocuments:
		err = r.countRows(ctx, tenant.SchemaName, "documents", &count)
	case domain.ResourceFrameworks:
		err = r.countRows(ctx, tenant.SchemaName, "frameworks", &count)
	case domain.ResourceStorageMB:
		stmt := fmt.Sprintf(`SELECT COALESCE(SUM(size_bytes), 0) / (1024 * 1024) FROM %q.documents`, tenant.SchemaName)
		err = r.readerDB.WithContext(ctx).Raw(stmt).Scan(&count).Error
	default:
		return 0, fmt.Errorf("unknown resource type %q", resource)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count %s for tenant %s: %w", resource, tenant.Slug, err)
	}

	return int(count), nil
}

func (r *UsageRepository) countRows(ctx context.Context, schemaName, table string, count *int64) error {
	stmt := fmt.Sprintf(`SELECT COUNT(*) FROM %q.%s`, schemaName, table)
	return r.readerDB.WithContext(ctx).Raw(stmt).Scan(count).Error
}
