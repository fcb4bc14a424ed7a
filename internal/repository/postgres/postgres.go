package postgres

import (
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	tenantRepo       repository.TenantRepository
	planRepo         repository.PlanRepository
	subscriptionRepo repository.SubscriptionRepository
	overrideRepo     repository.OverrideRepository
	auditEventRepo   repository.AuditEventRepository
	usageRepo        repository.UsageRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:         dbConnections.Writer,
		readerDB:         dbConnections.Reader,
		tenantRepo:       NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		planRepo:         NewPlanRepository(dbConnections.Writer, dbConnections.Reader),
		subscriptionRepo: NewSubscriptionRepository(dbConnections.Writer, dbConnections.Reader),
		overrideRepo:     NewOverrideRepository(dbConnections.Writer, dbConnections.Reader),
		auditEventRepo:   NewAuditEventRepository(dbConnections.Writer, dbConnections.Reader),
		usageRepo:        NewUsageRepository(dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Plan() repository.PlanRepository {
	return r.planRepo
}

func (r *postgresRepository) Subscription() repository.SubscriptionRepository {
	return r.subscriptionRepo
}

func (r *postgresRepository) Override() repository.OverrideRepository {
	return r.overrideRepo
}

func (r *postgresRepository) AuditEvent() repository.AuditEventRepository {
	return r.auditEventRepo
}

func (r *postgresRepository) Usage() repository.UsageRepository {
	return r.usageRepo
}
