package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type TenantMiddleware struct {
	directory *service.DirectoryService
	config    *config.Config
	logger    *logger.Logger
}

func NewTenantMiddleware(directory *service.DirectoryService, config *config.Config, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		directory: directory,
		config:    config,
		logger:    logger,
	}
}

// ResolveTenant binds the tenant for the request, if one can be resolved.
// The mode header selects "header" or "subdomain" resolution; subdomain is
// the default. The binding lives on the request context only, so handlers
// running on reused server goroutines never observe another request's
// tenant. Resolution failure does not abort here: public routes stay
// reachable and RequireTenant enforces the binding where it matters.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := service.ResolutionMode(c.GetHeader(config.TenantModeHeader))
		if mode == "" {
			mode = service.ModeSubdomain
		}

		identifier := c.Request.Host
		if mode == service.ModeHeader {
			identifier = c.GetHeader(config.TenantSlugHeader)
		}

		tenant, err := m.directory.Resolve(c.Request.Context(), mode, identifier)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTenantNotFound), errors.Is(err, service.ErrHostNotEligible):
				// Expected on public routes and bare root domains.
			case errors.Is(err, service.ErrUnknownMode):
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unknown tenant resolution mode"})
				return
			default:
				m.logger.Error("Tenant resolution failed", err)
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(tenantctx.WithTenant(c.Request.Context(), tenant))
		c.Next()
	}
}

// RequireTenant gates tenant-scoped routes. An unresolved tenant is a 404,
// not a 401: the route itself does not exist outside a tenant scope.
// Suspended tenants resolve but may not act.
func (m *TenantMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := tenantctx.FromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
			return
		}

		if tenant.Status == domain.TenantSuspended {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Tenant is suspended"})
			return
		}

		c.Next()
	}
}
