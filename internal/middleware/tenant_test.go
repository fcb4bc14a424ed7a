package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/mocks"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type TenantMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockTenant *mocks.TenantRepository
	mw         *TenantMiddleware
}

func (s *TenantMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockTenant = new(mocks.TenantRepository)
	mockRepo := new(mocks.PostgresRepository)
	mockRepo.On("Tenant").Return(s.mockTenant)

	directory := service.NewDirectoryService(mockRepo)
	s.mw = NewTenantMiddleware(directory, &config.Config{}, logger.NewLogger("development"))

	s.router = gin.New()
	s.router.Use(s.mw.ResolveTenant())

	// Echoes the binding so tests can observe what the handler saw.
	s.router.GET("/whoami", func(c *gin.Context) {
		tenant, ok := tenantctx.FromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusOK, gin.H{"bound": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bound": true, "slug": tenant.Slug})
	})

	s.router.GET("/scoped", s.mw.RequireTenant(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestTenantMiddleware(t *testing.T) {
	suite.Run(t, new(TenantMiddlewareTestSuite))
}

func (s *TenantMiddlewareTestSuite) TestResolveTenant_HeaderMode() {
	// Arrange
	tenant := &domain.Tenant{ID: "t1", Slug: "acme", Status: domain.TenantActive}
	s.mockTenant.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(config.TenantModeHeader, "header")
	req.Header.Set(config.TenantSlugHeader, "acme")
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"bound": true, "slug": "acme"}`, w.Body.String())
}

func (s *TenantMiddlewareTestSuite) TestResolveTenant_SubdomainMode() {
	// Arrange
	tenant := &domain.Tenant{ID: "t1", Slug: "acme", Status: domain.TenantActive}
	s.mockTenant.On("GetByHostname", mock.Anything, "acme.complyhub.io").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "acme.complyhub.io"
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"bound": true, "slug": "acme"}`, w.Body.String())
}

func (s *TenantMiddlewareTestSuite) TestResolveTenant_UnresolvedStaysPublic() {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "complyhub.io"
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"bound": false}`, w.Body.String())
}

func (s *TenantMiddlewareTestSuite) TestResolveTenant_UnknownMode() {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(config.TenantModeHeader, "cookie")
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

// A request that resolves a tenant must not leave the binding behind for
// the next request on the same engine.
func (s *TenantMiddlewareTestSuite) TestResolveTenant_NoCarryOverBetweenRequests() {
	// Arrange
	tenant := &domain.Tenant{ID: "t1", Slug: "acme", Status: domain.TenantActive}
	s.mockTenant.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	first := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	first.Header.Set(config.TenantModeHeader, "header")
	first.Header.Set(config.TenantSlugHeader, "acme")
	w1 := httptest.NewRecorder()
	s.router.ServeHTTP(w1, first)
	s.JSONEq(`{"bound": true, "slug": "acme"}`, w1.Body.String())

	// Act: same engine, no tenant identifier.
	second := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	second.Host = "complyhub.io"
	w2 := httptest.NewRecorder()
	s.router.ServeHTTP(w2, second)

	// Assert
	s.JSONEq(`{"bound": false}`, w2.Body.String())
}

func (s *TenantMiddlewareTestSuite) TestRequireTenant_UnresolvedIs404() {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Host = "complyhub.io"
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantMiddlewareTestSuite) TestRequireTenant_SuspendedIs403() {
	// Arrange
	tenant := &domain.Tenant{ID: "t1", Slug: "acme", Status: domain.TenantSuspended}
	s.mockTenant.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set(config.TenantModeHeader, "header")
	req.Header.Set(config.TenantSlugHeader, "acme")
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *TenantMiddlewareTestSuite) TestRequireTenant_ActiveTenantPasses() {
	// Arrange
	tenant := &domain.Tenant{ID: "t1", Slug: "acme", Status: domain.TenantActive}
	s.mockTenant.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	req.Header.Set(config.TenantModeHeader, "header")
	req.Header.Set(config.TenantSlugHeader, "acme")
	w := httptest.NewRecorder()

	// Act
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
}
