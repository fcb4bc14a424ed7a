package api

import (
	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/middleware"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/service/pubsub"
	"github.com/complyhub/complyhub-api/internal/storage"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type Server struct {
	tenant      *TenantHandler
	plan        *PlanHandler
	entitlement *EntitlementHandler
	override    *OverrideHandler
	auditEvent  *AuditEventHandler
	evidence    *EvidenceHandler
	websocket   *WebSocketHandler
	tenantMw    *middleware.TenantMiddleware
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
}

func NewServer(
	tenantService *service.TenantService,
	planService *service.PlanService,
	entitlementService *service.EntitlementService,
	overrideService *service.OverrideService,
	auditService *service.AuditService,
	storageRouter *storage.Router,
	tenantMw *middleware.TenantMiddleware,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		tenant:      NewTenantHandler(tenantService),
		plan:        NewPlanHandler(planService),
		entitlement: NewEntitlementHandler(entitlementService),
		override:    NewOverrideHandler(overrideService),
		auditEvent:  NewAuditEventHandler(auditService),
		evidence:    NewEvidenceHandler(storageRouter),
		websocket:   NewWebSocketHandler(logger, pubsub),
		tenantMw:    tenantMw,
		auth:        auth,
		rateLimit:   rateLimit,
		validation:  validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(32 * 1024 * 1024)) // 32MB max, evidence uploads included

	// Tenant binding runs on every route; enforcement is per-group.
	api.Use(s.tenantMw.ResolveTenant())

	{
		// Operator surface, not tenant-scoped.
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
		}

		plans := api.Group("/plans", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			plans.POST("", s.plan.CreatePlan)
			plans.GET("", s.plan.ListPlans)
		}

		overrides := api.Group("/overrides", s.auth.JWTAuth())
		{
			overrides.POST("", s.override.CreateOverride)
			overrides.GET("/:id", s.override.GetOverride)

			approver := overrides.Group("", s.auth.RequireApprover())
			{
				approver.POST("/:id/approve-first", s.override.ApproveFirst)
				approver.POST("/:id/approve-second", s.override.ApproveSecond)
				approver.POST("/:id/reject", s.override.RejectOverride)
				approver.POST("/:id/apply", s.override.ApplyOverride)
				approver.GET("/pending", s.override.ListPendingApprovals)
				approver.GET("/approved", s.override.ListApprovedPendingApplication)
			}
		}

		// Tenant-scoped surface.
		entitlements := api.Group("/entitlements", s.auth.JWTAuth(), s.tenantMw.RequireTenant(), s.rateLimit.TenantRateLimit())
		{
			entitlements.GET("", s.entitlement.GetEntitlements)
			entitlements.POST("/check", s.entitlement.CheckEntitlement)
			entitlements.GET("/features/:name", s.entitlement.GetFeature)
		}

		auditEvents := api.Group("/audit-events", s.auth.JWTAuth(), s.tenantMw.RequireTenant(), s.rateLimit.TenantRateLimit())
		{
			auditEvents.GET("", s.auditEvent.SearchEvents)
			auditEvents.POST("/archive", s.auth.RequireRole("admin"), s.auditEvent.ScheduleArchive)
			auditEvents.GET("/stream", s.websocket.HandleWebSocket)
		}

		evidence := api.Group("/evidence", s.auth.JWTAuth(), s.tenantMw.RequireTenant(), s.rateLimit.TenantRateLimit())
		{
			evidence.PUT("/*path", s.evidence.UploadEvidence)
			evidence.GET("/*path", s.evidence.DownloadEvidence)
			evidence.DELETE("/*path", s.evidence.DeleteEvidence)
		}

		evidenceMeta := api.Group("/evidence-meta", s.auth.JWTAuth(), s.tenantMw.RequireTenant(), s.rateLimit.TenantRateLimit())
		{
			evidenceMeta.GET("/*path", s.evidence.StatEvidence)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting events
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for shutdown wiring
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
