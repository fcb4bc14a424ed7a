package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
)

//go:generate mockery --name EntitlementService --output ../mocks
type EntitlementService interface {
	Summary(ctx context.Context, tenant *domain.Tenant) (*service.EntitlementSummary, error)
	Check(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType, requestedDelta int) (*service.CheckResult, error)
	HasFeature(ctx context.Context, tenant *domain.Tenant, feature string) (bool, error)
}

type EntitlementHandler struct {
	*BaseHandler
	service EntitlementService
}

func NewEntitlementHandler(service EntitlementService) *EntitlementHandler {
	return &EntitlementHandler{service: service}
}

// GetEntitlements godoc
// @Summary Get tenant entitlements
// @Description Get every effective limit and feature flag for the bound tenant
// @Tags entitlements
// @Produce json
// @Success 200 {object} dto.EntitlementResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /entitlements [get]
func (h *EntitlementHandler) GetEntitlements(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenant, err := tenantctx.Require(ctx)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
		return
	}

	summary, err := h.service.Summary(ctx, tenant)
	if err != nil {
		if errors.Is(err, service.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant has no subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	limits := make(map[string]int, len(summary.Limits))
	for resource, limit := range summary.Limits {
		limits[string(resource)] = limit
	}

	c.JSON(http.StatusOK, dto.EntitlementResponse{
		SubscriptionID: summary.SubscriptionID,
		PlanName:       summary.PlanName,
		Status:         string(summary.Status),
		Limits:         limits,
		Features:       summary.Features,
	})
}

// CheckEntitlement godoc
// @Summary Check an entitlement
// @Description Decide whether consuming delta more units of a resource stays within the effective limit
// @Tags entitlements
// @Accept json
// @Produce json
// @Param body body dto.CheckEntitlementRequest true "Check parameters"
// @Success 200 {object} dto.CheckEntitlementResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /entitlements/check [post]
func (h *EntitlementHandler) CheckEntitlement(c *gin.Context) {
	var req dto.CheckEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if req.Delta <= 0 {
		req.Delta = 1
	}

	ctx := h.RequestCtx(c)
	tenant, err := tenantctx.Require(ctx)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
		return
	}

	result, err := h.service.Check(ctx, tenant, domain.ResourceType(req.ResourceType), req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrUnknownResource) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CheckEntitlementResponse{
		Allowed:       result.Allowed,
		Reason:        result.Reason,
		Current:       result.Current,
		Max:           result.Max,
		Remaining:     result.Remaining,
		UpgradeNeeded: result.UpgradeNeeded,
	})
}

// GetFeature godoc
// @Summary Check a feature flag
// @Description Report whether the bound tenant's plan carries a named feature
// @Tags entitlements
// @Produce json
// @Param name path string true "Feature name"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /entitlements/features/{name} [get]
func (h *EntitlementHandler) GetFeature(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenant, err := tenantctx.Require(ctx)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
		return
	}

	enabled, err := h.service.HasFeature(ctx, tenant, c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownFeature):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, service.ErrNoSubscription):
			c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant has no subscription"})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"feature": c.Param("name"), "enabled": enabled})
}
