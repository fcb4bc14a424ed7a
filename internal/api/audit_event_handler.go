package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/utils"
)

//go:generate mockery --name AuditEventService --output ../mocks
type AuditEventService interface {
	Search(ctx context.Context, filter *domain.AuditEventFilter) ([]domain.AuditEvent, error)
	ScheduleArchive(ctx context.Context, tenantID string, beforeDate time.Time) error
}

type AuditEventHandler struct {
	*BaseHandler
	service AuditEventService
}

func NewAuditEventHandler(service AuditEventService) *AuditEventHandler {
	return &AuditEventHandler{service: service}
}

// SearchEvents godoc
// @Summary Search audit events
// @Description Search the bound tenant's audit trail with filtering options
// @Tags audit_events
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param event_name query string false "Filter by event name"
// @Param actor query string false "Filter by actor"
// @Param start_time query string false "Filter by start time (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Filter by end time (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} dto.AuditEventResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /audit-events [get]
func (h *AuditEventHandler) SearchEvents(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenant, err := tenantctx.Require(ctx)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
		return
	}

	filter, err := eventFilterFromQuery(c, tenant.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	events, err := h.service.Search(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromAuditEvents(events))
}

// ScheduleArchive godoc
// @Summary Schedule audit event archival
// @Description Enqueue an archive job for the bound tenant's events before the given date
// @Tags audit_events
// @Produce json
// @Param before_date query string true "Archive events before this date (RFC3339 or YYYY-MM-DD)"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /audit-events/archive [post]
func (h *AuditEventHandler) ScheduleArchive(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenant, err := tenantctx.Require(ctx)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Tenant not found"})
		return
	}

	beforeDateStr := c.Query("before_date")
	if beforeDateStr == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date parameter is required"})
		return
	}

	beforeDate, err := utils.ParseUserTime(beforeDateStr, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid before_date format: " + err.Error()})
		return
	}
	if beforeDate.After(time.Now()) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date cannot be in the future"})
		return
	}

	if err := h.service.ScheduleArchive(ctx, tenant.ID, beforeDate); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule archival: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "Archival scheduled successfully",
		"tenant_id":   tenant.ID,
		"before_date": beforeDate.Format(time.RFC3339),
	})
}

func eventFilterFromQuery(c *gin.Context, tenantID string) (*domain.AuditEventFilter, error) {
	filter := &domain.AuditEventFilter{
		TenantID:  tenantID,
		EventName: c.Query("event_name"),
		Actor:     c.Query("actor"),
	}

	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}

	return filter, nil
}
