package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/utils"
)

//go:generate mockery --name OverrideService --output ../mocks
type OverrideService interface {
	Create(ctx context.Context, req dto.CreateOverrideRequest) (*domain.LimitOverrideRequest, error)
	GetByID(ctx context.Context, id string) (*domain.LimitOverrideRequest, error)
	ApproveFirst(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error)
	ApproveSecond(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error)
	Reject(ctx context.Context, id, actor, reason string) (*domain.LimitOverrideRequest, error)
	Apply(ctx context.Context, id, actor string) (*domain.LimitOverrideRequest, error)
	ListPendingApprovals(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error)
	ListApprovedPendingApplication(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error)
}

type OverrideHandler struct {
	*BaseHandler
	service OverrideService
}

func NewOverrideHandler(service OverrideService) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// CreateOverride godoc
// @Summary Request a limit override
// @Description Open a two-person approval request to raise one subscription limit
// @Tags overrides
// @Accept json
// @Produce json
// @Param body body dto.CreateOverrideRequest true "Override request"
// @Success 201 {object} dto.OverrideResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /overrides [post]
func (h *OverrideHandler) CreateOverride(c *gin.Context) {
	var req dto.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	actor, err := utils.GetActorFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	req.Actor = actor

	override, err := h.service.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownResource),
			errors.Is(err, service.ErrExpiryRequired),
			errors.Is(err, service.ErrRequestedNotIncrease):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromOverride(override))
}

// GetOverride godoc
// @Summary Get an override request
// @Description Get an override request and its approval state by ID
// @Tags overrides
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /overrides/{id} [get]
func (h *OverrideHandler) GetOverride(c *gin.Context) {
	override, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOverride(override))
}

// ApproveFirst godoc
// @Summary First approval
// @Description Record the first of the two required approvals
// @Tags overrides
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.ApprovalRequest false "Approval notes"
// @Success 200 {object} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /overrides/{id}/approve-first [post]
func (h *OverrideHandler) ApproveFirst(c *gin.Context) {
	h.transition(c, func(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
		return h.service.ApproveFirst(ctx, id, actor, notes)
	})
}

// ApproveSecond godoc
// @Summary Second approval
// @Description Record the second approval; the actor must differ from the first approver
// @Tags overrides
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.ApprovalRequest false "Approval notes"
// @Success 200 {object} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /overrides/{id}/approve-second [post]
func (h *OverrideHandler) ApproveSecond(c *gin.Context) {
	h.transition(c, func(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
		return h.service.ApproveSecond(ctx, id, actor, notes)
	})
}

// RejectOverride godoc
// @Summary Reject an override request
// @Description Terminally reject a request at any point before it is applied
// @Tags overrides
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body dto.RejectionRequest true "Rejection reason"
// @Success 200 {object} dto.OverrideResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /overrides/{id}/reject [post]
func (h *OverrideHandler) RejectOverride(c *gin.Context) {
	var body dto.RejectionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	actor, err := utils.GetActorFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	override, err := h.service.Reject(ctx, c.Param("id"), actor, body.Reason)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOverride(override))
}

// ApplyOverride godoc
// @Summary Apply an approved override
// @Description Mutate the subscription limit from a fully approved request; applying twice is a no-op
// @Tags overrides
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /overrides/{id}/apply [post]
func (h *OverrideHandler) ApplyOverride(c *gin.Context) {
	ctx := h.RequestCtx(c)
	actor, err := utils.GetActorFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	override, err := h.service.Apply(ctx, c.Param("id"), actor)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOverride(override))
}

// ListPendingApprovals godoc
// @Summary List requests awaiting approval
// @Description Operator view of requests in pending_first or pending_second
// @Tags overrides
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /overrides/pending [get]
func (h *OverrideHandler) ListPendingApprovals(c *gin.Context) {
	limit, offset := pagination(c)
	overrides, err := h.service.ListPendingApprovals(h.RequestCtx(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromOverrides(overrides))
}

// ListApprovedPendingApplication godoc
// @Summary List approved, unapplied requests
// @Description Operator view of requests approved but not yet applied
// @Tags overrides
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.OverrideResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /overrides/approved [get]
func (h *OverrideHandler) ListApprovedPendingApplication(c *gin.Context) {
	limit, offset := pagination(c)
	overrides, err := h.service.ListApprovedPendingApplication(h.RequestCtx(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromOverrides(overrides))
}

func (h *OverrideHandler) transition(c *gin.Context, do func(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error)) {
	var body dto.ApprovalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
	}

	ctx := h.RequestCtx(c)
	actor, err := utils.GetActorFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	override, err := do(ctx, c.Param("id"), actor, body.Notes)
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOverride(override))
}

func (h *OverrideHandler) writeTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOverrideNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrSameApprover):
		c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrNotPendingFirst),
		errors.Is(err, service.ErrNotPendingSecond),
		errors.Is(err, service.ErrNotApproved),
		errors.Is(err, service.ErrAlreadyTerminal):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrEmptyRejectionReason):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
