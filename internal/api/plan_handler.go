package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/service"
)

//go:generate mockery --name PlanService --output ../mocks
type PlanService interface {
	Create(ctx context.Context, req dto.CreatePlanRequest) (dto.PlanResponse, error)
	List(ctx context.Context) ([]dto.PlanResponse, error)
	GetByName(ctx context.Context, name string) (dto.PlanResponse, error)
}

type PlanHandler struct {
	*BaseHandler
	service PlanService
}

func NewPlanHandler(service PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// CreatePlan godoc
// @Summary Publish a new plan
// @Description Create a plan with resource limits and feature flags
// @Tags plans
// @Accept json
// @Produce json
// @Param body body dto.CreatePlanRequest true "Plan object"
// @Success 201 {object} dto.PlanResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	plan, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrPlanExists) {
			c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans godoc
// @Summary List published plans
// @Description Get the full plan catalog
// @Tags plans
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}
