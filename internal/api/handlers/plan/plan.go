// Package plan exposes the meal plan engine over HTTP. The handler only
// binds, delegates, and maps errors; all semantics live in the core
// packages.
package plan

import (
	"net/http"

	"meal-plan-engine/internal/core/mealplan"
	"meal-plan-engine/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves plan generation requests.
type Handler struct {
	service *mealplan.Service
}

// NewHandler creates the plan handler.
func NewHandler(service *mealplan.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGenerate runs one meal plan generation.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("meal plan generation requested",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req common.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid request body",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "Invalid request format",
		})
		return
	}

	generated, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, requestID, err)
		return
	}

	common.LogInfo("meal plan generation completed",
		zap.String("request_id", requestID),
		zap.String("plan_id", generated.ID),
		zap.Int("meals", len(generated.Meals)),
	)

	c.JSON(http.StatusOK, generated)
}

// writeError maps engine errors onto HTTP responses: validation → 400,
// unfillable slot → 422 with the slot context, provider trouble → 503.
func (h *Handler) writeError(c *gin.Context, requestID string, err error) {
	switch {
	case common.IsValidationError(err):
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
	case common.IsInsufficientCandidates(err):
		common.LogWarn("plan generation failed: slot unfillable",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusUnprocessableEntity, common.ErrorResponse{
			Code:    common.ErrCodeUnprocessable,
			Message: err.Error(),
		})
	default:
		common.LogError("plan generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrCodeServiceUnavailable,
			Message: "Plan generation is temporarily unavailable",
		})
	}
}
