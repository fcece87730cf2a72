package api

import (
	"errors"
	"net/http"

	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
	stationQueries   queries.StationQueries
}

func NewDiscountHandler(discountCommands commands.DiscountCommands, stationQueries queries.StationQueries) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
		stationQueries:   stationQueries,
	}
}

// @Summary Create discount rule
// @Description Add a time-windowed discount for a station and charger class
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDiscountRuleRequest true "Discount rule"
// @Success 201 {object} resdto.DiscountRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discount-rules [post]
func (h *DiscountHandler) CreateRule(c *gin.Context) {
	var req reqdto.CreateDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rule, err := h.discountCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found")
		case errors.Is(err, commands.ErrInvalidChargerClass):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid charger class")
		case errors.Is(err, commands.ErrInvalidDiscountRule):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid discount rule")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDiscountRuleEntity(rule))
}

// @Summary Update discount rule
// @Description Replace the window, percent and active flag of a rule
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdateDiscountRuleRequest true "Discount rule fields"
// @Success 200 {object} resdto.DiscountRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discount-rules/{id} [put]
func (h *DiscountHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format")
		return
	}

	var req reqdto.UpdateDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rule, err := h.discountCommands.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountRuleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount rule not found")
		case errors.Is(err, commands.ErrInvalidDiscountRule):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid discount rule")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountRuleEntity(rule))
}

// @Summary Delete discount rule
// @Description Remove a discount rule
// @Tags discounts
// @Produce json
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discount-rules/{id} [delete]
func (h *DiscountHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID format")
		return
	}

	if err := h.discountCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountRuleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount rule not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List station discount rules
// @Description List every discount rule configured for a station
// @Tags discounts
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {array} resdto.DiscountRuleResponse
// @Failure 400 {object} map[string]string
// @Router /stations/{id}/discount-rules [get]
func (h *DiscountHandler) ListStationRules(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format")
		return
	}

	views, err := h.stationQueries.ListDiscountRules(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountRuleViews(views))
}
