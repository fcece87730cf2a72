package api

import (
	"context"
	"errors"
	"net/http"

	"evcharge/internal/domain/charger"
	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChargerHandler struct {
	chargerCommands commands.ChargerCommands
	stationQueries  queries.StationQueries
}

func NewChargerHandler(chargerCommands commands.ChargerCommands, stationQueries queries.StationQueries) *ChargerHandler {
	return &ChargerHandler{
		chargerCommands: chargerCommands,
		stationQueries:  stationQueries,
	}
}

// @Summary Create charger
// @Description Register a charger at a station
// @Tags chargers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateChargerRequest true "Charger request"
// @Success 201 {object} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chargers [post]
func (h *ChargerHandler) CreateCharger(c *gin.Context) {
	var req reqdto.CreateChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	entity, err := h.chargerCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found")
		case errors.Is(err, commands.ErrInvalidChargerClass):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid charger class or status")
		case errors.Is(err, commands.ErrInvalidBasePrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Price per kWh cannot be negative")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromChargerEntity(entity))
}

// @Summary Get charger
// @Description Get charger by ID
// @Tags chargers
// @Produce json
// @Param id path string true "Charger ID"
// @Success 200 {object} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chargers/{id} [get]
func (h *ChargerHandler) GetCharger(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid charger ID format")
		return
	}

	view, err := h.stationQueries.GetCharger(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrChargerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Charger not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromChargerView(view))
}

// @Summary Put charger under maintenance
// @Description Take a charger out of service with an optional note
// @Tags chargers
// @Accept json
// @Produce json
// @Param id path string true "Charger ID"
// @Param request body reqdto.SetMaintenanceRequest false "Maintenance note"
// @Success 200 {object} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chargers/{id}/maintenance [post]
func (h *ChargerHandler) SetUnderMaintenance(c *gin.Context) {
	var req reqdto.SetMaintenanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
			return
		}
	}

	h.transition(c, func(ctx context.Context, id uuid.UUID) (*charger.Charger, error) {
		return h.chargerCommands.SetUnderMaintenance(ctx, id, req.Note)
	})
}

// @Summary Mark charger available
// @Description Return a charger to service; clears any maintenance note
// @Tags chargers
// @Produce json
// @Param id path string true "Charger ID"
// @Success 200 {object} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chargers/{id}/available [post]
func (h *ChargerHandler) SetAvailable(c *gin.Context) {
	h.transition(c, h.chargerCommands.SetAvailable)
}

// @Summary Mark charger in use
// @Description Flag a charging session in progress; the charger stays bookable
// @Tags chargers
// @Produce json
// @Param id path string true "Charger ID"
// @Success 200 {object} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chargers/{id}/in-use [post]
func (h *ChargerHandler) SetInUse(c *gin.Context) {
	h.transition(c, h.chargerCommands.SetInUse)
}

func (h *ChargerHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, id uuid.UUID) (*charger.Charger, error),
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid charger ID format")
		return
	}

	entity, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrChargerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Charger not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromChargerEntity(entity))
}
