package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/pkg/clock"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StationHandler struct {
	stationCommands commands.StationCommands
	stationQueries  queries.StationQueries
	pricingQueries  queries.PricingQueries
	clock           clock.Clock
}

func NewStationHandler(
	stationCommands commands.StationCommands,
	stationQueries queries.StationQueries,
	pricingQueries queries.PricingQueries,
	clock clock.Clock,
) *StationHandler {
	return &StationHandler{
		stationCommands: stationCommands,
		stationQueries:  stationQueries,
		pricingQueries:  pricingQueries,
		clock:           clock,
	}
}

// @Summary Create station
// @Description Register a charging station
// @Tags stations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateStationRequest true "Station request"
// @Success 201 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations [post]
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req reqdto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	entity, err := h.stationCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateStationLocation):
			httperr.AbortWithError(c, http.StatusConflict, err, "A station already exists at these coordinates")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStationEntity(entity))
}

// @Summary Get station
// @Description Get station by ID
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) GetStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format")
		return
	}

	view, err := h.stationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

// @Summary List stations
// @Description List all charging stations
// @Tags stations
// @Produce json
// @Success 200 {array} resdto.StationResponse
// @Router /stations [get]
func (h *StationHandler) ListStations(c *gin.Context) {
	views, err := h.stationQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationViews(views))
}

// @Summary List station chargers
// @Description List the chargers installed at a station
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {array} resdto.ChargerResponse
// @Failure 400 {object} map[string]string
// @Router /stations/{id}/chargers [get]
func (h *StationHandler) ListChargers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format")
		return
	}

	views, err := h.stationQueries.ListChargers(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromChargerViews(views))
}

// @Summary Quote price
// @Description Effective per-kWh price for a charger class at a station, at a given instant
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Param class query string true "Charger class"
// @Param at query string false "Instant (RFC3339), defaults to now"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id}/quote [get]
func (h *StationHandler) QuotePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station ID format")
		return
	}

	class := c.Query("class")
	if class == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Charger class is required")
		return
	}

	at := h.clock.Now()
	if atStr := c.Query("at"); atStr != "" {
		at, err = time.Parse(time.RFC3339, atStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time format, expected RFC3339")
			return
		}
	}

	view, err := h.pricingQueries.Quote(c.Request.Context(), id, class, at)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoChargerOfClass):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station has no charger of this class")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceQuoteView(view))
}
