package api

import (
	"context"
	"errors"
	"net/http"

	"evcharge/internal/domain/reservation"
	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a charger for a time window
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	res, err := h.reservationCommands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found")
		case errors.Is(err, commands.ErrChargerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Charger not found")
		case errors.Is(err, commands.ErrChargerUnderMaintenance):
			httperr.AbortWithError(c, http.StatusConflict, err, "Charger is under maintenance")
		case errors.Is(err, commands.ErrTimeWindowConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Charger is already reserved for the requested time")
		case errors.Is(err, commands.ErrInvalidTimeWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time must be before end time")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationEntity(res))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List client reservations
// @Description List all reservations of a client, any status
// @Tags reservations
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /clients/{clientId}/reservations [get]
func (h *ReservationHandler) ListClientReservations(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client ID format")
		return
	}

	views, err := h.reservationQueries.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List charger reservations
// @Description List all reservations on a charger, any status
// @Tags reservations
// @Produce json
// @Param chargerId path string true "Charger ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /chargers/{chargerId}/reservations [get]
func (h *ReservationHandler) ListChargerReservations(c *gin.Context) {
	chargerID, err := uuid.Parse(c.Param("chargerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid charger ID format")
		return
	}

	views, err := h.reservationQueries.ListByCharger(c.Request.Context(), chargerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation; the record is retained
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Cancel)
}

// @Summary Complete reservation
// @Description Close an active reservation at the current time
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/complete [post]
func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Complete)
}

func (h *ReservationHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error),
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	res, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrInvalidReservationState):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation is not active")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationEntity(res))
}
