package api

import (
	"errors"
	"net/http"

	reqdto "evcharge/internal/handler/dto/request"
	resdto "evcharge/internal/handler/dto/response"
	"evcharge/internal/handler/httperr"
	"evcharge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutCommands: checkoutCommands}
}

// @Summary Start checkout
// @Description Open a pay session at the provider for a reservation's estimated cost
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.StartCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	sessionID, err := h.checkoutCommands.Start(c.Request.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already paid")
		case errors.Is(err, commands.ErrNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation cannot be paid in its current state")
		case errors.Is(err, commands.ErrPaymentProvider):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider failure")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CheckoutSessionResponse{SessionID: sessionID})
}

// @Summary Confirm checkout
// @Description Verify a pay session with the provider and mark the reservation paid
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmCheckoutRequest true "Confirmation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) ConfirmCheckout(c *gin.Context) {
	var req reqdto.ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	res, err := h.checkoutCommands.Confirm(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrPaymentNotConfirmed):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment not completed")
		case errors.Is(err, commands.ErrPaymentProvider):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider failure")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationEntity(res))
}
