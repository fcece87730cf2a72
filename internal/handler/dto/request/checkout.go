package request

import "github.com/google/uuid"

type StartCheckoutRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}

type ConfirmCheckoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
