package response

import (
	"log/slog"
	"time"

	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type PriceQuoteResponse struct {
	StationID       uuid.UUID `json:"stationId"`
	ChargerClass    string    `json:"chargerClass"`
	At              time.Time `json:"at"`
	BasePricePerKwh float64   `json:"basePricePerKwh"`
	UnitPricePerKwh float64   `json:"unitPricePerKwh"`
	DiscountPercent float64   `json:"discountPercent"`
}

func FromPriceQuoteView(view *queries.PriceQuoteView) *PriceQuoteResponse {
	var resp PriceQuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("view to response mapping failed", "error", err)
	}
	return &resp
}
