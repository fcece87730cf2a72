package response

import (
	"log/slog"
	"time"

	"evcharge/internal/domain/reservation"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	ClientID          uuid.UUID `json:"clientId"`
	ClientEmail       string    `json:"clientEmail,omitempty"`
	ChargerID         uuid.UUID `json:"chargerId"`
	StationID         uuid.UUID `json:"stationId,omitempty"`
	StationName       string    `json:"stationName,omitempty"`
	ChargerClass      string    `json:"chargerClass,omitempty"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	BatteryLevelStart float64   `json:"batteryLevelStart"`
	EstimatedKwh      float64   `json:"estimatedKwh"`
	EstimatedCost     float64   `json:"estimatedCost"`
	Status            string    `json:"status"`
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("view to response mapping failed", "error", err)
	}
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resp[i] = FromReservationView(v)
	}
	return resp
}

// FromReservationEntity is the command-side mapping; joined fields like the
// station name are not loaded there and stay empty.
func FromReservationEntity(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                r.ID(),
		ClientID:          r.ClientID(),
		ChargerID:         r.ChargerID(),
		StartTime:         r.Window().Start(),
		EndTime:           r.Window().End(),
		BatteryLevelStart: r.BatteryLevelStart().Value(),
		EstimatedKwh:      r.EstimatedKwh().Value(),
		EstimatedCost:     r.EstimatedCost().Amount(),
		Status:            string(r.Status()),
		Paid:              r.Paid(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}
