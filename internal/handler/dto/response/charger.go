package response

import (
	"log/slog"
	"time"

	"evcharge/internal/domain/charger"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ChargerResponse struct {
	ID              uuid.UUID `json:"id"`
	StationID       uuid.UUID `json:"stationId"`
	Class           string    `json:"class"`
	Status          string    `json:"status"`
	PricePerKwh     float64   `json:"pricePerKwh"`
	MaintenanceNote *string   `json:"maintenanceNote,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromChargerView(view *queries.ChargerView) *ChargerResponse {
	var resp ChargerResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("view to response mapping failed", "error", err)
	}
	return &resp
}

func FromChargerViews(views []*queries.ChargerView) []*ChargerResponse {
	resp := make([]*ChargerResponse, len(views))
	for i, v := range views {
		resp[i] = FromChargerView(v)
	}
	return resp
}

func FromChargerEntity(c *charger.Charger) *ChargerResponse {
	return &ChargerResponse{
		ID:              c.ID(),
		StationID:       c.StationID(),
		Class:           c.Class().String(),
		Status:          c.Status().String(),
		PricePerKwh:     c.PricePerKwh().Amount(),
		MaintenanceNote: c.MaintenanceNote(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}
