package request

import (
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateChargerRequest struct {
	StationID        uuid.UUID `json:"station_id" binding:"required"`
	Class            string    `json:"class" binding:"required"`
	Status           string    `json:"status"`
	PricePerKwhCents int64     `json:"price_per_kwh_cents" binding:"min=0"`
}

func (r CreateChargerRequest) ToCommand() commands.CreateChargerCommand {
	return commands.CreateChargerCommand{
		StationID:        r.StationID,
		Class:            r.Class,
		Status:           r.Status,
		PricePerKwhCents: r.PricePerKwhCents,
	}
}

type SetMaintenanceRequest struct {
	Note string `json:"note"`
}
