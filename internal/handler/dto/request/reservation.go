package request

import (
	"time"

	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientID          uuid.UUID `json:"client_id" binding:"required"`
	ChargerID         uuid.UUID `json:"charger_id" binding:"required"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	EndTime           time.Time `json:"end_time" binding:"required"`
	BatteryLevelStart float64   `json:"battery_level_start" binding:"min=0,max=100"`
	EstimatedKwh      float64   `json:"estimated_kwh" binding:"min=0"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		ClientID:          r.ClientID,
		ChargerID:         r.ChargerID,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		BatteryLevelStart: r.BatteryLevelStart,
		EstimatedKwh:      r.EstimatedKwh,
	}
}
