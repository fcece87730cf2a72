package request

import (
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

// Discount rule payloads are strongly typed; gin's binding rejects anything
// that does not parse into the declared fields.

type CreateDiscountRuleRequest struct {
	StationID    uuid.UUID `json:"station_id" binding:"required"`
	ChargerClass string    `json:"charger_class" binding:"required"`
	DayOfWeek    int       `json:"day_of_week" binding:"min=0,max=6"`
	StartHour    int       `json:"start_hour" binding:"min=0,max=23"`
	EndHour      int       `json:"end_hour" binding:"min=0,max=23"`
	Percent      float64   `json:"percent" binding:"min=0,max=100"`
	Active       bool      `json:"active"`
}

func (r CreateDiscountRuleRequest) ToCommand() commands.CreateDiscountRuleCommand {
	return commands.CreateDiscountRuleCommand{
		StationID:    r.StationID,
		ChargerClass: r.ChargerClass,
		DayOfWeek:    r.DayOfWeek,
		StartHour:    r.StartHour,
		EndHour:      r.EndHour,
		Percent:      r.Percent,
		Active:       r.Active,
	}
}

type UpdateDiscountRuleRequest struct {
	DayOfWeek int     `json:"day_of_week" binding:"min=0,max=6"`
	StartHour int     `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int     `json:"end_hour" binding:"min=0,max=23"`
	Percent   float64 `json:"percent" binding:"min=0,max=100"`
	Active    bool    `json:"active"`
}

func (r UpdateDiscountRuleRequest) ToCommand() commands.UpdateDiscountRuleCommand {
	return commands.UpdateDiscountRuleCommand{
		DayOfWeek: r.DayOfWeek,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		Percent:   r.Percent,
		Active:    r.Active,
	}
}
