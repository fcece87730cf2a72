package request

import (
	"evcharge/internal/usecase/commands"
)

type CreateStationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

func (r CreateStationRequest) ToCommand() commands.CreateStationCommand {
	return commands.CreateStationCommand{
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}
