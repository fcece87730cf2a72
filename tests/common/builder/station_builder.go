//go:build unit || integration

package builder

import (
	"evcharge/internal/domain/station"
	reqdto "evcharge/internal/handler/dto/request"
	"evcharge/internal/usecase/commands"
)

type StationBuilder struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

func NewStationBuilder() *StationBuilder {
	return &StationBuilder{
		Name:      "Central Station",
		Address:   "1 Main Street",
		Latitude:  48.8566,
		Longitude: 2.3522,
	}
}

func (b *StationBuilder) With(mutate func(*StationBuilder)) *StationBuilder {
	mutate(b)
	return b
}

func (b *StationBuilder) BuildDomain() (*station.Station, error) {
	return station.NewStation(b.Name, b.Address, b.Latitude, b.Longitude)
}

func (b *StationBuilder) BuildCommand() commands.CreateStationCommand {
	return commands.CreateStationCommand{
		Name:      b.Name,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func (b *StationBuilder) BuildCreateRequestDTO() reqdto.CreateStationRequest {
	return reqdto.CreateStationRequest{
		Name:      b.Name,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}
