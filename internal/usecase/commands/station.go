package commands

import (
	"context"

	"evcharge/internal/domain/station"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"
)

var ErrDuplicateStationLocation = errs.New("a station already exists at these coordinates")

type CreateStationCommand struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type StationCommands interface {
	Create(ctx context.Context, cmd CreateStationCommand) (*station.Station, error)
}

type stationCommandsImpl struct {
	stationRepo StationRepository
}

func NewStationCommands(stationRepo StationRepository) StationCommands {
	return &stationCommandsImpl{stationRepo: stationRepo}
}

func (u *stationCommandsImpl) Create(ctx context.Context, cmd CreateStationCommand) (*station.Station, error) {
	entity, err := station.NewStation(cmd.Name, cmd.Address, cmd.Latitude, cmd.Longitude)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.stationRepo.Create(ctx, entity); err != nil {
		// Unique index on (latitude, longitude).
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateStationLocation
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
