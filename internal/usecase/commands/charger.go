package commands

import (
	"context"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound     = errs.New("station not found")
	ErrInvalidChargerClass = errs.New("invalid charger class")
	ErrInvalidBasePrice    = errs.New("invalid base price")
)

type CreateChargerCommand struct {
	StationID        uuid.UUID
	Class            string
	Status           string
	PricePerKwhCents int64
}

type ChargerCommands interface {
	Create(ctx context.Context, cmd CreateChargerCommand) (*charger.Charger, error)
	SetUnderMaintenance(ctx context.Context, id uuid.UUID, note string) (*charger.Charger, error)
	SetAvailable(ctx context.Context, id uuid.UUID) (*charger.Charger, error)
	SetInUse(ctx context.Context, id uuid.UUID) (*charger.Charger, error)
}

type chargerCommandsImpl struct {
	chargerRepo ChargerRepository
	stationRepo StationRepository
}

func NewChargerCommands(chargerRepo ChargerRepository, stationRepo StationRepository) ChargerCommands {
	return &chargerCommandsImpl{
		chargerRepo: chargerRepo,
		stationRepo: stationRepo,
	}
}

func (u *chargerCommandsImpl) Create(ctx context.Context, cmd CreateChargerCommand) (*charger.Charger, error) {
	if _, err := u.stationRepo.FindByID(ctx, cmd.StationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	price, err := pricing.NewMoney(cmd.PricePerKwhCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBasePrice)
	}

	entity, err := charger.NewCharger(cmd.StationID, charger.Class(cmd.Class), charger.Status(cmd.Status), price)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidChargerClass)
	}

	if err := u.chargerRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *chargerCommandsImpl) SetUnderMaintenance(ctx context.Context, id uuid.UUID, note string) (*charger.Charger, error) {
	return u.transition(ctx, id, func(c *charger.Charger) {
		c.SetUnderMaintenance(note)
	})
}

func (u *chargerCommandsImpl) SetAvailable(ctx context.Context, id uuid.UUID) (*charger.Charger, error) {
	return u.transition(ctx, id, func(c *charger.Charger) {
		c.SetAvailable()
	})
}

func (u *chargerCommandsImpl) SetInUse(ctx context.Context, id uuid.UUID) (*charger.Charger, error) {
	return u.transition(ctx, id, func(c *charger.Charger) {
		c.SetInUse()
	})
}

func (u *chargerCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*charger.Charger)) (*charger.Charger, error) {
	entity, err := u.chargerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrChargerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	apply(entity)

	if err := u.chargerRepo.Save(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
