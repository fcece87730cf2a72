package commands

import (
	"context"
	"time"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/domain/reservation"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/clock"
	"evcharge/internal/pkg/errs"
	"evcharge/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound          = errs.New("client not found")
	ErrChargerNotFound         = errs.New("charger not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrChargerUnderMaintenance = errs.New("charger is under maintenance")
	ErrTimeWindowConflict      = errs.New("charger is already reserved for the requested time")
	ErrInvalidReservationState = errs.New("invalid reservation status")
	ErrInvalidTimeWindow       = errs.New("invalid time window")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationCommand struct {
	ClientID          uuid.UUID
	ChargerID         uuid.UUID
	StartTime         time.Time
	EndTime           time.Time
	BatteryLevelStart float64
	EstimatedKwh      float64
}

type ReservationCommands interface {
	Create(ctx context.Context, cmd CreateReservationCommand) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Complete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	clientRepo      ClientRepository
	chargerRepo     ChargerRepository
	ruleRepo        DiscountRuleRepository
	locks           *shared.ChargerLocks
	clock           clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	clientRepo ClientRepository,
	chargerRepo ChargerRepository,
	ruleRepo DiscountRuleRepository,
	locks *shared.ChargerLocks,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		chargerRepo:     chargerRepo,
		ruleRepo:        ruleRepo,
		locks:           locks,
		clock:           clock,
	}
}

// Create admits a new reservation: client and charger must exist, the charger
// must not be under maintenance, and the requested window must not overlap
// any ACTIVE reservation on the charger. The estimated cost is derived from
// the charger's base price and the discount in force at the start time.
func (u *reservationCommandsImpl) Create(ctx context.Context, cmd CreateReservationCommand) (*reservation.Reservation, error) {
	window, err := reservation.NewTimeWindow(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeWindow)
	}
	battery, err := reservation.NewBatteryLevel(cmd.BatteryLevelStart)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	energy, err := reservation.NewEnergyKwh(cmd.EstimatedKwh)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err = u.clientRepo.FindByID(ctx, cmd.ClientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	chargerEntity, err := u.chargerRepo.FindByID(ctx, cmd.ChargerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrChargerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !chargerEntity.IsBookable() {
		return nil, ErrChargerUnderMaintenance
	}

	// Admission is serialized per charger: the overlap read and the insert
	// below must not interleave with another request for the same charger.
	unlock := u.locks.Lock(chargerEntity.ID())
	defer unlock()

	existing, err := u.reservationRepo.FindActiveByCharger(ctx, chargerEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, r := range existing {
		if r.Blocks(window) {
			return nil, ErrTimeWindowConflict
		}
	}

	rules, err := u.ruleRepo.FindActiveFor(ctx, chargerEntity.StationID(), chargerEntity.Class().String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	quote := pricing.UnitPriceFor(chargerEntity.PricePerKwh(), rules, window.Start())
	cost, err := pricing.EstimatedCost(quote, energy.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	res := reservation.NewReservation(cmd.ClientID, chargerEntity.ID(), window, battery, energy, cost)

	if err := u.reservationRepo.Create(ctx, res); err != nil {
		// The storage exclusion constraint is the cross-process backstop for
		// the same race the charger lock closes in-process.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrTimeWindowConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return res, nil
}

// Cancel marks an ACTIVE reservation cancelled and returns it for caller
// auditing. The row is retained; a second cancel fails on status.
func (u *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := res.Cancel(); err != nil {
		return nil, errs.Mark(err, ErrInvalidReservationState)
	}

	if err := u.saveReservation(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Complete closes an ACTIVE reservation at the current time. Reconciliation
// of the estimated cost against delivered energy is out of scope.
func (u *reservationCommandsImpl) Complete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := res.Complete(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidReservationState)
	}

	if err := u.saveReservation(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// MarkPaid flips the paid flag once. Replayed confirmations return the
// current state without a write.
func (u *reservationCommandsImpl) MarkPaid(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.MarkPaid() {
		return res, nil
	}

	if err := u.saveReservation(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *reservationCommandsImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (u *reservationCommandsImpl) saveReservation(ctx context.Context, res *reservation.Reservation) error {
	if err := u.reservationRepo.Save(ctx, res); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
