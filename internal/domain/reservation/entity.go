package reservation

import (
	"errors"
	"time"

	"evcharge/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNotActive      = errors.New("reservation is not active")
	ErrInvalidEndTime = errors.New("completion time must be after start time")
)

type Reservation struct {
	id                uuid.UUID
	clientID          uuid.UUID
	chargerID         uuid.UUID
	window            TimeWindow
	batteryLevelStart BatteryLevel
	estimatedKwh      EnergyKwh
	estimatedCost     pricing.Money
	status            Status
	paid              bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewReservation(
	clientID, chargerID uuid.UUID,
	window TimeWindow,
	batteryLevelStart BatteryLevel,
	estimatedKwh EnergyKwh,
	estimatedCost pricing.Money,
) *Reservation {
	return &Reservation{
		id:                uuid.New(),
		clientID:          clientID,
		chargerID:         chargerID,
		window:            window,
		batteryLevelStart: batteryLevelStart,
		estimatedKwh:      estimatedKwh,
		estimatedCost:     estimatedCost,
		status:            StatusActive,
		paid:              false,
	}
}

func ReconstructReservation(
	id, clientID, chargerID uuid.UUID,
	window TimeWindow,
	batteryLevelStart BatteryLevel,
	estimatedKwh EnergyKwh,
	estimatedCost pricing.Money,
	status Status,
	paid bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		clientID:          clientID,
		chargerID:         chargerID,
		window:            window,
		batteryLevelStart: batteryLevelStart,
		estimatedKwh:      estimatedKwh,
		estimatedCost:     estimatedCost,
		status:            status,
		paid:              paid,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Cancel marks the reservation cancelled. The row is retained for audit; only
// ACTIVE reservations can be cancelled, so a second cancel fails.
func (r *Reservation) Cancel() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	return nil
}

// Complete closes the reservation at the given instant. The window end is
// replaced by the actual completion time. Reconciling the estimated cost
// against delivered energy is out of scope.
func (r *Reservation) Complete(at time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if !r.window.start.Before(at) {
		return ErrInvalidEndTime
	}
	r.window.end = at
	r.status = StatusCompleted
	return nil
}

// MarkPaid flips the paid flag. It reports whether anything changed so the
// caller can skip the write on replayed confirmations.
func (r *Reservation) MarkPaid() bool {
	if r.paid {
		return false
	}
	r.paid = true
	return true
}

// Blocks reports whether this reservation denies admission to a new window on
// the same charger. Only ACTIVE reservations block; cancelled and completed
// ones are history.
func (r *Reservation) Blocks(window TimeWindow) bool {
	return r.status == StatusActive && r.window.Overlaps(window)
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) ClientID() uuid.UUID             { return r.clientID }
func (r *Reservation) ChargerID() uuid.UUID            { return r.chargerID }
func (r *Reservation) Window() TimeWindow              { return r.window }
func (r *Reservation) BatteryLevelStart() BatteryLevel { return r.batteryLevelStart }
func (r *Reservation) EstimatedKwh() EnergyKwh         { return r.estimatedKwh }
func (r *Reservation) EstimatedCost() pricing.Money    { return r.estimatedCost }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) Paid() bool                      { return r.paid }
func (r *Reservation) CreatedAt() time.Time            { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time            { return r.updatedAt }
