package charger

import (
	"errors"
	"time"

	"evcharge/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidClass  = errors.New("invalid charger class")
	ErrInvalidStatus = errors.New("invalid charger status")
)

type Charger struct {
	id              uuid.UUID
	stationID       uuid.UUID
	class           Class
	status          Status
	pricePerKwh     pricing.Money
	maintenanceNote *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewCharger(stationID uuid.UUID, class Class, status Status, pricePerKwh pricing.Money) (*Charger, error) {
	if !class.IsValid() {
		return nil, ErrInvalidClass
	}
	if status == "" {
		status = StatusAvailable
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Charger{
		id:          uuid.New(),
		stationID:   stationID,
		class:       class,
		status:      status,
		pricePerKwh: pricePerKwh,
	}, nil
}

func ReconstructCharger(
	id, stationID uuid.UUID,
	class Class,
	status Status,
	pricePerKwh pricing.Money,
	maintenanceNote *string,
	createdAt, updatedAt time.Time,
) *Charger {
	return &Charger{
		id:              id,
		stationID:       stationID,
		class:           class,
		status:          status,
		pricePerKwh:     pricePerKwh,
		maintenanceNote: maintenanceNote,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// SetUnderMaintenance takes the charger out of service. The note may be empty
// and is only meaningful while the charger stays in this state.
func (c *Charger) SetUnderMaintenance(note string) {
	c.status = StatusUnderMaintenance
	c.maintenanceNote = &note
}

// SetAvailable returns the charger to service and unconditionally clears any
// maintenance note.
func (c *Charger) SetAvailable() {
	c.status = StatusAvailable
	c.maintenanceNote = nil
}

func (c *Charger) SetInUse() {
	c.status = StatusInUse
	c.maintenanceNote = nil
}

// IsBookable reports whether the charger admits new reservations. Only
// UNDER_MAINTENANCE blocks booking: an IN_USE charger can still be reserved
// for a future window, since the overlap check is the admission gate for time
// conflicts.
func (c *Charger) IsBookable() bool {
	return c.status != StatusUnderMaintenance
}

func (c *Charger) ID() uuid.UUID              { return c.id }
func (c *Charger) StationID() uuid.UUID       { return c.stationID }
func (c *Charger) Class() Class               { return c.class }
func (c *Charger) Status() Status             { return c.status }
func (c *Charger) PricePerKwh() pricing.Money { return c.pricePerKwh }
func (c *Charger) MaintenanceNote() *string   { return c.maintenanceNote }
func (c *Charger) CreatedAt() time.Time       { return c.createdAt }
func (c *Charger) UpdatedAt() time.Time       { return c.updatedAt }
