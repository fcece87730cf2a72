package commands

import (
	"context"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/client"
	"evcharge/internal/domain/pricing"
	"evcharge/internal/domain/reservation"
	"evcharge/internal/domain/station"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository and
// surface failures as infra.RepositoryError so commands can branch on kinds.

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	Create(ctx context.Context, c *client.Client) error
}

type StationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*station.Station, error)
	Create(ctx context.Context, s *station.Station) error
}

type ChargerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*charger.Charger, error)
	Create(ctx context.Context, c *charger.Charger) error
	Save(ctx context.Context, c *charger.Charger) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindActiveByCharger returns the ACTIVE reservations for a charger, the
	// set the admission overlap check runs against.
	FindActiveByCharger(ctx context.Context, chargerID uuid.UUID) ([]*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Save(ctx context.Context, r *reservation.Reservation) error
}

type DiscountRuleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error)
	// FindActiveFor returns the active rules for a station and charger class;
	// window matching against the booking instant happens in the domain.
	FindActiveFor(ctx context.Context, stationID uuid.UUID, chargerClass string) ([]*pricing.Rule, error)
	Create(ctx context.Context, r *pricing.Rule) error
	Save(ctx context.Context, r *pricing.Rule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CheckoutSession is the provider's view of a payable session. The engine
// never touches money movement; it only reads the paid outcome.
type CheckoutSession struct {
	ID            string
	ReservationID uuid.UUID
	Paid          bool
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, reservationID uuid.UUID, cost pricing.Money) (string, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
