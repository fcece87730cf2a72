package commands

import (
	"context"

	"evcharge/internal/domain/reservation"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaid         = errs.New("reservation is already paid")
	ErrNotPayable          = errs.New("reservation cannot be paid")
	ErrPaymentProvider     = errs.New("payment provider failure")
	ErrPaymentNotConfirmed = errs.New("payment not completed")
)

type CheckoutCommands interface {
	// Start opens a payable session at the provider for the reservation's
	// estimated cost and returns the opaque session ID.
	Start(ctx context.Context, reservationID uuid.UUID) (string, error)
	// Confirm verifies a session with the provider and, on success, marks
	// the reservation paid. Confirming an already-paid reservation is a
	// no-op success.
	Confirm(ctx context.Context, sessionID string) (*reservation.Reservation, error)
}

type checkoutCommandsImpl struct {
	reservationRepo     ReservationRepository
	provider            CheckoutProvider
	reservationCommands ReservationCommands
}

func NewCheckoutCommands(
	reservationRepo ReservationRepository,
	provider CheckoutProvider,
	reservationCommands ReservationCommands,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		reservationRepo:     reservationRepo,
		provider:            provider,
		reservationCommands: reservationCommands,
	}
}

func (u *checkoutCommandsImpl) Start(ctx context.Context, reservationID uuid.UUID) (string, error) {
	res, err := u.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrReservationNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if res.Paid() {
		return "", ErrAlreadyPaid
	}
	// Only a booked or finished session has something to pay for.
	if res.Status() != reservation.StatusActive && res.Status() != reservation.StatusCompleted {
		return "", ErrNotPayable
	}
	if res.EstimatedCost().IsZero() {
		return "", ErrNotPayable
	}

	sessionID, err := u.provider.CreateSession(ctx, res.ID(), res.EstimatedCost())
	if err != nil {
		return "", errs.Mark(err, ErrPaymentProvider)
	}
	return sessionID, nil
}

func (u *checkoutCommandsImpl) Confirm(ctx context.Context, sessionID string) (*reservation.Reservation, error) {
	session, err := u.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}
	if !session.Paid {
		return nil, ErrPaymentNotConfirmed
	}

	return u.reservationCommands.MarkPaid(ctx, session.ReservationID)
}
