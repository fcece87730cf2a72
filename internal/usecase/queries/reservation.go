package queries

import (
	"context"

	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrQueryFailed         = errs.New("query failed")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ReservationView, error)
	ListByCharger(ctx context.Context, chargerID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*ReservationView, error)
	FindByChargerID(ctx context.Context, chargerID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByCharger(ctx context.Context, chargerID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByChargerID(ctx, chargerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
