package queries

import (
	"context"

	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound = errs.New("station not found")
	ErrChargerNotFound = errs.New("charger not found")
)

type StationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	List(ctx context.Context) ([]*StationView, error)
	GetCharger(ctx context.Context, chargerID uuid.UUID) (*ChargerView, error)
	ListChargers(ctx context.Context, stationID uuid.UUID) ([]*ChargerView, error)
	ListDiscountRules(ctx context.Context, stationID uuid.UUID) ([]*DiscountRuleView, error)
}

type StationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	FindAll(ctx context.Context) ([]*StationView, error)
	FindCharger(ctx context.Context, chargerID uuid.UUID) (*ChargerView, error)
	FindChargersByStation(ctx context.Context, stationID uuid.UUID) ([]*ChargerView, error)
	FindDiscountRulesByStation(ctx context.Context, stationID uuid.UUID) ([]*DiscountRuleView, error)
}

type stationQueriesImpl struct {
	store StationReadStore
}

func NewStationQueries(store StationReadStore) StationQueries {
	return &stationQueriesImpl{store: store}
}

func (q *stationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *stationQueriesImpl) List(ctx context.Context) ([]*StationView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *stationQueriesImpl) GetCharger(ctx context.Context, chargerID uuid.UUID) (*ChargerView, error) {
	view, err := q.store.FindCharger(ctx, chargerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrChargerNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *stationQueriesImpl) ListChargers(ctx context.Context, stationID uuid.UUID) ([]*ChargerView, error) {
	views, err := q.store.FindChargersByStation(ctx, stationID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *stationQueriesImpl) ListDiscountRules(ctx context.Context, stationID uuid.UUID) ([]*DiscountRuleView, error) {
	views, err := q.store.FindDiscountRulesByStation(ctx, stationID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
