package queries

import (
	"context"
	"time"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoChargerOfClass = errs.New("station has no charger of this class")

type PricingQueries interface {
	// Quote resolves the station's base price for the charger class and
	// applies the discount in force at the given instant.
	Quote(ctx context.Context, stationID uuid.UUID, chargerClass string, at time.Time) (*PriceQuoteView, error)
}

type PricingReadStore interface {
	// FindBasePrice returns the per-kWh base price (cents) of the station's
	// chargers of the given class.
	FindBasePrice(ctx context.Context, stationID uuid.UUID, chargerClass string) (int64, error)
	FindActiveRules(ctx context.Context, stationID uuid.UUID, chargerClass string) ([]*pricing.Rule, error)
}

type pricingQueriesImpl struct {
	store PricingReadStore
}

func NewPricingQueries(store PricingReadStore) PricingQueries {
	return &pricingQueriesImpl{store: store}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, stationID uuid.UUID, chargerClass string, at time.Time) (*PriceQuoteView, error) {
	baseCents, err := q.store.FindBasePrice(ctx, stationID, chargerClass)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoChargerOfClass
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	base, err := pricing.NewMoney(baseCents)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	rules, err := q.store.FindActiveRules(ctx, stationID, chargerClass)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	quote := pricing.UnitPriceFor(base, rules, at)

	return &PriceQuoteView{
		StationID:       stationID,
		ChargerClass:    chargerClass,
		At:              at,
		BasePricePerKwh: base.Amount(),
		UnitPricePerKwh: quote.UnitPrice,
		DiscountPercent: quote.DiscountPercent,
	}, nil
}
