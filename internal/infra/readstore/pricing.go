package readstore

import (
	"context"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pricingReadStore struct {
	pool *pgxpool.Pool
}

func NewPricingReadStore(pool *pgxpool.Pool) queries.PricingReadStore {
	return &pricingReadStore{pool: pool}
}

// FindBasePrice picks the cheapest charger of the class so a quote is never
// above what some charger at the station actually charges.
func (s *pricingReadStore) FindBasePrice(ctx context.Context, stationID uuid.UUID, chargerClass string) (int64, error) {
	const query = `
		SELECT min(price_per_kwh_cents)
		FROM chargers
		WHERE station_id = $1 AND class = $2`

	var cents pgtype.Int8
	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(stationID), chargerClass).Scan(&cents)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to find base price", err)
	}
	if !cents.Valid {
		return 0, infra.WrapRepoErr("no charger of class at station", nil, infra.KindNotFound)
	}
	return cents.Int64, nil
}

func (s *pricingReadStore) FindActiveRules(ctx context.Context, stationID uuid.UUID, chargerClass string) ([]*pricing.Rule, error) {
	const query = `
		SELECT id, station_id, charger_class, day_of_week, start_hour, end_hour, percent, active
		FROM discount_rules
		WHERE station_id = $1 AND charger_class = $2 AND active`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(stationID), chargerClass)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		var (
			id, rowStationID              pgtype.UUID
			class                         string
			dayOfWeek, startHour, endHour int
			percent                       float64
			active                        bool
		)
		if err := rows.Scan(&id, &rowStationID, &class, &dayOfWeek, &startHour, &endHour, &percent, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rule", err)
		}
		rules = append(rules, pricing.ReconstructRule(
			uuid.UUID(id.Bytes),
			uuid.UUID(rowStationID.Bytes),
			class,
			dayOfWeek,
			startHour,
			endHour,
			percent,
			active,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	return rules, nil
}
