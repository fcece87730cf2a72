package readstore

import (
	"context"

	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stationReadStore struct {
	pool *pgxpool.Pool
}

func NewStationReadStore(pool *pgxpool.Pool) queries.StationReadStore {
	return &stationReadStore{pool: pool}
}

func (s *stationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StationView, error) {
	const query = `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM stations
		WHERE id = $1`

	view, err := scanStationView(s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("station not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find station", err)
	}
	return view, nil
}

func (s *stationReadStore) FindAll(ctx context.Context) ([]*queries.StationView, error) {
	const query = `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM stations
		ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stations", err)
	}
	defer rows.Close()

	views := make([]*queries.StationView, 0)
	for rows.Next() {
		view, err := scanStationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan station", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list stations", err)
	}
	return views, nil
}

func (s *stationReadStore) FindCharger(ctx context.Context, chargerID uuid.UUID) (*queries.ChargerView, error) {
	const query = `
		SELECT id, station_id, class, status, price_per_kwh_cents, maintenance_note, created_at, updated_at
		FROM chargers
		WHERE id = $1`

	view, err := scanChargerView(s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(chargerID)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charger not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find charger", err)
	}
	return view, nil
}

func (s *stationReadStore) FindChargersByStation(ctx context.Context, stationID uuid.UUID) ([]*queries.ChargerView, error) {
	const query = `
		SELECT id, station_id, class, status, price_per_kwh_cents, maintenance_note, created_at, updated_at
		FROM chargers
		WHERE station_id = $1
		ORDER BY class, created_at`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(stationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chargers", err)
	}
	defer rows.Close()

	views := make([]*queries.ChargerView, 0)
	for rows.Next() {
		view, err := scanChargerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan charger", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list chargers", err)
	}
	return views, nil
}

func (s *stationReadStore) FindDiscountRulesByStation(ctx context.Context, stationID uuid.UUID) ([]*queries.DiscountRuleView, error) {
	const query = `
		SELECT id, station_id, charger_class, day_of_week, start_hour, end_hour, percent, active
		FROM discount_rules
		WHERE station_id = $1
		ORDER BY charger_class, day_of_week, start_hour`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(stationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	defer rows.Close()

	views := make([]*queries.DiscountRuleView, 0)
	for rows.Next() {
		var (
			id, rowStationID              pgtype.UUID
			chargerClass                  string
			dayOfWeek, startHour, endHour int
			percent                       float64
			active                        bool
		)
		if err := rows.Scan(&id, &rowStationID, &chargerClass, &dayOfWeek, &startHour, &endHour, &percent, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rule", err)
		}
		views = append(views, &queries.DiscountRuleView{
			ID:           uuid.UUID(id.Bytes),
			StationID:    uuid.UUID(rowStationID.Bytes),
			ChargerClass: chargerClass,
			DayOfWeek:    dayOfWeek,
			StartHour:    startHour,
			EndHour:      endHour,
			Percent:      percent,
			Active:       active,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	return views, nil
}

func scanStationView(row pgx.Row) (*queries.StationView, error) {
	var (
		id                   pgtype.UUID
		name, address        string
		latitude, longitude  float64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &name, &address, &latitude, &longitude, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.StationView{
		ID:        uuid.UUID(id.Bytes),
		Name:      name,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func scanChargerView(row pgx.Row) (*queries.ChargerView, error) {
	var (
		id, stationID        pgtype.UUID
		class, status        string
		priceCents           int64
		note                 pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &stationID, &class, &status, &priceCents, &note, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.ChargerView{
		ID:              uuid.UUID(id.Bytes),
		StationID:       uuid.UUID(stationID.Bytes),
		Class:           class,
		Status:          status,
		PricePerKwh:     float64(priceCents) / 100.0,
		MaintenanceNote: pgconv.StringPtrFromPgtype(note),
		CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:       pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
