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

type reservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) queries.ReservationReadStore {
	return &reservationReadStore{pool: pool}
}

// reservationViewQuery joins through chargers to stations so a view carries
// where the session happens, not just foreign keys.
const reservationViewQuery = `
	SELECT
		r.id, r.client_id, cl.email, r.charger_id, ch.station_id, st.name, ch.class,
		r.start_time, r.end_time, r.battery_level_start, r.estimated_kwh,
		r.estimated_cost_cents, r.status, r.paid, r.created_at, r.updated_at
	FROM reservations r
	JOIN clients cl ON cl.id = r.client_id
	JOIN chargers ch ON ch.id = r.charger_id
	JOIN stations st ON st.id = ch.station_id`

func (s *reservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.id = $1`

	view, err := scanReservationView(s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *reservationReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.client_id = $1 ORDER BY r.start_time DESC`
	return s.list(ctx, query, pgconv.UUIDToPgtype(clientID))
}

func (s *reservationReadStore) FindByChargerID(ctx context.Context, chargerID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.charger_id = $1 ORDER BY r.start_time DESC`
	return s.list(ctx, query, pgconv.UUIDToPgtype(chargerID))
}

func (s *reservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		id, clientID, chargerID, stationID pgtype.UUID
		clientEmail, stationName           string
		chargerClass, status               string
		startTime, endTime                 pgtype.Timestamptz
		batteryLevel, estimatedKwh         float64
		costCents                          int64
		paid                               bool
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &clientID, &clientEmail, &chargerID, &stationID, &stationName, &chargerClass,
		&startTime, &endTime, &batteryLevel, &estimatedKwh,
		&costCents, &status, &paid, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:                uuid.UUID(id.Bytes),
		ClientID:          uuid.UUID(clientID.Bytes),
		ClientEmail:       clientEmail,
		ChargerID:         uuid.UUID(chargerID.Bytes),
		StationID:         uuid.UUID(stationID.Bytes),
		StationName:       stationName,
		ChargerClass:      chargerClass,
		StartTime:         pgconv.TimeFromPgtype(startTime),
		EndTime:           pgconv.TimeFromPgtype(endTime),
		BatteryLevelStart: batteryLevel,
		EstimatedKwh:      estimatedKwh,
		EstimatedCost:     float64(costCents) / 100.0,
		Status:            status,
		Paid:              paid,
		CreatedAt:         pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:         pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
