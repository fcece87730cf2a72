package repository

import (
	"context"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/domain/reservation"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) commands.ReservationRepository {
	return &reservationRepository{pool: pool}
}

const reservationColumns = `id, client_id, charger_id, start_time, end_time,
	battery_level_start, estimated_kwh, estimated_cost_cents, status, paid, created_at, updated_at`

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *reservationRepository) FindActiveByCharger(ctx context.Context, chargerID uuid.UUID) ([]*reservation.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE charger_id = $1 AND status = 'ACTIVE'
		ORDER BY start_time`

	rows, err := r.pool.Query(ctx, query, pgconv.UUIDToPgtype(chargerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return result, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (
			id, client_id, charger_id, start_time, end_time,
			battery_level_start, estimated_kwh, estimated_cost_cents, status, paid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.ClientID()),
		pgconv.UUIDToPgtype(res.ChargerID()),
		pgconv.TimeToPgtype(res.Window().Start()),
		pgconv.TimeToPgtype(res.Window().End()),
		res.BatteryLevelStart().Value(),
		res.EstimatedKwh().Value(),
		res.EstimatedCost().Cents(),
		string(res.Status()),
		res.Paid(),
	)
	if err != nil {
		// the exclusion constraint on (charger_id, window) classifies to CONFLICT
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *reservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET end_time = $2, status = $3, paid = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.TimeToPgtype(res.Window().End()),
		string(res.Status()),
		res.Paid(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, clientID, chargerID pgtype.UUID
		startTime, endTime      pgtype.Timestamptz
		batteryLevel            float64
		estimatedKwh            float64
		costCents               int64
		status                  string
		paid                    bool
		createdAt, updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &clientID, &chargerID, &startTime, &endTime,
		&batteryLevel, &estimatedKwh, &costCents, &status, &paid, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window, err := reservation.NewTimeWindow(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
	if err != nil {
		return nil, err
	}
	battery, err := reservation.NewBatteryLevel(batteryLevel)
	if err != nil {
		return nil, err
	}
	energy, err := reservation.NewEnergyKwh(estimatedKwh)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.NewMoney(costCents)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		uuid.UUID(id.Bytes),
		uuid.UUID(clientID.Bytes),
		uuid.UUID(chargerID.Bytes),
		window,
		battery,
		energy,
		cost,
		reservation.Status(status),
		paid,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
