package repository

import (
	"context"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chargerRepository struct {
	pool *pgxpool.Pool
}

func NewChargerRepository(pool *pgxpool.Pool) commands.ChargerRepository {
	return &chargerRepository{pool: pool}
}

func (r *chargerRepository) FindByID(ctx context.Context, id uuid.UUID) (*charger.Charger, error) {
	const query = `
		SELECT id, station_id, class, status, price_per_kwh_cents, maintenance_note, created_at, updated_at
		FROM chargers
		WHERE id = $1`

	var (
		rowID, stationID     pgtype.UUID
		class, status        string
		priceCents           int64
		note                 pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &stationID, &class, &status, &priceCents, &note, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charger not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find charger", err)
	}

	price, err := pricing.NewMoney(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid charger price in storage", err)
	}

	return charger.ReconstructCharger(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(stationID.Bytes),
		charger.Class(class),
		charger.Status(status),
		price,
		pgconv.StringPtrFromPgtype(note),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *chargerRepository) Create(ctx context.Context, c *charger.Charger) error {
	const query = `
		INSERT INTO chargers (id, station_id, class, status, price_per_kwh_cents, maintenance_note)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.StationID()),
		c.Class().String(),
		c.Status().String(),
		c.PricePerKwh().Cents(),
		pgconv.StringPtrToPgtype(c.MaintenanceNote()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create charger", err)
	}
	return nil
}

func (r *chargerRepository) Save(ctx context.Context, c *charger.Charger) error {
	const query = `
		UPDATE chargers
		SET status = $2, price_per_kwh_cents = $3, maintenance_note = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Status().String(),
		c.PricePerKwh().Cents(),
		pgconv.StringPtrToPgtype(c.MaintenanceNote()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save charger", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("charger not found", nil, infra.KindNotFound)
	}
	return nil
}
