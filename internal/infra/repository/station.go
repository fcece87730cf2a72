package repository

import (
	"context"

	"evcharge/internal/domain/station"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stationRepository struct {
	pool *pgxpool.Pool
}

func NewStationRepository(pool *pgxpool.Pool) commands.StationRepository {
	return &stationRepository{pool: pool}
}

func (r *stationRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Station, error) {
	const query = `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM stations
		WHERE id = $1`

	var (
		rowID                pgtype.UUID
		name, address        string
		latitude, longitude  float64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &name, &address, &latitude, &longitude, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("station not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find station", err)
	}

	return station.ReconstructStation(
		uuid.UUID(rowID.Bytes),
		name,
		address,
		latitude,
		longitude,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *stationRepository) Create(ctx context.Context, s *station.Station) error {
	const query = `
		INSERT INTO stations (id, name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(s.ID()),
		s.Name(),
		s.Address(),
		s.Latitude(),
		s.Longitude(),
	)
	if err != nil {
		// the unique index on (latitude, longitude) classifies to DUPLICATE_KEY
		return infra.WrapRepoErr("failed to create station", err)
	}
	return nil
}
