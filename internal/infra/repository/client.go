package repository

import (
	"context"

	"evcharge/internal/domain/client"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/pgconv"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) commands.ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM clients
		WHERE id = $1`

	var (
		rowID     pgtype.UUID
		name      string
		email     string
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &name, &email, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}

	return client.ReconstructClient(
		uuid.UUID(rowID.Bytes),
		name,
		email,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	const query = `
		INSERT INTO clients (id, name, email)
		VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Name(),
		c.Email(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}
