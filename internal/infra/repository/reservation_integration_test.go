//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/client"
	"evcharge/internal/domain/reservation"
	"evcharge/internal/domain/station"
	"evcharge/internal/infra"
	"evcharge/internal/infra/repository"
	"evcharge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtures struct {
	station *station.Station
	client  *client.Client
	charger *charger.Charger
}

// seedFixtures persists one station, one client and one charger so that
// reservation rows satisfy their foreign keys.
func seedFixtures(t *testing.T, pool *pgxpool.Pool) fixtures {
	t.Helper()
	ctx := context.Background()

	st, err := builder.NewStationBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repository.NewStationRepository(pool).Create(ctx, st))

	cl, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repository.NewClientRepository(pool).Create(ctx, cl))

	chg, err := builder.NewChargerBuilder().
		With(func(b *builder.ChargerBuilder) { b.StationID = st.ID() }).
		BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repository.NewChargerRepository(pool).Create(ctx, chg))

	return fixtures{station: st, client: cl, charger: chg}
}

func buildStoredReservation(t *testing.T, f fixtures, mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
	t.Helper()
	b := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.ClientID = f.client.ID()
			b.ChargerID = f.charger.ID()
		})
	if mutate != nil {
		b.With(mutate)
	}
	res, err := b.BuildDomain()
	require.NoError(t, err)
	return res
}

func TestReservationRepository_Create(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := repository.NewReservationRepository(pool)

	t.Run("round-trips a reservation", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		res := buildStoredReservation(t, f, nil)

		require.NoError(t, repo.Create(ctx, res))

		got, err := repo.FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, res.ID(), got.ID())
		assert.Equal(t, res.Window().Start().UTC(), got.Window().Start().UTC())
		assert.Equal(t, res.EstimatedCost().Cents(), got.EstimatedCost().Cents())
		assert.Equal(t, reservation.StatusActive, got.Status())
		assert.False(t, got.Paid())
	})

	t.Run("overlapping active window violates the exclusion constraint", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		first := buildStoredReservation(t, f, nil)
		require.NoError(t, repo.Create(ctx, first))

		overlapping := buildStoredReservation(t, f, func(b *builder.ReservationBuilder) {
			b.StartTime = first.Window().Start().Add(30 * time.Minute)
			b.EndTime = first.Window().End().Add(30 * time.Minute)
		})

		err := repo.Create(ctx, overlapping)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict), "expected CONFLICT, got: %v", err)
	})

	t.Run("back-to-back windows coexist", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		first := buildStoredReservation(t, f, nil)
		require.NoError(t, repo.Create(ctx, first))

		adjacent := buildStoredReservation(t, f, func(b *builder.ReservationBuilder) {
			b.StartTime = first.Window().End()
			b.EndTime = first.Window().End().Add(time.Hour)
		})

		assert.NoError(t, repo.Create(ctx, adjacent))
	})

	t.Run("cancelled reservation frees its window", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		first := buildStoredReservation(t, f, nil)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, first.Cancel())
		require.NoError(t, repo.Save(ctx, first))

		overlapping := buildStoredReservation(t, f, func(b *builder.ReservationBuilder) {
			b.StartTime = first.Window().Start().Add(30 * time.Minute)
			b.EndTime = first.Window().Start().Add(90 * time.Minute)
		})

		assert.NoError(t, repo.Create(ctx, overlapping))
	})

	t.Run("unknown foreign keys are rejected", func(t *testing.T) {
		truncateAll(t, pool)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = repo.Create(ctx, res)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestReservationRepository_FindActiveByCharger(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := repository.NewReservationRepository(pool)

	truncateAll(t, pool)
	f := seedFixtures(t, pool)

	active := buildStoredReservation(t, f, nil)
	require.NoError(t, repo.Create(ctx, active))

	cancelled := buildStoredReservation(t, f, func(b *builder.ReservationBuilder) {
		b.StartTime = active.Window().End()
		b.EndTime = active.Window().End().Add(time.Hour)
	})
	require.NoError(t, repo.Create(ctx, cancelled))
	require.NoError(t, cancelled.Cancel())
	require.NoError(t, repo.Save(ctx, cancelled))

	got, err := repo.FindActiveByCharger(ctx, f.charger.ID())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID(), got[0].ID())
}

func TestReservationRepository_Save(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := repository.NewReservationRepository(pool)

	t.Run("persists status, end time and paid flag", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		res := buildStoredReservation(t, f, nil)
		require.NoError(t, repo.Create(ctx, res))

		completedAt := res.Window().Start().Add(40 * time.Minute)
		require.NoError(t, res.Complete(completedAt))
		res.MarkPaid()
		require.NoError(t, repo.Save(ctx, res))

		got, err := repo.FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, got.Status())
		assert.Equal(t, completedAt.UTC(), got.Window().End().UTC())
		assert.True(t, got.Paid())
	})

	t.Run("unknown reservation is NOT_FOUND", func(t *testing.T) {
		truncateAll(t, pool)
		f := seedFixtures(t, pool)
		res := buildStoredReservation(t, f, nil)

		err := repo.Save(ctx, res)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_FindByID_NotFound(t *testing.T) {
	pool := setupPool(t)

	_, err := repository.NewReservationRepository(pool).FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestClientRepository_DuplicateEmail(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := repository.NewClientRepository(pool)

	truncateAll(t, pool)
	first, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := builder.NewClientBuilder().
		With(func(b *builder.ClientBuilder) { b.Name = "Another Ada" }).
		BuildDomain()
	require.NoError(t, err)

	err = repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
