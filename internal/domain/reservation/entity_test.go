//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"evcharge/internal/domain/reservation"
	"evcharge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	res := buildReservation(t)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, reservation.StatusActive, res.Status())
	assert.True(t, res.IsActive())
	assert.False(t, res.Paid())
	assert.Equal(t, int64(600), res.EstimatedCost().Cents())
}

func TestReservationCancel(t *testing.T) {
	t.Run("active reservation cancels", func(t *testing.T) {
		res := buildReservation(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("second cancel fails", func(t *testing.T) {
		res := buildReservation(t)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), reservation.ErrNotActive)
	})

	t.Run("completed reservation cannot be cancelled", func(t *testing.T) {
		res := buildReservation(t)
		require.NoError(t, res.Complete(res.Window().Start().Add(30*time.Minute)))
		assert.ErrorIs(t, res.Cancel(), reservation.ErrNotActive)
	})
}

func TestReservationComplete(t *testing.T) {
	t.Run("completion replaces the window end", func(t *testing.T) {
		res := buildReservation(t)
		at := res.Window().Start().Add(45 * time.Minute)

		require.NoError(t, res.Complete(at))
		assert.Equal(t, reservation.StatusCompleted, res.Status())
		assert.Equal(t, at, res.Window().End())
	})

	t.Run("completion before start is rejected", func(t *testing.T) {
		res := buildReservation(t)
		err := res.Complete(res.Window().Start().Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrInvalidEndTime)
		assert.True(t, res.IsActive())
	})

	t.Run("cancelled reservation cannot complete", func(t *testing.T) {
		res := buildReservation(t)
		require.NoError(t, res.Cancel())
		err := res.Complete(res.Window().Start().Add(time.Minute))
		assert.ErrorIs(t, err, reservation.ErrNotActive)
	})
}

func TestReservationMarkPaid(t *testing.T) {
	res := buildReservation(t)

	assert.True(t, res.MarkPaid(), "first confirmation flips the flag")
	assert.True(t, res.Paid())
	assert.False(t, res.MarkPaid(), "replayed confirmation is a no-op")
	assert.True(t, res.Paid())
}

func TestReservationBlocks(t *testing.T) {
	overlapping := func(t *testing.T, res *reservation.Reservation) reservation.TimeWindow {
		t.Helper()
		w, err := reservation.NewTimeWindow(
			res.Window().Start().Add(30*time.Minute),
			res.Window().End().Add(30*time.Minute),
		)
		require.NoError(t, err)
		return w
	}

	t.Run("active reservation blocks an overlapping window", func(t *testing.T) {
		res := buildReservation(t)
		assert.True(t, res.Blocks(overlapping(t, res)))
	})

	t.Run("touching window is admitted", func(t *testing.T) {
		res := buildReservation(t)
		w, err := reservation.NewTimeWindow(res.Window().End(), res.Window().End().Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, res.Blocks(w))
	})

	t.Run("cancelled reservation frees its slot", func(t *testing.T) {
		res := buildReservation(t)
		w := overlapping(t, res)
		require.NoError(t, res.Cancel())
		assert.False(t, res.Blocks(w))
	})

	t.Run("completed reservation frees its slot", func(t *testing.T) {
		res := buildReservation(t)
		w := overlapping(t, res)
		require.NoError(t, res.Complete(res.Window().Start().Add(30*time.Minute)))
		assert.False(t, res.Blocks(w))
	})
}
