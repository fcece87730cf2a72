//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"evcharge/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, startHour, startMin, endHour, endMin int) reservation.TimeWindow {
	t.Helper()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	w, err := reservation.NewTimeWindow(
		day.Add(time.Duration(startHour)*time.Hour+time.Duration(startMin)*time.Minute),
		day.Add(time.Duration(endHour)*time.Hour+time.Duration(endMin)*time.Minute),
	)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	now := time.Now()

	t.Run("start must precede end", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(now, now.Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(now, now)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})

	t.Run("duration is derived", func(t *testing.T) {
		w := mustWindow(t, 10, 0, 11, 30)
		assert.Equal(t, 90*time.Minute, w.Duration())
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b reservation.TimeWindow
		want bool
	}{
		{
			name: "partial overlap conflicts",
			a:    mustWindow(t, 10, 0, 11, 0),
			b:    mustWindow(t, 10, 30, 11, 30),
			want: true,
		},
		{
			name: "containment conflicts",
			a:    mustWindow(t, 9, 0, 12, 0),
			b:    mustWindow(t, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "identical windows conflict",
			a:    mustWindow(t, 10, 0, 11, 0),
			b:    mustWindow(t, 10, 0, 11, 0),
			want: true,
		},
		{
			name: "touching endpoints do not conflict",
			a:    mustWindow(t, 10, 0, 11, 0),
			b:    mustWindow(t, 11, 0, 12, 0),
			want: false,
		},
		{
			name: "disjoint windows do not conflict",
			a:    mustWindow(t, 8, 0, 9, 0),
			b:    mustWindow(t, 10, 0, 11, 0),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestBatteryLevel(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		errIs error
	}{
		{name: "zero is valid", value: 0},
		{name: "full is valid", value: 100},
		{name: "negative rejected", value: -0.1, errIs: reservation.ErrInvalidBatteryLevel},
		{name: "above full rejected", value: 100.1, errIs: reservation.ErrInvalidBatteryLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := reservation.NewBatteryLevel(tt.value)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, level.Value())
		})
	}
}

func TestEnergyKwh(t *testing.T) {
	t.Run("negative energy rejected", func(t *testing.T) {
		_, err := reservation.NewEnergyKwh(-1)
		assert.ErrorIs(t, err, reservation.ErrNegativeEnergy)
	})

	t.Run("zero energy allowed", func(t *testing.T) {
		e, err := reservation.NewEnergyKwh(0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, e.Value())
	})
}
