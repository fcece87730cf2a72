//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/client"
	"evcharge/internal/domain/pricing"
	"evcharge/internal/domain/reservation"
	"evcharge/internal/pkg/clock"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/shared"
	"evcharge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the admission race test. The store itself does not
// serialize the read-check-insert sequence; only the charger locks do, which
// is exactly the property under test.

type fakeReservationStore struct {
	mu           sync.Mutex
	reservations []*reservation.Reservation
}

func (s *fakeReservationStore) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, notFound()
}

func (s *fakeReservationStore) FindActiveByCharger(_ context.Context, chargerID uuid.UUID) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.ChargerID() == chargerID && r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) Create(_ context.Context, r *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
	return nil
}

func (s *fakeReservationStore) Save(_ context.Context, _ *reservation.Reservation) error {
	return nil
}

type fakeClientRepo struct{}

func (fakeClientRepo) FindByID(_ context.Context, _ uuid.UUID) (*client.Client, error) {
	return nil, nil
}
func (fakeClientRepo) Create(_ context.Context, _ *client.Client) error { return nil }

type fakeChargerRepo struct {
	charger *charger.Charger
}

func (f fakeChargerRepo) FindByID(_ context.Context, _ uuid.UUID) (*charger.Charger, error) {
	return f.charger, nil
}
func (f fakeChargerRepo) Create(_ context.Context, _ *charger.Charger) error { return nil }
func (f fakeChargerRepo) Save(_ context.Context, _ *charger.Charger) error   { return nil }

type fakeRuleRepo struct{}

func (fakeRuleRepo) FindByID(_ context.Context, _ uuid.UUID) (*pricing.Rule, error) {
	return nil, notFound()
}
func (fakeRuleRepo) FindActiveFor(_ context.Context, _ uuid.UUID, _ string) ([]*pricing.Rule, error) {
	return nil, nil
}
func (fakeRuleRepo) Create(_ context.Context, _ *pricing.Rule) error { return nil }
func (fakeRuleRepo) Save(_ context.Context, _ *pricing.Rule) error   { return nil }
func (fakeRuleRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }

var _ commands.ReservationRepository = (*fakeReservationStore)(nil)

func TestReservationCreateConcurrency(t *testing.T) {
	chg, err := builder.NewChargerBuilder().BuildDomain()
	require.NoError(t, err)

	store := &fakeReservationStore{}
	uc := commands.NewReservationCommands(
		store,
		fakeClientRepo{},
		fakeChargerRepo{charger: chg},
		fakeRuleRepo{},
		shared.NewChargerLocks(),
		clock.NewMockClock(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)),
	)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	const slots = 4
	const contenders = 16

	var wg sync.WaitGroup
	results := make(chan error, slots*contenders)

	for slot := 0; slot < slots; slot++ {
		start := day.Add(time.Duration(10+slot) * time.Hour)
		for i := 0; i < contenders; i++ {
			wg.Add(1)
			go func(start time.Time) {
				defer wg.Done()
				cmd := builder.NewReservationBuilder().
					With(func(b *builder.ReservationBuilder) {
						b.ChargerID = chg.ID()
						b.StartTime = start
						b.EndTime = start.Add(time.Hour)
					}).
					BuildCommand()
				_, err := uc.Create(context.Background(), cmd)
				results <- err
			}(start)
		}
	}

	wg.Wait()
	close(results)

	var admitted, refused int
	for err := range results {
		switch {
		case err == nil:
			admitted++
		case assert.ErrorIs(t, err, commands.ErrTimeWindowConflict):
			refused++
		}
	}

	// Exactly one contender per slot wins; everyone else hits the overlap.
	assert.Equal(t, slots, admitted)
	assert.Equal(t, slots*(contenders-1), refused)

	// The store must never hold two overlapping active windows.
	for i, a := range store.reservations {
		for _, b := range store.reservations[i+1:] {
			assert.False(t, a.Window().Overlaps(b.Window()),
				"overlapping windows admitted: %v and %v", a.Window(), b.Window())
		}
	}
}
