//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"evcharge/internal/pkg/clock"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/shared"
	"evcharge/tests/common/builder"
	repositorymock "evcharge/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	reservationRepo *repositorymock.MockReservationRepository
	provider        *repositorymock.MockCheckoutProvider
}

func newCheckoutCommands(t *testing.T) (commands.CheckoutCommands, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		reservationRepo: repositorymock.NewMockReservationRepository(ctrl),
		provider:        repositorymock.NewMockCheckoutProvider(ctrl),
	}
	reservationCommands := commands.NewReservationCommands(
		m.reservationRepo,
		repositorymock.NewMockClientRepository(ctrl),
		repositorymock.NewMockChargerRepository(ctrl),
		repositorymock.NewMockDiscountRuleRepository(ctrl),
		shared.NewChargerLocks(),
		clock.NewMockClock(time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)),
	)
	uc := commands.NewCheckoutCommands(m.reservationRepo, m.provider, reservationCommands)
	return uc, m
}

func TestCheckoutStart(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a session for the estimated cost", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		m.provider.EXPECT().CreateSession(gomock.Any(), res.ID(), res.EstimatedCost()).
			Return("cs_test_123", nil)

		sessionID, err := uc.Start(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, "cs_test_123", sessionID)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		id := uuid.New()
		m.reservationRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := uc.Start(ctx, id)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("already paid reservation is refused", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		res.MarkPaid()

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = uc.Start(ctx, res.ID())
		assert.ErrorIs(t, err, commands.ErrAlreadyPaid)
	})

	t.Run("cancelled reservation has nothing to pay", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Cancel())

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = uc.Start(ctx, res.ID())
		assert.ErrorIs(t, err, commands.ErrNotPayable)
	})

	t.Run("zero-cost reservation has nothing to pay", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.EstimatedKwh = 0
				b.EstimatedCost = 0
			}).
			BuildDomain()
		require.NoError(t, err)

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err = uc.Start(ctx, res.ID())
		assert.ErrorIs(t, err, commands.ErrNotPayable)
	})

	t.Run("completed reservation is still payable", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Complete(res.Window().Start().Add(30*time.Minute)))

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		m.provider.EXPECT().CreateSession(gomock.Any(), res.ID(), res.EstimatedCost()).
			Return("cs_test_456", nil)

		_, err = uc.Start(ctx, res.ID())
		assert.NoError(t, err)
	})

	t.Run("provider failure", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		m.provider.EXPECT().CreateSession(gomock.Any(), res.ID(), res.EstimatedCost()).
			Return("", errors.New("gateway timeout"))

		_, err = uc.Start(ctx, res.ID())
		assert.ErrorIs(t, err, commands.ErrPaymentProvider)
	})
}

func TestCheckoutConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("paid session marks the reservation paid", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		m.provider.EXPECT().RetrieveSession(gomock.Any(), "cs_test_123").
			Return(&commands.CheckoutSession{ID: "cs_test_123", ReservationID: res.ID(), Paid: true}, nil)
		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		m.reservationRepo.EXPECT().Save(gomock.Any(), res).Return(nil)

		got, err := uc.Confirm(ctx, "cs_test_123")
		require.NoError(t, err)
		assert.True(t, got.Paid())
	})

	t.Run("unpaid session is rejected without a write", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)

		m.provider.EXPECT().RetrieveSession(gomock.Any(), "cs_test_123").
			Return(&commands.CheckoutSession{ID: "cs_test_123", ReservationID: uuid.New(), Paid: false}, nil)

		_, err := uc.Confirm(ctx, "cs_test_123")
		assert.ErrorIs(t, err, commands.ErrPaymentNotConfirmed)
	})

	t.Run("replayed confirmation succeeds without a write", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		res.MarkPaid()

		m.provider.EXPECT().RetrieveSession(gomock.Any(), "cs_test_123").
			Return(&commands.CheckoutSession{ID: "cs_test_123", ReservationID: res.ID(), Paid: true}, nil)
		m.reservationRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		got, err := uc.Confirm(ctx, "cs_test_123")
		require.NoError(t, err)
		assert.True(t, got.Paid())
	})

	t.Run("provider failure", func(t *testing.T) {
		uc, m := newCheckoutCommands(t)

		m.provider.EXPECT().RetrieveSession(gomock.Any(), "cs_test_123").
			Return(nil, errors.New("connection refused"))

		_, err := uc.Confirm(ctx, "cs_test_123")
		assert.ErrorIs(t, err, commands.ErrPaymentProvider)
	})
}
