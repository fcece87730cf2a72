package components

import (
	"evcharge/internal/infra/payment"
	"evcharge/internal/infra/readstore"
	"evcharge/internal/infra/repository"
	"evcharge/internal/pkg/config"
	"evcharge/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewClientRepository,
		repository.NewStationRepository,
		repository.NewChargerRepository,
		repository.NewReservationRepository,
		repository.NewDiscountRuleRepository,
		readstore.NewReservationReadStore,
		readstore.NewStationReadStore,
		readstore.NewPricingReadStore,
		NewCheckoutProvider,
	),
)

func NewCheckoutProvider(cfg config.Config) commands.CheckoutProvider {
	return payment.NewClient(cfg.Payment)
}
