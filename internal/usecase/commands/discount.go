package commands

import (
	"context"

	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/pricing"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDiscountRuleNotFound = errs.New("discount rule not found")
	ErrInvalidDiscountRule  = errs.New("invalid discount rule")
)

// Discount rule payloads are strongly typed and validated before they reach
// the domain; the rule window fields are never accepted as raw maps.
type CreateDiscountRuleCommand struct {
	StationID    uuid.UUID
	ChargerClass string
	DayOfWeek    int
	StartHour    int
	EndHour      int
	Percent      float64
	Active       bool
}

type UpdateDiscountRuleCommand struct {
	DayOfWeek int
	StartHour int
	EndHour   int
	Percent   float64
	Active    bool
}

type DiscountCommands interface {
	Create(ctx context.Context, cmd CreateDiscountRuleCommand) (*pricing.Rule, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateDiscountRuleCommand) (*pricing.Rule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountCommandsImpl struct {
	ruleRepo    DiscountRuleRepository
	stationRepo StationRepository
}

func NewDiscountCommands(ruleRepo DiscountRuleRepository, stationRepo StationRepository) DiscountCommands {
	return &discountCommandsImpl{
		ruleRepo:    ruleRepo,
		stationRepo: stationRepo,
	}
}

func (u *discountCommandsImpl) Create(ctx context.Context, cmd CreateDiscountRuleCommand) (*pricing.Rule, error) {
	if _, err := u.stationRepo.FindByID(ctx, cmd.StationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !charger.Class(cmd.ChargerClass).IsValid() {
		return nil, ErrInvalidChargerClass
	}

	rule, err := pricing.NewRule(cmd.StationID, cmd.ChargerClass, cmd.DayOfWeek, cmd.StartHour, cmd.EndHour, cmd.Percent, cmd.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDiscountRule)
	}

	if err := u.ruleRepo.Create(ctx, rule); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rule, nil
}

func (u *discountCommandsImpl) Update(ctx context.Context, id uuid.UUID, cmd UpdateDiscountRuleCommand) (*pricing.Rule, error) {
	existing, err := u.ruleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountRuleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Rules are small immutable values; an update is a validated rebuild
	// under the same identity.
	updated, err := pricing.NewRule(existing.StationID(), existing.ChargerClass(), cmd.DayOfWeek, cmd.StartHour, cmd.EndHour, cmd.Percent, cmd.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDiscountRule)
	}
	rule := pricing.ReconstructRule(
		existing.ID(), existing.StationID(), existing.ChargerClass(),
		updated.DayOfWeek(), updated.StartHour(), updated.EndHour(), updated.Percent(), updated.Active(),
	)

	if err := u.ruleRepo.Save(ctx, rule); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rule, nil
}

func (u *discountCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.ruleRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDiscountRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
