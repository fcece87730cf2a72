//go:build unit || integration

package builder

import (
	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/pricing"
	reqdto "evcharge/internal/handler/dto/request"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

type DiscountRuleBuilder struct {
	StationID    uuid.UUID
	ChargerClass string
	DayOfWeek    int
	StartHour    int
	EndHour      int
	Percent      float64
	Active       bool
}

func NewDiscountRuleBuilder() *DiscountRuleBuilder {
	return &DiscountRuleBuilder{
		StationID:    uuid.New(),
		ChargerClass: charger.ClassDCFast.String(),
		DayOfWeek:    1, // Monday
		StartHour:    14,
		EndHour:      18,
		Percent:      15,
		Active:       true,
	}
}

func (b *DiscountRuleBuilder) With(mutate func(*DiscountRuleBuilder)) *DiscountRuleBuilder {
	mutate(b)
	return b
}

func (b *DiscountRuleBuilder) BuildDomain() (*pricing.Rule, error) {
	return pricing.NewRule(b.StationID, b.ChargerClass, b.DayOfWeek, b.StartHour, b.EndHour, b.Percent, b.Active)
}

func (b *DiscountRuleBuilder) BuildCommand() commands.CreateDiscountRuleCommand {
	return commands.CreateDiscountRuleCommand{
		StationID:    b.StationID,
		ChargerClass: b.ChargerClass,
		DayOfWeek:    b.DayOfWeek,
		StartHour:    b.StartHour,
		EndHour:      b.EndHour,
		Percent:      b.Percent,
		Active:       b.Active,
	}
}

func (b *DiscountRuleBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRuleRequest {
	return reqdto.CreateDiscountRuleRequest{
		StationID:    b.StationID,
		ChargerClass: b.ChargerClass,
		DayOfWeek:    b.DayOfWeek,
		StartHour:    b.StartHour,
		EndHour:      b.EndHour,
		Percent:      b.Percent,
		Active:       b.Active,
	}
}
