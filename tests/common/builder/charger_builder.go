//go:build unit || integration

package builder

import (
	"evcharge/internal/domain/charger"
	"evcharge/internal/domain/pricing"

	"github.com/google/uuid"
)

type ChargerBuilder struct {
	StationID        uuid.UUID
	Class            charger.Class
	Status           charger.Status
	PricePerKwhCents int64
}

func NewChargerBuilder() *ChargerBuilder {
	return &ChargerBuilder{
		StationID:        uuid.New(),
		Class:            charger.ClassDCFast,
		Status:           charger.StatusAvailable,
		PricePerKwhCents: 30, // 0.30 per kWh
	}
}

func (b *ChargerBuilder) With(mutate func(*ChargerBuilder)) *ChargerBuilder {
	mutate(b)
	return b
}

func (b *ChargerBuilder) BuildDomain() (*charger.Charger, error) {
	price, err := pricing.NewMoney(b.PricePerKwhCents)
	if err != nil {
		return nil, err
	}
	return charger.NewCharger(b.StationID, b.Class, b.Status, price)
}
