//go:build unit || integration

package builder

import (
	"time"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/domain/reservation"
	reqdto "evcharge/internal/handler/dto/request"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ClientID          uuid.UUID
	ChargerID         uuid.UUID
	StartTime         time.Time
	EndTime           time.Time
	BatteryLevelStart float64
	EstimatedKwh      float64
	EstimatedCost     int64
}

func NewReservationBuilder() *ReservationBuilder {
	// Monday 2025-06-02, 15:00-16:00 UTC
	start := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ClientID:          uuid.New(),
		ChargerID:         uuid.New(),
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		BatteryLevelStart: 20,
		EstimatedKwh:      20,
		EstimatedCost:     600, // 20 kWh at 0.30
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	window, err := reservation.NewTimeWindow(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	battery, err := reservation.NewBatteryLevel(b.BatteryLevelStart)
	if err != nil {
		return nil, err
	}
	energy, err := reservation.NewEnergyKwh(b.EstimatedKwh)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.NewMoney(b.EstimatedCost)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.ClientID, b.ChargerID, window, battery, energy, cost), nil
}

func (b *ReservationBuilder) BuildCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		ClientID:          b.ClientID,
		ChargerID:         b.ChargerID,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		BatteryLevelStart: b.BatteryLevelStart,
		EstimatedKwh:      b.EstimatedKwh,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID:          b.ClientID,
		ChargerID:         b.ChargerID,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		BatteryLevelStart: b.BatteryLevelStart,
		EstimatedKwh:      b.EstimatedKwh,
	}
}
