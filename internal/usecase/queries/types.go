package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
	ID                uuid.UUID `json:"id"`
	ClientID          uuid.UUID `json:"client_id"`
	ClientEmail       string    `json:"client_email"`
	ChargerID         uuid.UUID `json:"charger_id"`
	StationID         uuid.UUID `json:"station_id"`
	StationName       string    `json:"station_name"`
	ChargerClass      string    `json:"charger_class"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	BatteryLevelStart float64   `json:"battery_level_start"`
	EstimatedKwh      float64   `json:"estimated_kwh"`
	EstimatedCost     float64   `json:"estimated_cost"`
	Status            string    `json:"status"`
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ChargerView struct {
	ID              uuid.UUID `json:"id"`
	StationID       uuid.UUID `json:"station_id"`
	Class           string    `json:"class"`
	Status          string    `json:"status"`
	PricePerKwh     float64   `json:"price_per_kwh"`
	MaintenanceNote *string   `json:"maintenance_note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DiscountRuleView struct {
	ID           uuid.UUID `json:"id"`
	StationID    uuid.UUID `json:"station_id"`
	ChargerClass string    `json:"charger_class"`
	DayOfWeek    int       `json:"day_of_week"`
	StartHour    int       `json:"start_hour"`
	EndHour      int       `json:"end_hour"`
	Percent      float64   `json:"percent"`
	Active       bool      `json:"active"`
}

// PriceQuoteView is the answer to "what would a kWh cost on this charger
// class right now (or at a given instant)".
type PriceQuoteView struct {
	StationID       uuid.UUID `json:"station_id"`
	ChargerClass    string    `json:"charger_class"`
	At              time.Time `json:"at"`
	BasePricePerKwh float64   `json:"base_price_per_kwh"`
	UnitPricePerKwh float64   `json:"unit_price_per_kwh"`
	DiscountPercent float64   `json:"discount_percent"`
}
