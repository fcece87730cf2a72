package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeWindow   = errors.New("start time must be before end time")
	ErrInvalidBatteryLevel = errors.New("battery level must be between 0 and 100")
	ErrNegativeEnergy      = errors.New("estimated energy cannot be negative")
)

// TimeWindow is a half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports open-interval intersection. Touching endpoints do not
// overlap: [10:00, 11:00) and [11:00, 12:00) can coexist on one charger.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w TimeWindow) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// BatteryLevel is a state-of-charge percentage.
type BatteryLevel struct {
	value float64
}

func NewBatteryLevel(value float64) (BatteryLevel, error) {
	if value < 0 || value > 100 {
		return BatteryLevel{}, ErrInvalidBatteryLevel
	}
	return BatteryLevel{value: value}, nil
}

func (b BatteryLevel) Value() float64 {
	return b.value
}

// EnergyKwh is a non-negative energy amount.
type EnergyKwh struct {
	value float64
}

func NewEnergyKwh(value float64) (EnergyKwh, error) {
	if value < 0 {
		return EnergyKwh{}, ErrNegativeEnergy
	}
	return EnergyKwh{value: value}, nil
}

func (e EnergyKwh) Value() float64 {
	return e.value
}
