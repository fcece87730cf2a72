package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
	ErrInvalidHourRange = errors.New("hour range must be within 0-23 with start <= end")
	ErrInvalidPercent   = errors.New("discount percent must be between 0 and 100")
)

// Rule is a time-windowed percentage discount for a station and charger class.
// DayOfWeek follows time.Weekday numbering (0=Sunday). Hour bounds are
// inclusive on both ends.
type Rule struct {
	id           uuid.UUID
	stationID    uuid.UUID
	chargerClass string
	dayOfWeek    time.Weekday
	startHour    int
	endHour      int
	percent      float64
	active       bool
}

func NewRule(
	stationID uuid.UUID,
	chargerClass string,
	dayOfWeek int,
	startHour, endHour int,
	percent float64,
	active bool,
) (*Rule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 || startHour > endHour {
		return nil, ErrInvalidHourRange
	}
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidPercent
	}

	return &Rule{
		id:           uuid.New(),
		stationID:    stationID,
		chargerClass: chargerClass,
		dayOfWeek:    time.Weekday(dayOfWeek),
		startHour:    startHour,
		endHour:      endHour,
		percent:      percent,
		active:       active,
	}, nil
}

func ReconstructRule(
	id, stationID uuid.UUID,
	chargerClass string,
	dayOfWeek int,
	startHour, endHour int,
	percent float64,
	active bool,
) *Rule {
	return &Rule{
		id:           id,
		stationID:    stationID,
		chargerClass: chargerClass,
		dayOfWeek:    time.Weekday(dayOfWeek),
		startHour:    startHour,
		endHour:      endHour,
		percent:      percent,
		active:       active,
	}
}

// Matches reports whether the rule window covers the given instant.
func (r *Rule) Matches(at time.Time) bool {
	if !r.active {
		return false
	}
	if at.Weekday() != r.dayOfWeek {
		return false
	}
	hour := at.Hour()
	return r.startHour <= hour && hour <= r.endHour
}

func (r *Rule) ID() uuid.UUID        { return r.id }
func (r *Rule) StationID() uuid.UUID { return r.stationID }
func (r *Rule) ChargerClass() string { return r.chargerClass }
func (r *Rule) DayOfWeek() int       { return int(r.dayOfWeek) }
func (r *Rule) StartHour() int       { return r.startHour }
func (r *Rule) EndHour() int         { return r.endHour }
func (r *Rule) Percent() float64     { return r.percent }
func (r *Rule) Active() bool         { return r.active }
