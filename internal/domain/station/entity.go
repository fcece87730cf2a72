package station

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("station name cannot be empty")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

type Station struct {
	id        uuid.UUID
	name      string
	address   string
	latitude  float64
	longitude float64
	createdAt time.Time
	updatedAt time.Time
}

func NewStation(name, address string, latitude, longitude float64) (*Station, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, ErrInvalidCoordinates
	}

	return &Station{
		id:        uuid.New(),
		name:      name,
		address:   strings.TrimSpace(address),
		latitude:  latitude,
		longitude: longitude,
	}, nil
}

func ReconstructStation(id uuid.UUID, name, address string, latitude, longitude float64, createdAt, updatedAt time.Time) *Station {
	return &Station{
		id:        id,
		name:      name,
		address:   address,
		latitude:  latitude,
		longitude: longitude,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Station) ID() uuid.UUID        { return s.id }
func (s *Station) Name() string         { return s.name }
func (s *Station) Address() string      { return s.address }
func (s *Station) Latitude() float64    { return s.latitude }
func (s *Station) Longitude() float64   { return s.longitude }
func (s *Station) CreatedAt() time.Time { return s.createdAt }
func (s *Station) UpdatedAt() time.Time { return s.updatedAt }
