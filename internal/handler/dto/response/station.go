package response

import (
	"log/slog"
	"time"

	"evcharge/internal/domain/station"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromStationView(view *queries.StationView) *StationResponse {
	var resp StationResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("view to response mapping failed", "error", err)
	}
	return &resp
}

func FromStationViews(views []*queries.StationView) []*StationResponse {
	resp := make([]*StationResponse, len(views))
	for i, v := range views {
		resp[i] = FromStationView(v)
	}
	return resp
}

func FromStationEntity(s *station.Station) *StationResponse {
	return &StationResponse{
		ID:        s.ID(),
		Name:      s.Name(),
		Address:   s.Address(),
		Latitude:  s.Latitude(),
		Longitude: s.Longitude(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
