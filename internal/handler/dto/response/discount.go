package response

import (
	"log/slog"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DiscountRuleResponse struct {
	ID           uuid.UUID `json:"id"`
	StationID    uuid.UUID `json:"stationId"`
	ChargerClass string    `json:"chargerClass"`
	DayOfWeek    int       `json:"dayOfWeek"`
	StartHour    int       `json:"startHour"`
	EndHour      int       `json:"endHour"`
	Percent      float64   `json:"percent"`
	Active       bool      `json:"active"`
}

func FromDiscountRuleView(view *queries.DiscountRuleView) *DiscountRuleResponse {
	var resp DiscountRuleResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("view to response mapping failed", "error", err)
	}
	return &resp
}

func FromDiscountRuleViews(views []*queries.DiscountRuleView) []*DiscountRuleResponse {
	resp := make([]*DiscountRuleResponse, len(views))
	for i, v := range views {
		resp[i] = FromDiscountRuleView(v)
	}
	return resp
}

func FromDiscountRuleEntity(r *pricing.Rule) *DiscountRuleResponse {
	return &DiscountRuleResponse{
		ID:           r.ID(),
		StationID:    r.StationID(),
		ChargerClass: r.ChargerClass(),
		DayOfWeek:    r.DayOfWeek(),
		StartHour:    r.StartHour(),
		EndHour:      r.EndHour(),
		Percent:      r.Percent(),
		Active:       r.Active(),
	}
}
