package response

import (
	"time"

	"evcharge/internal/domain/client"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClientEntity(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt(),
	}
}
