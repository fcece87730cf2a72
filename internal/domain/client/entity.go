package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("client name cannot be empty")
	ErrInvalidEmail = errors.New("invalid client email")
)

// Client is a driver account. Credentials and authentication live outside
// this service; only the identity referenced by reservations is modeled.
type Client struct {
	id        uuid.UUID
	name      string
	email     string
	createdAt time.Time
}

func NewClient(name, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Client{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructClient(id uuid.UUID, name, email string, createdAt time.Time) *Client {
	return &Client{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) Name() string         { return c.name }
func (c *Client) Email() string        { return c.email }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
