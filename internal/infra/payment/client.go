package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"evcharge/internal/domain/pricing"
	"evcharge/internal/pkg/config"
	"evcharge/internal/pkg/errs"
	"evcharge/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client talks to the hosted checkout provider over HTTP. It implements
// commands.CheckoutProvider; the reservation id rides along as the session
// reference so a confirmation can be tied back to the booking.
type Client struct {
	cfg        config.PaymentConfig
	httpClient *http.Client
}

func NewClient(cfg config.PaymentConfig) commands.CheckoutProvider {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, errs.Wrap(err, "failed to encode checkout request")
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, &buf)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build checkout request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) CreateSession(ctx context.Context, reservationID uuid.UUID, cost pricing.Money) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/checkout/sessions", createSessionRequest{
		ReferenceID: reservationID.String(),
		AmountCents: cost.Cents(),
		Currency:    c.cfg.Currency,
		SuccessURL:  c.cfg.SuccessURL,
		CancelURL:   c.cfg.CancelURL,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "checkout provider unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.New("unexpected checkout provider status: " + resp.Status)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", errs.Wrap(err, "failed to decode checkout session")
	}
	return session.ID, nil
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "checkout provider unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("unexpected checkout provider status: " + resp.Status)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout session")
	}

	reservationID, err := uuid.Parse(session.ReferenceID)
	if err != nil {
		return nil, errs.Wrap(err, "checkout session carries invalid reference")
	}

	return &commands.CheckoutSession{
		ID:            session.ID,
		ReservationID: reservationID,
		Paid:          session.Status == statusPaid,
	}, nil
}
