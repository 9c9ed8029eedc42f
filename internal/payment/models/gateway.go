package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// InitResult is what the gateway returns for a new checkout.
type InitResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// GatewayTransaction is a transaction as reported by the gateway, either from
// verify, list or a webhook event.
type GatewayTransaction struct {
	ID              int64           `json:"id"`
	Reference       string          `json:"reference"`
	Status          string          `json:"status"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	GatewayResponse string          `json:"gateway_response,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
	Customer        GatewayCustomer `json:"customer"`
	Metadata        GatewayMetadata `json:"metadata"`
}

type GatewayCustomer struct {
	Email string `json:"email"`
}

// GatewayMetadata tolerates the gateway sending "" or null when a
// transaction was created without metadata.
type GatewayMetadata struct {
	Metadata
	Present bool `json:"-"`
}

func (m *GatewayMetadata) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*m = GatewayMetadata{}
		return nil
	}
	if err := json.Unmarshal(data, &m.Metadata); err != nil {
		return err
	}
	m.Present = true
	return nil
}

func (m GatewayMetadata) MarshalJSON() ([]byte, error) {
	if !m.Present {
		return []byte("null"), nil
	}
	return json.Marshal(m.Metadata)
}

// WebhookEvent is the envelope Paystack posts to the webhook routes.
type WebhookEvent struct {
	Event string             `json:"event"`
	Data  GatewayTransaction `json:"data"`
}

const EventChargeSuccess = "charge.success"
