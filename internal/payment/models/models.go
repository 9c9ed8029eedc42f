package models

import (
	"math"
	"time"
)

// Donation is a row of the donate table.
type Donation struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phone_number"`
	Country           string    `json:"country"`
	StateProvince     *string   `json:"state_province"`
	City              *string   `json:"city"`
	InMemoryOf        bool      `json:"in_memory_of"`
	MemoryPersonName  *string   `json:"memory_person_name"`
	IsAnonymous       bool      `json:"is_anonymous"`
	Amount            float64   `json:"amount"`
	PaystackReference string    `json:"paystack_reference"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Transaction is a shop order payment, a row of the transactions table.
type Transaction struct {
	ID                int64     `json:"id"`
	Firstname         string    `json:"firstname"`
	Lastname          string    `json:"lastname"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Address           string    `json:"address"`
	DeliveryNote      string    `json:"deliverynote"`
	State             string    `json:"state"`
	Amount            float64   `json:"amount"`
	PaystackReference string    `json:"paystack_reference"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StatusChange is the outcome of applying a gateway status to a record.
type StatusChange struct {
	Kind       Kind
	Reference  string
	From       Status
	To         Status
	AmountKobo int64
}

func (c StatusChange) Changed() bool {
	return c.From != c.To
}

// Metadata travels with the gateway transaction. It carries enough of the
// original request to rebuild a record the database never saw.
type Metadata struct {
	TransactionType  Kind   `json:"transaction_type"`
	FullName         string `json:"full_name,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Country          string `json:"country,omitempty"`
	StateProvince    string `json:"state_province,omitempty"`
	City             string `json:"city,omitempty"`
	InMemoryOf       bool   `json:"in_memory_of,omitempty"`
	MemoryPersonName string `json:"memory_person_name,omitempty"`
	IsAnonymous      bool   `json:"is_anonymous,omitempty"`
	Firstname        string `json:"firstname,omitempty"`
	Lastname         string `json:"lastname,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	DeliveryNote     string `json:"deliverynote,omitempty"`
	State            string `json:"state,omitempty"`
}

// DonationStats aggregates the donate table.
type DonationStats struct {
	TotalDonations     int64   `json:"total_donations"`
	TotalAmount        float64 `json:"total_amount"`
	AverageAmount      float64 `json:"average_amount"`
	CompletedDonations int64   `json:"completed_donations"`
	PendingDonations   int64   `json:"pending_donations"`
	FailedDonations    int64   `json:"failed_donations"`
	MemoryDonations    int64   `json:"memory_donations"`
	AnonymousDonations int64   `json:"anonymous_donations"`
}

// ToKobo converts a naira amount to the gateway's minor unit.
func ToKobo(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromKobo converts a gateway amount back to naira.
func FromKobo(kobo int64) float64 {
	return float64(kobo) / 100
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DonationCheckout is a stored donation with the gateway checkout details.
type DonationCheckout struct {
	Donation *Donation
	Checkout *InitResult
}

// PaymentCheckout is a stored shop payment with the gateway checkout details.
type PaymentCheckout struct {
	Transaction *Transaction
	Checkout    *InitResult
}

// Verification is the result of re-reading a record's status from the gateway.
type Verification struct {
	Change  StatusChange
	Gateway *GatewayTransaction
}
