package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"museum/pkg/email"
	dErrors "museum/pkg/domain-errors"
)

// MinimumKobo is the smallest amount the gateway accepts (₦1.00).
const MinimumKobo = 100

// Amount accepts a JSON number or a numeric string, since the front end posts
// form values as strings.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q is not a number", s)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

func validateAmount(a Amount) error {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return dErrors.New(dErrors.CodeValidation, "Amount must be greater than 0")
	}
	if ToKobo(f) < MinimumKobo {
		return dErrors.New(dErrors.CodeValidation, "Minimum donation amount is ₦1.00")
	}
	return nil
}

// CreateDonationRequest is the body of POST /api/donations/makeDonation.
type CreateDonationRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Country          string `json:"country"`
	StateProvince    string `json:"state_province"`
	City             string `json:"city"`
	InMemoryOf       bool   `json:"in_memory_of"`
	MemoryPersonName string `json:"memory_person_name"`
	IsAnonymous      bool   `json:"is_anonymous"`
	Amount           Amount `json:"amount"`
}

func (r *CreateDonationRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = email.Normalize(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Country = strings.TrimSpace(r.Country)
	r.StateProvince = strings.TrimSpace(r.StateProvince)
	r.City = strings.TrimSpace(r.City)
	r.MemoryPersonName = strings.TrimSpace(r.MemoryPersonName)

	if r.FullName == "" || r.Email == "" || r.PhoneNumber == "" || r.Country == "" || r.Amount == 0 {
		return dErrors.New(dErrors.CodeValidation, "Full name, email, phone number, country, and amount are required")
	}
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	if r.InMemoryOf && r.MemoryPersonName == "" {
		return dErrors.New(dErrors.CodeValidation, "Memory person name is required when donating in memory of someone")
	}
	if !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address")
	}
	return nil
}

func (r *CreateDonationRequest) Metadata() Metadata {
	return Metadata{
		TransactionType:  KindDonation,
		FullName:         r.FullName,
		PhoneNumber:      r.PhoneNumber,
		Country:          r.Country,
		StateProvince:    r.StateProvince,
		City:             r.City,
		InMemoryOf:       r.InMemoryOf,
		MemoryPersonName: r.MemoryPersonName,
		IsAnonymous:      r.IsAnonymous,
	}
}

// Donation builds the pending record stored once the gateway accepted reference.
func (r *CreateDonationRequest) Donation(reference string) *Donation {
	return &Donation{
		FullName:          r.FullName,
		Email:             r.Email,
		PhoneNumber:       r.PhoneNumber,
		Country:           r.Country,
		StateProvince:     optional(r.StateProvince),
		City:              optional(r.City),
		InMemoryOf:        r.InMemoryOf,
		MemoryPersonName:  optional(r.MemoryPersonName),
		IsAnonymous:       r.IsAnonymous,
		Amount:            float64(r.Amount),
		PaystackReference: reference,
		Status:            StatusPending,
	}
}

// InitializePaymentRequest is the body of POST /api/payment/initialize.
type InitializePaymentRequest struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	DeliveryNote string `json:"deliverynote"`
	State        string `json:"state"`
	Amount       Amount `json:"amount"`
}

func (r *InitializePaymentRequest) Validate() error {
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = email.Normalize(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.DeliveryNote = strings.TrimSpace(r.DeliveryNote)
	r.State = strings.TrimSpace(r.State)

	if r.Firstname == "" || r.Lastname == "" || r.Phone == "" || r.Amount == 0 ||
		r.Address == "" || r.Email == "" || r.DeliveryNote == "" || r.State == "" {
		return dErrors.New(dErrors.CodeValidation, "all fields are required")
	}
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	if !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address")
	}
	return nil
}

func (r *InitializePaymentRequest) Metadata() Metadata {
	return Metadata{
		TransactionType: KindPayment,
		Firstname:       r.Firstname,
		Lastname:        r.Lastname,
		Phone:           r.Phone,
		Address:         r.Address,
		DeliveryNote:    r.DeliveryNote,
		State:           r.State,
	}
}

func (r *InitializePaymentRequest) Transaction(reference string) *Transaction {
	return &Transaction{
		Firstname:         r.Firstname,
		Lastname:          r.Lastname,
		Phone:             r.Phone,
		Email:             r.Email,
		Address:           r.Address,
		DeliveryNote:      r.DeliveryNote,
		State:             r.State,
		Amount:            float64(r.Amount),
		PaystackReference: reference,
		Status:            StatusPending,
	}
}
