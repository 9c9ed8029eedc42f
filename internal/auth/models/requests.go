package models

import (
	"crypto/subtle"
	"strings"

	"museum/pkg/email"
	dErrors "museum/pkg/domain-errors"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = email.Normalize(r.Email)
	r.AccountType = strings.TrimSpace(r.AccountType)
	if r.Name == "" || r.Email == "" || r.Password == "" || r.AccountType == "" {
		return dErrors.New(dErrors.CodeValidation, "All fields are required")
	}
	if !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address")
	}
	if len(r.Password) > MaxPasswordBytes {
		return dErrors.New(dErrors.CodeValidation, "Password must be at most 72 bytes")
	}
	return nil
}

type LoginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

func (r *LoginRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	r.AccountType = strings.TrimSpace(r.AccountType)
	if r.Email == "" || r.Password == "" || r.AccountType == "" {
		return dErrors.New(dErrors.CodeValidation, "All fields are required")
	}
	return nil
}

// VerifyAccountRequest carries the user id and the emailed code. ID may be
// omitted when the caller has a session cookie.
type VerifyAccountRequest struct {
	ID  int64  `json:"id"`
	OTP string `json:"otp"`
}

func (r *VerifyAccountRequest) Validate() error {
	r.OTP = strings.TrimSpace(r.OTP)
	if r.OTP == "" || r.ID < 0 {
		return dErrors.New(dErrors.CodeValidation, "Missing Details")
	}
	return nil
}

type SendResetOTPRequest struct {
	Email string `json:"email"`
}

func (r *SendResetOTPRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "Email is required")
	}
	return nil
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	r.OTP = strings.TrimSpace(r.OTP)
	if r.Email == "" || r.OTP == "" || r.NewPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "Email, OTP, and NewPassword are required")
	}
	if len(r.NewPassword) > MaxPasswordBytes {
		return dErrors.New(dErrors.CodeValidation, "Password must be at most 72 bytes")
	}
	return nil
}

func otpEqual(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
