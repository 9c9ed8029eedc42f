package models

import "time"

// User is a registered museum account. A one-time code is valid until its
// expiry and is cleared as soon as it is consumed.
type User struct {
	ID                 int64
	Name               string
	Email              string
	PasswordHash       string
	AccountType        string
	IsAccountVerified  bool
	VerifyOTP          string
	VerifyOTPExpiresAt time.Time
	ResetOTP           string
	ResetOTPExpiresAt  time.Time
	CreatedAt          time.Time
}

// Session is a freshly issued session token for the cookie.
type Session struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// UserData is the profile returned to the signed-in user.
type UserData struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	AccountType       string `json:"accountType"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}

func (u *User) Data() *UserData {
	return &UserData{
		Name:              u.Name,
		Email:             u.Email,
		AccountType:       u.AccountType,
		IsAccountVerified: u.IsAccountVerified,
	}
}

// VerifyOTPMatches reports whether otp equals the stored verification code.
// An empty stored code never matches.
func (u *User) VerifyOTPMatches(otp string) bool {
	return u.VerifyOTP != "" && otpEqual(u.VerifyOTP, otp)
}

func (u *User) ResetOTPMatches(otp string) bool {
	return u.ResetOTP != "" && otpEqual(u.ResetOTP, otp)
}
