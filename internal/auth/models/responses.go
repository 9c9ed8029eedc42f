package models

// MessageResponse is the plain success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyOTPSentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type UserDataResponse struct {
	Success  bool      `json:"success"`
	UserData *UserData `json:"userData"`
}
