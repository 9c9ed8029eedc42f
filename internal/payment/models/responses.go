package models

type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type DonationCreatedData struct {
	Donation         *Donation `json:"donation"`
	PaymentURL       string    `json:"payment_url"`
	AuthorizationURL string    `json:"authorization_url"`
	AccessCode       string    `json:"access_code"`
	Reference        string    `json:"reference"`
}

type PaymentInitializedData struct {
	Transaction      *Transaction `json:"transaction"`
	AuthorizationURL string       `json:"authorization_url"`
	AccessCode       string       `json:"access_code"`
	Reference        string       `json:"reference"`
}

type DonationVerifiedData struct {
	Donation     *Donation           `json:"donation"`
	PaystackData *GatewayTransaction `json:"paystack_data"`
}

type DonationListResponse struct {
	Success    bool        `json:"success"`
	Data       []*Donation `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type AckResponse struct {
	Success bool `json:"success"`
}

type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
