package models

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
