package models

type RegisteredResponse struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	Registration Summary `json:"registration"`
}

type CheckResponse struct {
	Success bool      `json:"success"`
	Exists  bool      `json:"exists"`
	User    *Existing `json:"user,omitempty"`
}

type StatsResponse struct {
	Success        bool         `json:"success"`
	Stats          *Stats       `json:"stats"`
	TrainingTracks []TrackCount `json:"training_tracks"`
}

type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}
