package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	SoundFont  string `json:"soundfont"`
	SampleRate int    `json:"sample_rate"`
}
