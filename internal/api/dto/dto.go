package dto

// HealthResponse is the fixed payload returned by the health check.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"Whisper Transcription API"`
	Model   string `json:"model" example:"tiny"`
}

// TranscriptionResponse carries the transcribed text for one upload.
type TranscriptionResponse struct {
	Text string `json:"text" example:"And so my fellow Americans..."`
}
