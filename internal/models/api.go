package models

// API error envelope

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WebSocket message types

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ProgressUpdate is published while a multi-step generation workflow runs.
type ProgressUpdate struct {
	Workflow string `json:"workflow"` // "answer" | "flashcards" | "case-study"
	Step     string `json:"step"`
	Detail   string `json:"detail,omitempty"`
}
