package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single interview flashcard: a question, its answer (possibly
// empty until generated), and catalog metadata.
type Question struct {
	ID         uuid.UUID `json:"id"`
	Category   string    `json:"category"`
	Type       string    `json:"type"`       // "Technical" | "Behavioral"
	Difficulty string    `json:"difficulty"` // "Easy" | "Medium" | "Hard"
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Tags       []string  `json:"tags"`
	Favorite   bool      `json:"favorite"`
	Answered   bool      `json:"answered"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionFilter struct {
	Category   string
	Type       string
	Difficulty string
	Search     string
	Favorites  bool
}

type QuestionStats struct {
	Total     int `json:"total"`
	Answered  int `json:"answered"`
	Favorites int `json:"favorites"`
}

type UpdateAnswerRequest struct {
	Answer string `json:"answer"`
}

type CreateQuestionRequest struct {
	Category   string   `json:"category"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Tags       []string `json:"tags"`
}
