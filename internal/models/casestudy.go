package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseStudy is a scenario plus a tree of main questions, each with its own
// follow-up questions.
type CaseStudy struct {
	ID        uuid.UUID           `json:"id"`
	Category  string              `json:"category"`
	Title     string              `json:"title"`
	Scenario  string              `json:"scenario"`
	Questions []CaseStudyQuestion `json:"questions"`
	CreatedAt time.Time           `json:"created_at"`
}

type CaseStudyQuestion struct {
	ID        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	FollowUps []FollowUp `json:"follow_ups"`
}

// FollowUp probes deeper into a main question's answer. Type is the
// rhetorical angle: "Why" | "What" | "How" | "Issues".
type FollowUp struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
