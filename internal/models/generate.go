package models

// Requests and results for the three AI generation workflows.

type GenerateAnswerRequest struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Provider   string `json:"provider"`
}

type GenerateFlashcardsRequest struct {
	Content    string `json:"content"`
	Count      int    `json:"count"`
	Category   string `json:"category"`
	Type       string `json:"type"`       // "Technical" | "Behavioral" | "Mixed"
	Difficulty string `json:"difficulty"` // "Easy" | "Medium" | "Hard" | "Mixed"
	Provider   string `json:"provider"`
}

type FollowUpTypes struct {
	Why    bool `json:"why"`
	What   bool `json:"what"`
	How    bool `json:"how"`
	Issues bool `json:"issues"`
}

type GenerateCaseStudyRequest struct {
	Topic         string        `json:"topic"`
	Category      string        `json:"category"`
	Complexity    string        `json:"complexity"` // "Beginner" | "Intermediate" | "Advanced"
	QuestionCount int           `json:"question_count"`
	FollowUpTypes FollowUpTypes `json:"follow_up_types"`
	Provider      string        `json:"provider"`
	Scenario      string        `json:"scenario"` // optional pre-supplied scenario text
}

// GeneratedFlashcards is a preview batch; the caller saves the cards it keeps
// through the questions endpoint. ChunkCount/ChunksUsed make first-chunk
// truncation of over-long source text visible to the caller.
type GeneratedFlashcards struct {
	Cards      []Question `json:"cards"`
	ChunkCount int        `json:"chunk_count"`
	ChunksUsed int        `json:"chunks_used"`
}

type GeneratedAnswer struct {
	AnswerHTML string `json:"answer_html"`
}
