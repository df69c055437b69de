package ai

import (
	"strings"
	"testing"
)

func TestBuildAnswerPromptTechnicalVsBehavioral(t *testing.T) {
	tech := buildAnswerPrompt("Explain goroutines", "AI Engineer", "Technical", "Medium")
	if !strings.Contains(tech, "code snippets") || !strings.Contains(tech, "best practices") {
		t.Error("technical prompt missing technical guidance")
	}
	if strings.Contains(tech, "STAR method") {
		t.Error("technical prompt must not use the behavioral template")
	}

	behav := buildAnswerPrompt("Describe a conflict you resolved", "AI Engineer", "Behavioral", "Medium")
	if !strings.Contains(behav, "STAR method") {
		t.Error("behavioral prompt missing STAR guidance")
	}
}

func TestBuildFlashcardPromptEmbedsCountAndMixedHints(t *testing.T) {
	p := buildFlashcardPrompt("some study material", 7, "Data Scientist", "Mixed", "Mixed")

	if !strings.Contains(p, "Generate exactly 7 flashcards") {
		t.Error("count not embedded")
	}
	if !strings.Contains(p, "Mix of Technical and Behavioral questions") {
		t.Error("mixed type hint missing")
	}
	if !strings.Contains(p, "Mix of Easy, Medium, and Hard questions") {
		t.Error("mixed difficulty hint missing")
	}
	if !strings.Contains(p, "some study material") {
		t.Error("source content missing")
	}
}

func TestBuildScenarioPromptIsPlainTextOnly(t *testing.T) {
	p := buildScenarioPrompt("Churn prediction", "Data Scientist", "Hard")
	if !strings.Contains(p, "ONLY the case study scenario text") {
		t.Error("scenario prompt must forbid JSON output")
	}
	if !strings.Contains(p, "300-500 words") {
		t.Error("length constraint missing")
	}
}

func TestBuildFollowUpPromptTypeLabels(t *testing.T) {
	p := buildFollowUpPrompt("Main Q", "Main A", []string{"Why", "Issues"}, "Security Analyst")

	if !strings.Contains(p, "Why, Issues/Challenges") {
		t.Error("Issues must be labeled Issues/Challenges in the prompt")
	}
	if !strings.Contains(p, "exactly 2 follow-up questions") {
		t.Error("requested count missing")
	}
}
