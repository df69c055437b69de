package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"prepdeck-backend/internal/models"
)

const (
	answerSystemPrompt    = "You are an expert interview coach helping candidates prepare for technical and behavioral interviews. Provide comprehensive, well-structured answers that demonstrate deep understanding and practical experience."
	coachJSONSystemPrompt = "You are an expert interview coach. Always respond with valid JSON when requested."
	flashcardSystemPrompt = "You are an expert educator creating interview preparation flashcards. Always respond with valid JSON only."

	// minSourceChars is the minimum source-text length for structured
	// generation; shorter content produces useless flashcards.
	minSourceChars = 100
)

var mixedDifficulties = []string{"Easy", "Medium", "Hard"}

const (
	placeholderQuestion = "Question not provided"
	placeholderAnswer   = "Answer not provided"
)

// ProgressPublisher receives step updates from multi-step workflows. A nil
// publisher disables progress reporting.
type ProgressPublisher interface {
	Publish(ctx context.Context, update models.ProgressUpdate)
}

// Generator sequences the generation workflows: prompt construction,
// provider dispatch, response normalization, and record materialization.
// Credentials are passed in per call; the Generator holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	resolver       Resolver
	publisher      ProgressPublisher
	stepDelay      time.Duration
	maxSourceChars int
	maxChunkChars  int
}

func NewGenerator(resolver Resolver, publisher ProgressPublisher, stepDelay time.Duration, maxSourceChars, maxChunkChars int) *Generator {
	return &Generator{
		resolver:       resolver,
		publisher:      publisher,
		stepDelay:      stepDelay,
		maxSourceChars: maxSourceChars,
		maxChunkChars:  maxChunkChars,
	}
}

func (g *Generator) publish(ctx context.Context, workflow, step, detail string) {
	if g.publisher == nil {
		return
	}
	g.publisher.Publish(ctx, models.ProgressUpdate{Workflow: workflow, Step: step, Detail: detail})
}

// pause waits the configured inter-call delay, used between sequential
// follow-up calls to stay under upstream rate limits.
func (g *Generator) pause(ctx context.Context) error {
	if g.stepDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.stepDelay):
		return nil
	}
}

// GenerateAnswer runs the single-answer workflow and returns an HTML
// fragment ready for the presentation layer.
func (g *Generator) GenerateAnswer(ctx context.Context, req models.GenerateAnswerRequest, creds Credentials) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", &ValidationError{Message: "question must not be empty"}
	}

	provider, err := g.resolver.Provider(ProviderID(req.Provider))
	if err != nil {
		return "", err
	}

	prompt := buildAnswerPrompt(req.Question, req.Category, req.Type, req.Difficulty)

	g.publish(ctx, "answer", "Generating Answer", "")
	raw, err := provider.Complete(ctx, Request{
		System:    answerSystemPrompt,
		Prompt:    prompt,
		MaxTokens: 1500,
	}, creds)
	if err != nil {
		return "", err
	}

	return FormatProse(raw), nil
}

type flashcardJSON struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// GenerateFlashcards runs the flashcard-set workflow. When the source text
// exceeds the size budget only the first chunk is sent; ChunkCount and
// ChunksUsed in the result make that truncation visible to the caller.
func (g *Generator) GenerateFlashcards(ctx context.Context, req models.GenerateFlashcardsRequest, creds Credentials) (*models.GeneratedFlashcards, error) {
	content := strings.TrimSpace(req.Content)
	if len(content) < minSourceChars {
		return nil, &ValidationError{Message: "Content is too short. Please provide at least 100 characters of content."}
	}
	if req.Count < 1 {
		return nil, &ValidationError{Message: "count must be at least 1"}
	}

	provider, err := g.resolver.Provider(ProviderID(req.Provider))
	if err != nil {
		return nil, err
	}

	chunks := []string{content}
	if len(content) > g.maxSourceChars {
		chunks = Chunk(content, g.maxChunkChars)
	}

	prompt := buildFlashcardPrompt(chunks[0], req.Count, req.Category, req.Type, req.Difficulty)

	g.publish(ctx, "flashcards", "Generating Flashcards", "")
	raw, err := provider.Complete(ctx, Request{
		System:    flashcardSystemPrompt,
		Prompt:    prompt,
		MaxTokens: 3000,
	}, creds)
	if err != nil {
		return nil, err
	}

	var parsed []flashcardJSON
	if err := ExtractJSONArray(raw, &parsed); err != nil {
		return nil, err
	}

	return &models.GeneratedFlashcards{
		Cards:      materializeFlashcards(parsed, req),
		ChunkCount: len(chunks),
		ChunksUsed: 1,
	}, nil
}

// materializeFlashcards coerces parsed array elements into catalog records.
// Missing fields get placeholders rather than failing the batch. A "Mixed"
// difficulty or type requested by the caller is resolved per record by
// position, not by reading the model's own labels.
func materializeFlashcards(cards []flashcardJSON, req models.GenerateFlashcardsRequest) []models.Question {
	out := make([]models.Question, 0, len(cards))
	for i, c := range cards {
		difficulty := c.Difficulty
		if difficulty == "" {
			difficulty = req.Difficulty
		}
		if req.Difficulty == "Mixed" {
			difficulty = mixedDifficulties[i%3]
		}

		qType := c.Type
		if qType == "" {
			qType = req.Type
		}
		if req.Type == "Mixed" {
			if i%2 == 0 {
				qType = "Technical"
			} else {
				qType = "Behavioral"
			}
		}

		question := c.Question
		if question == "" {
			question = placeholderQuestion
		}
		answer := c.Answer
		if answer == "" {
			answer = placeholderAnswer
		}
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}

		out = append(out, models.Question{
			ID:         uuid.New(),
			Category:   req.Category,
			Type:       qType,
			Difficulty: difficulty,
			Question:   question,
			Answer:     answer,
			Tags:       tags,
			Favorite:   false,
			Answered:   true,
			CreatedAt:  time.Now(),
		})
	}
	return out
}

type caseQuestionJSON struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type followUpJSON struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// requestedFollowUpTypes returns the enabled follow-up angles in their fixed
// order: Why, What, How, Issues.
func requestedFollowUpTypes(t models.FollowUpTypes) []string {
	var types []string
	if t.Why {
		types = append(types, "Why")
	}
	if t.What {
		types = append(types, "What")
	}
	if t.How {
		types = append(types, "How")
	}
	if t.Issues {
		types = append(types, "Issues")
	}
	return types
}

// GenerateCaseStudy runs the multi-step case-study workflow: scenario (if
// not supplied), main questions, then follow-ups per question. Follow-up
// calls run strictly sequentially with a pacing delay between questions (not
// after the last) to stay under upstream rate limits. Any step failure
// discards the partial case study.
func (g *Generator) GenerateCaseStudy(ctx context.Context, req models.GenerateCaseStudyRequest, creds Credentials) (*models.CaseStudy, error) {
	types := requestedFollowUpTypes(req.FollowUpTypes)
	if len(types) == 0 {
		return nil, &ValidationError{Message: "at least one follow-up type must be selected"}
	}
	if req.QuestionCount < 1 {
		return nil, &ValidationError{Message: "question_count must be at least 1"}
	}

	scenario := strings.TrimSpace(req.Scenario)
	if scenario == "" && strings.TrimSpace(req.Topic) == "" {
		return nil, &ValidationError{Message: "either a topic or an existing scenario is required"}
	}

	provider, err := g.resolver.Provider(ProviderID(req.Provider))
	if err != nil {
		return nil, err
	}

	if scenario == "" {
		g.publish(ctx, "case-study", "Generating Scenario", req.Topic)
		raw, err := provider.Complete(ctx, Request{
			System:    coachJSONSystemPrompt,
			Prompt:    buildScenarioPrompt(req.Topic, req.Category, req.Complexity),
			MaxTokens: 4000,
		}, creds)
		if err != nil {
			return nil, err
		}
		scenario = strings.TrimSpace(raw)
	}

	g.publish(ctx, "case-study", "Generating Main Questions", "")
	raw, err := provider.Complete(ctx, Request{
		System:    coachJSONSystemPrompt,
		Prompt:    buildCaseQuestionsPrompt(scenario, req.Category, req.QuestionCount),
		MaxTokens: 3000,
	}, creds)
	if err != nil {
		return nil, err
	}

	var mains []caseQuestionJSON
	if err := ExtractJSONArray(raw, &mains); err != nil {
		return nil, err
	}

	questions := make([]models.CaseStudyQuestion, 0, len(mains))
	for i, mq := range mains {
		g.publish(ctx, "case-study", fmt.Sprintf("Generating Follow-ups (%d/%d)", i+1, len(mains)), "")

		raw, err := provider.Complete(ctx, Request{
			System:    coachJSONSystemPrompt,
			Prompt:    buildFollowUpPrompt(mq.Question, mq.Answer, types, req.Category),
			MaxTokens: 3000,
		}, creds)
		if err != nil {
			return nil, err
		}

		var fups []followUpJSON
		if err := ExtractJSONArray(raw, &fups); err != nil {
			return nil, err
		}

		question := mq.Question
		if question == "" {
			question = placeholderQuestion
		}
		answer := mq.Answer
		if answer == "" {
			answer = placeholderAnswer
		}

		questions = append(questions, models.CaseStudyQuestion{
			ID:        uuid.New(),
			Question:  question,
			Answer:    answer,
			FollowUps: materializeFollowUps(fups, types),
		})

		if i < len(mains)-1 {
			if err := g.pause(ctx); err != nil {
				return nil, err
			}
		}
	}

	title := strings.TrimSpace(req.Topic)
	if title == "" {
		title = "Case Study"
	}

	return &models.CaseStudy{
		ID:        uuid.New(),
		Category:  req.Category,
		Title:     title,
		Scenario:  scenario,
		Questions: questions,
		CreatedAt: time.Now(),
	}, nil
}

// materializeFollowUps tags follow-ups by position from the requested type
// list, which pins the Why/What/How/Issues order regardless of how the model
// labeled them. Surplus elements beyond the requested count are dropped.
func materializeFollowUps(items []followUpJSON, types []string) []models.FollowUp {
	if len(items) > len(types) {
		items = items[:len(types)]
	}

	out := make([]models.FollowUp, 0, len(items))
	for i, f := range items {
		question := f.Question
		if question == "" {
			question = placeholderQuestion
		}
		answer := f.Answer
		if answer == "" {
			answer = placeholderAnswer
		}
		out = append(out, models.FollowUp{
			Type:     types[i],
			Question: question,
			Answer:   answer,
		})
	}
	return out
}
