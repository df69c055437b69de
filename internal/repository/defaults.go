package repository

import (
	"time"

	"github.com/google/uuid"

	"prepdeck-backend/internal/models"
)

// DefaultQuestions is the starter catalog installed on first run and by the
// reset operation. Answers are left empty so users can generate them with
// their preferred provider.
func DefaultQuestions() []models.Question {
	type seed struct {
		category   string
		qType      string
		difficulty string
		question   string
		tags       []string
	}

	seeds := []seed{
		{"AI Engineer", "Technical", "Medium", "What is the difference between supervised and unsupervised learning?", []string{"machine-learning", "fundamentals"}},
		{"AI Engineer", "Technical", "Hard", "Explain the transformer architecture and why attention mechanisms matter.", []string{"deep-learning", "transformers", "nlp"}},
		{"AI Engineer", "Behavioral", "Medium", "Tell me about a time you had to explain a complex AI concept to a non-technical stakeholder.", []string{"communication"}},
		{"Data Scientist", "Technical", "Easy", "What is the difference between correlation and causation?", []string{"statistics", "fundamentals"}},
		{"Data Scientist", "Technical", "Medium", "How do you handle missing data in a dataset?", []string{"data-cleaning", "preprocessing"}},
		{"Data Scientist", "Behavioral", "Medium", "Describe a project where your analysis changed a business decision.", []string{"impact", "stakeholders"}},
		{"Data Analyst", "Technical", "Easy", "What is the difference between INNER JOIN and LEFT JOIN in SQL?", []string{"sql", "fundamentals"}},
		{"Data Analyst", "Technical", "Medium", "How would you detect and handle outliers in a sales dataset?", []string{"statistics", "data-quality"}},
		{"AI/ML Engineer", "Technical", "Medium", "How do you deploy a machine learning model to production and monitor it?", []string{"mlops", "deployment"}},
		{"Machine Learning Engineer", "Technical", "Hard", "Explain the bias-variance tradeoff and how it guides model selection.", []string{"machine-learning", "theory"}},
		{"Cyber Security Engineer", "Technical", "Medium", "What is defense in depth and how would you apply it to a web application?", []string{"security", "architecture"}},
		{"Security Analyst", "Technical", "Easy", "What is the difference between a vulnerability, a threat, and a risk?", []string{"security", "fundamentals"}},
		{"Penetration Tester", "Technical", "Medium", "Walk me through the phases of a penetration test engagement.", []string{"pentesting", "methodology"}},
		{"Security Architect", "Technical", "Hard", "How would you design a zero-trust architecture for a mid-size company?", []string{"security", "zero-trust", "architecture"}},
	}

	now := time.Now()
	questions := make([]models.Question, 0, len(seeds))
	for _, s := range seeds {
		questions = append(questions, models.Question{
			ID:         uuid.New(),
			Category:   s.category,
			Type:       s.qType,
			Difficulty: s.difficulty,
			Question:   s.question,
			Answer:     "",
			Tags:       s.tags,
			Favorite:   false,
			Answered:   false,
			CreatedAt:  now,
		})
	}
	return questions
}
