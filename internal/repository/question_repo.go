package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prepdeck-backend/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

type QuestionRepository struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = "id, category, type, difficulty, question, answer, tags, favorite, answered, created_at"

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	err := row.Scan(&q.ID, &q.Category, &q.Type, &q.Difficulty, &q.Question,
		&q.Answer, &q.Tags, &q.Favorite, &q.Answered, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	return &q, nil
}

func (r *QuestionRepository) Create(ctx context.Context, q models.Question) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO questions (`+questionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		q.ID, q.Category, q.Type, q.Difficulty, q.Question, q.Answer, q.Tags, q.Favorite, q.Answered, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// CreateBatch inserts generated flashcards in one round trip.
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, q := range questions {
		batch.Queue(`
			INSERT INTO questions (`+questionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			q.ID, q.Category, q.Type, q.Difficulty, q.Question, q.Answer, q.Tags, q.Favorite, q.Answered, q.CreatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range questions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert questions: %w", err)
		}
	}
	return nil
}

// List returns questions newest first, optionally narrowed by filter.
func (r *QuestionRepository) List(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	var conditions []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.Difficulty != "" {
		add("difficulty = $%d", filter.Difficulty)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(question ILIKE $%d OR answer ILIKE $%d OR array_to_string(tags, ' ') ILIKE $%d)", n, n, n))
	}
	if filter.Favorites {
		conditions = append(conditions, "favorite")
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	row := r.db.QueryRow(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = $1", id)
	return scanQuestion(row)
}

// UpdateAnswer stores the answer and marks the question answered.
func (r *QuestionRepository) UpdateAnswer(ctx context.Context, id uuid.UUID, answer string) (*models.Question, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE questions SET answer = $2, answered = TRUE
		WHERE id = $1
		RETURNING `+questionColumns, id, answer)
	return scanQuestion(row)
}

func (r *QuestionRepository) ToggleFavorite(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE questions SET favorite = NOT favorite
		WHERE id = $1
		RETURNING `+questionColumns, id)
	return scanQuestion(row)
}

func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM questions"); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}
	return nil
}

// ResetToDefaults replaces the whole catalog with the built-in starter set.
func (r *QuestionRepository) ResetToDefaults(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM questions"); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	for _, q := range DefaultQuestions() {
		_, err := tx.Exec(ctx, `
			INSERT INTO questions (`+questionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			q.ID, q.Category, q.Type, q.Difficulty, q.Question, q.Answer, q.Tags, q.Favorite, q.Answered, q.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to seed default questions: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *QuestionRepository) Stats(ctx context.Context) (models.QuestionStats, error) {
	var stats models.QuestionStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE answered),
		       COUNT(*) FILTER (WHERE favorite)
		FROM questions`).Scan(&stats.Total, &stats.Answered, &stats.Favorites)
	if err != nil {
		return models.QuestionStats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}
