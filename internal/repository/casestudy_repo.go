package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prepdeck-backend/internal/models"
)

type CaseStudyRepository struct {
	db *pgxpool.Pool
}

func NewCaseStudyRepository(db *pgxpool.Pool) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

func (r *CaseStudyRepository) Create(ctx context.Context, cs models.CaseStudy) error {
	questionsJSON, err := json.Marshal(cs.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode case study questions: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO case_studies (id, category, title, scenario, questions_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cs.ID, cs.Category, cs.Title, cs.Scenario, questionsJSON, cs.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create case study: %w", err)
	}
	return nil
}

func scanCaseStudy(row pgx.Row) (*models.CaseStudy, error) {
	var cs models.CaseStudy
	var questionsJSON []byte
	err := row.Scan(&cs.ID, &cs.Category, &cs.Title, &cs.Scenario, &questionsJSON, &cs.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(questionsJSON, &cs.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode case study questions: %w", err)
	}
	if cs.Questions == nil {
		cs.Questions = []models.CaseStudyQuestion{}
	}
	return &cs, nil
}

// List returns case studies newest first; category narrows when non-empty.
func (r *CaseStudyRepository) List(ctx context.Context, category string) ([]models.CaseStudy, error) {
	query := "SELECT id, category, title, scenario, questions_json, created_at FROM case_studies"
	var args []any
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	defer rows.Close()

	studies := []models.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, err
		}
		studies = append(studies, *cs)
	}
	return studies, rows.Err()
}

func (r *CaseStudyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	row := r.db.QueryRow(ctx,
		"SELECT id, category, title, scenario, questions_json, created_at FROM case_studies WHERE id = $1", id)
	return scanCaseStudy(row)
}

func (r *CaseStudyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM case_studies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete case study: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
