package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"prepdeck-backend/internal/models"
	"prepdeck-backend/internal/repository"
)

type QuestionHandler struct {
	repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.QuestionFilter{
		Category:   q.Get("category"),
		Type:       q.Get("type"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
		Favorites:  q.Get("favorites") == "true",
	}

	questions, err := h.repo.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch questions", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "question is required", r))
		return
	}
	if req.Category == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "category is required", r))
		return
	}

	question := newQuestion(req)
	if err := h.repo.Create(r.Context(), question); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create question", r))
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

// CreateBatch saves a set of generated flashcards the user chose to keep.
func (h *QuestionHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Questions []models.CreateQuestionRequest `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if len(req.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "questions must not be empty", r))
		return
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, cr := range req.Questions {
		if strings.TrimSpace(cr.Question) == "" {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "every question needs question text", r))
			return
		}
		questions = append(questions, newQuestion(cr))
	}

	if err := h.repo.CreateBatch(r.Context(), questions); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save questions", r))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"questions": questions})
}

func newQuestion(req models.CreateQuestionRequest) models.Question {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Question{
		ID:         uuid.New(),
		Category:   req.Category,
		Type:       req.Type,
		Difficulty: req.Difficulty,
		Question:   req.Question,
		Answer:     req.Answer,
		Tags:       tags,
		Answered:   req.Answer != "",
		CreatedAt:  time.Now(),
	}
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid question ID", r))
		return
	}

	question, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid question ID", r))
		return
	}

	var req models.UpdateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	question, err := h.repo.UpdateAnswer(r.Context(), id, req.Answer)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid question ID", r))
		return
	}

	question, err := h.repo.ToggleFavorite(r.Context(), id)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid question ID", r))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Question deleted"})
}

func (h *QuestionHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAll(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to clear questions", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All questions deleted"})
}

func (h *QuestionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.ResetToDefaults(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to reset questions", r))
		return
	}

	questions, err := h.repo.List(r.Context(), models.QuestionFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch questions", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

func (h *QuestionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to compute stats", r))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Export dumps the full catalog as a downloadable JSON file.
func (h *QuestionHandler) Export(w http.ResponseWriter, r *http.Request) {
	questions, err := h.repo.List(r.Context(), models.QuestionFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch questions", r))
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="questions-export.json"`)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exported_at": time.Now().UTC(),
		"questions":   questions,
	})
}

// Import accepts a previous export. Records get fresh ids so an import never
// collides with existing rows.
func (h *QuestionHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Questions []models.Question `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid import file", r))
		return
	}
	if len(req.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Import contains no questions", r))
		return
	}

	now := time.Now()
	for i := range req.Questions {
		req.Questions[i].ID = uuid.New()
		if req.Questions[i].Tags == nil {
			req.Questions[i].Tags = []string{}
		}
		if req.Questions[i].CreatedAt.IsZero() {
			req.Questions[i].CreatedAt = now
		}
	}

	if err := h.repo.CreateBatch(r.Context(), req.Questions); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to import questions", r))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"imported": len(req.Questions)})
}
