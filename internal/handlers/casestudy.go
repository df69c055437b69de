package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"prepdeck-backend/internal/repository"
)

type CaseStudyHandler struct {
	repo *repository.CaseStudyRepository
}

func NewCaseStudyHandler(repo *repository.CaseStudyRepository) *CaseStudyHandler {
	return &CaseStudyHandler{repo: repo}
}

func (h *CaseStudyHandler) List(w http.ResponseWriter, r *http.Request) {
	studies, err := h.repo.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch case studies", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"case_studies": studies})
}

func (h *CaseStudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid case study ID", r))
		return
	}

	caseStudy, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, caseStudy)
}

func (h *CaseStudyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid case study ID", r))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Case study deleted"})
}
