package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"prepdeck-backend/internal/ai"
	"prepdeck-backend/internal/extract"
	"prepdeck-backend/internal/models"
	"prepdeck-backend/internal/repository"
	"prepdeck-backend/internal/settings"
)

type GenerateHandler struct {
	generator     *ai.Generator
	settings      *settings.Store
	caseStudyRepo *repository.CaseStudyRepository
}

func NewGenerateHandler(generator *ai.Generator, store *settings.Store, caseStudyRepo *repository.CaseStudyRepository) *GenerateHandler {
	return &GenerateHandler{
		generator:     generator,
		settings:      store,
		caseStudyRepo: caseStudyRepo,
	}
}

func (h *GenerateHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	creds, err := h.settings.Credentials(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load provider settings", r))
		return
	}

	answerHTML, err := h.generator.GenerateAnswer(r.Context(), req, creds)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GeneratedAnswer{AnswerHTML: answerHTML})
}

func (h *GenerateHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	creds, err := h.settings.Credentials(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load provider settings", r))
		return
	}

	result, err := h.generator.GenerateFlashcards(r.Context(), req, creds)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CaseStudy generates and persists the full question tree in one request.
func (h *GenerateHandler) CaseStudy(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	creds, err := h.settings.Credentials(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load provider settings", r))
		return
	}

	caseStudy, err := h.generator.GenerateCaseStudy(r.Context(), req, creds)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	if err := h.caseStudyRepo.Create(r.Context(), *caseStudy); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save case study", r))
		return
	}

	writeJSON(w, http.StatusCreated, caseStudy)
}

// ExtractHandler turns uploaded documents into plain text for the flashcard
// workflow. It has no storage dependencies.
type ExtractHandler struct {
	maxUploadBytes int64
}

func NewExtractHandler(maxUploadBytes int64) *ExtractHandler {
	return &ExtractHandler{maxUploadBytes: maxUploadBytes}
}

func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", "Uploaded file is too large", r))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing file upload", r))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Failed to read uploaded file", r))
		return
	}

	text, err := extract.ExtractText(header.Filename, data)
	if err != nil {
		handlePipelineError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"text":  text,
		"chars": len(text),
	})
}
