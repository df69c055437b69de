package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"prepdeck-backend/internal/ai"
	"prepdeck-backend/internal/extract"
	"prepdeck-backend/internal/models"
	"prepdeck-backend/internal/repository"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handlePipelineError maps generation and extraction failures onto the error
// envelope. Upstream provider failures are the gateway's fault domain (502),
// everything the caller can fix is 4xx.
func handlePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr  *ai.ValidationError
		configErr      *ai.ConfigError
		providerErr    *ai.ProviderError
		parseErr       *ai.ParseError
		extractionErr  *extract.ExtractionError
		unsupportedErr *extract.UnsupportedFormatError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", validationErr.Message, r))
	case errors.As(err, &configErr):
		writeJSON(w, http.StatusBadRequest, errorResp("CONFIG_ERROR", configErr.Message, r))
	case errors.As(err, &providerErr):
		code := "PROVIDER_ERROR"
		if providerErr.Unreachable {
			code = "PROVIDER_UNREACHABLE"
		}
		writeJSON(w, http.StatusBadGateway, errorResp(code, providerErr.Message, r))
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusBadGateway, errorResp("PARSE_ERROR", "The AI response could not be parsed. Please try again.", r))
	case errors.As(err, &unsupportedErr):
		writeJSON(w, http.StatusBadRequest, errorResp("UNSUPPORTED_FORMAT", unsupportedErr.Error(), r))
	case errors.As(err, &extractionErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("EXTRACTION_FAILED", extractionErr.Message, r))
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Record not found", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Something went wrong", r))
	}
}
