package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"prepdeck-backend/internal/ai"
	"prepdeck-backend/internal/settings"
)

type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// ListProviders reports which providers are configured. Credential values
// never leave the server.
func (h *SettingsHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	configured, err := h.store.Configured(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load settings", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"providers": configured})
}

func providerParam(r *http.Request) (ai.ProviderID, bool) {
	id := ai.ProviderID(chi.URLParam(r, "provider"))
	for _, p := range ai.AllProviders {
		if p == id {
			return id, true
		}
	}
	return "", false
}

func (h *SettingsHandler) SetProvider(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown provider", r))
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "value is required", r))
		return
	}

	if err := h.store.SetCredential(r.Context(), provider, value); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store credential", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Credential saved"})
}

func (h *SettingsHandler) RemoveProvider(w http.ResponseWriter, r *http.Request) {
	provider, ok := providerParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown provider", r))
		return
	}

	if err := h.store.RemoveCredential(r.Context(), provider); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to remove credential", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Credential removed"})
}
