package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"prepdeck-backend/internal/handlers"
	"prepdeck-backend/internal/middleware"
	"prepdeck-backend/internal/websocket"
)

func New(
	generateHandler *handlers.GenerateHandler,
	extractHandler *handlers.ExtractHandler,
	questionHandler *handlers.QuestionHandler,
	categoryHandler *handlers.CategoryHandler,
	caseStudyHandler *handlers.CaseStudyHandler,
	settingsHandler *handlers.SettingsHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Generation rate limiter (20 req/min per IP); every request here costs
	// upstream API quota.
	generateLimiter := middleware.NewRateLimiter(20, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Generation Routes ────
		r.Route("/generate", func(r chi.Router) {
			r.Use(generateLimiter.Middleware)
			r.Post("/answer", generateHandler.Answer)
			r.Post("/flashcards", generateHandler.Flashcards)
			r.Post("/case-study", generateHandler.CaseStudy)
		})

		// ──── Document Extraction ────
		r.Post("/extract", extractHandler.Extract)

		// ──── Question Catalog Routes ────
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.List)
			r.Post("/", questionHandler.Create)
			r.Delete("/", questionHandler.DeleteAll)
			r.Post("/batch", questionHandler.CreateBatch)
			r.Post("/import", questionHandler.Import)
			r.Get("/export", questionHandler.Export)
			r.Get("/stats", questionHandler.Stats)
			r.Post("/reset", questionHandler.Reset)
			r.Get("/{id}", questionHandler.Get)
			r.Delete("/{id}", questionHandler.Delete)
			r.Put("/{id}/favorite", questionHandler.ToggleFavorite)
			r.Put("/{id}/answer", questionHandler.UpdateAnswer)
		})

		// ──── Category Routes ────
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
			r.Delete("/{name}", categoryHandler.Delete)
		})

		// ──── Case Study Routes ────
		r.Route("/case-studies", func(r chi.Router) {
			r.Get("/", caseStudyHandler.List)
			r.Get("/{id}", caseStudyHandler.Get)
			r.Delete("/{id}", caseStudyHandler.Delete)
		})

		// ──── Provider Settings Routes ────
		r.Route("/settings/providers", func(r chi.Router) {
			r.Get("/", settingsHandler.ListProviders)
			r.Put("/{provider}", settingsHandler.SetProvider)
			r.Delete("/{provider}", settingsHandler.RemoveProvider)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
