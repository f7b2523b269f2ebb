package api

import (
	"github.com/gorilla/mux"

	httpHandlers "github.com/ideaforge/ideaforge/server/internal/api/http"
	"github.com/ideaforge/ideaforge/server/internal/api/recovery"
	"github.com/ideaforge/ideaforge/server/internal/auth"
	"github.com/ideaforge/ideaforge/server/internal/core/insight"
	repocore "github.com/ideaforge/ideaforge/server/internal/core/repo"
	"github.com/ideaforge/ideaforge/server/internal/llm"
	"github.com/ideaforge/ideaforge/server/internal/storage"
)

// NewRouter creates a new HTTP router with all API routes. The storage
// client, authenticator, and generation provider are injected by the
// process entry point.
func NewRouter(store storage.Storage, authenticator auth.Authenticator, gen llm.Generator) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Create domain services
	repoService := repocore.NewService(store)
	insightService := insight.NewService(gen)

	// Create handlers
	healthHandler := httpHandlers.NewHealthHandler(store)
	userHandler := httpHandlers.NewUserHandler(store)
	repoHandler := httpHandlers.NewRepoHandler(repoService, authenticator)
	insightHandler := httpHandlers.NewInsightHandler(insightService)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStorageHealth).Methods("GET")

	// User endpoints
	router.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/api/users/{userId}", userHandler.GetUser).Methods("GET")

	// Repository endpoints
	router.HandleFunc("/api/repos", repoHandler.CreateRepo).Methods("POST")
	router.HandleFunc("/api/repos", repoHandler.ListRepos).Methods("GET")
	router.HandleFunc("/api/repos/{repoId}", repoHandler.GetRepo).Methods("GET")
	router.HandleFunc("/api/repos/{repoId}", repoHandler.UpdateRepo).Methods("PUT")
	router.HandleFunc("/api/repos/{repoId}", repoHandler.DeleteRepo).Methods("DELETE")
	router.HandleFunc("/api/repos/{repoId}/star", repoHandler.ToggleStar).Methods("POST")
	router.HandleFunc("/api/repos/{repoId}/fork", repoHandler.ForkRepo).Methods("POST")

	// Idea analysis endpoints
	router.HandleFunc("/api/evolve", insightHandler.Evolve).Methods("POST")
	router.HandleFunc("/api/analyze", insightHandler.Analyze).Methods("POST")
	router.HandleFunc("/api/business-insights", insightHandler.BusinessInsights).Methods("POST")
	router.HandleFunc("/api/roast", insightHandler.Roast).Methods("POST")
	router.HandleFunc("/api/research", insightHandler.Research).Methods("POST")
	router.HandleFunc("/api/ai-debate", insightHandler.Debate).Methods("POST")
	router.HandleFunc("/api/idea-mixer", insightHandler.Mix).Methods("POST")

	return router
}
