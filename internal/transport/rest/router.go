package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"praxis/internal/repository"
	"praxis/internal/service"
	"praxis/internal/transport/rest/handler"
	"praxis/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	TemplateService *service.TemplateService
	ClientService   *service.ClientService
	FollowUpService *service.FollowUpService
	MatchingService *service.MatchingService
	ExportService   *service.ExportService
	CatalogRepo     repository.CatalogRepo
	DeckRepo        repository.DeckRepo
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	templateHandler := handler.NewTemplateHandler(c.TemplateService)
	clientHandler := handler.NewClientHandler(c.ClientService)
	followUpHandler := handler.NewFollowUpHandler(c.FollowUpService, c.ExportService)
	matchingHandler := handler.NewMatchingHandler(c.MatchingService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogRepo, c.DeckRepo)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Counselor routes (require auth)
	counselor := v1.NewRoute().Subrouter()
	counselor.Use(authMW.RequireCounselor)

	counselor.HandleFunc("/templates", templateHandler.Create).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/templates", templateHandler.List).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/templates/{templateId}", templateHandler.Update).Methods("PUT", "OPTIONS")
	counselor.HandleFunc("/templates/{templateId}", templateHandler.Delete).Methods("DELETE", "OPTIONS")

	counselor.HandleFunc("/clients", clientHandler.Create).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/clients", clientHandler.List).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/clients/{clientId}", clientHandler.Get).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/clients/{clientId}", clientHandler.Update).Methods("PUT", "OPTIONS")
	counselor.HandleFunc("/clients/{clientId}", clientHandler.Delete).Methods("DELETE", "OPTIONS")
	counselor.HandleFunc("/clients/{clientId}/followups", followUpHandler.ListByClient).Methods("GET", "OPTIONS")

	counselor.HandleFunc("/followups", followUpHandler.Create).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}", followUpHandler.Get).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}", followUpHandler.Delete).Methods("DELETE", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/answers/{blockId}", followUpHandler.SetAnswer).Methods("PATCH", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/complete", followUpHandler.Complete).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/preview", followUpHandler.Preview).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/export", followUpHandler.Export).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/blocks/{blockId}/draw", followUpHandler.DrawCards).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/followups/{followUpId}/matching/save", matchingHandler.Save).Methods("POST", "OPTIONS")

	counselor.HandleFunc("/clients/{clientId}/matching/run", matchingHandler.Run).Methods("POST", "OPTIONS")
	counselor.HandleFunc("/clients/{clientId}/matching/exclusions", matchingHandler.SetExclusions).Methods("PUT", "OPTIONS")

	counselor.HandleFunc("/catalog/remedies", catalogHandler.ListRemedies).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/catalog/programs", catalogHandler.ListPrograms).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/decks", catalogHandler.ListDecks).Methods("GET", "OPTIONS")

	counselor.HandleFunc("/session/last-client", clientHandler.LastSelected).Methods("GET", "OPTIONS")
	counselor.HandleFunc("/session/last-client", clientHandler.SetLastSelected).Methods("PUT", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
