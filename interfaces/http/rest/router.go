package rest

import (
	"net/http"

	"aura-backend/application/commands/bus"
	querybus "aura-backend/application/queries/bus"
	"aura-backend/infrastructure/config"
	"aura-backend/interfaces/http/rest/handlers"
	"aura-backend/interfaces/http/rest/middleware"
	ws "aura-backend/interfaces/websocket"
	"aura-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	wsServer   *ws.Server
	validator  *auth.JWTValidator
	cfg        *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	wsServer *ws.Server,
	validator *auth.JWTValidator,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		wsServer:   wsServer,
		validator:  validator,
		cfg:        cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.aura.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// WebSocket upgrade does its own token handling; browsers cannot set
	// the Authorization header on upgrade requests.
	router.Get("/ws", rt.wsServer.HandleWebSocket)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator))

		journeyHandler := handlers.NewJourneyHandler(rt.queryBus, rt.logger)
		reflectionHandler := handlers.NewReflectionHandler(rt.commandBus, rt.logger)

		r.Route("/journey", func(r chi.Router) {
			r.Get("/", journeyHandler.GetJourney)
			r.Get("/resonance", journeyHandler.GetResonance)
			r.Get("/recommendations", journeyHandler.GetRecommendations)
			r.Put("/theme", reflectionHandler.SetTheme)
		})

		r.Post("/reflections", reflectionHandler.CreateReflection)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
