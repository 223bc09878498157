package api

// #region imports
import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/store"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/tutor"
)

// #endregion

// #region tutor-interface

// Tutor is the facade surface the handlers call. Satisfied by *tutor.Engine;
// narrowed to an interface so handlers can be tested with a stub.
type Tutor interface {
	AssessUser(ctx context.Context, ic convo.InteractionContext) (tutor.AssessResult, *tutor.Failure)
	ProvideGuidance(ctx context.Context, ic convo.InteractionContext, question string) (tutor.GuidanceResult, *tutor.Failure)
	ValidateSolution(ctx context.Context, ic convo.InteractionContext, solution string) (tutor.ValidationResult, *tutor.Failure)
	HandleChat(ctx context.Context, ic convo.InteractionContext, message string) (tutor.ChatResult, *tutor.Failure)
	HealthCheck(ctx context.Context) error
}

// #endregion

// #region server

// Server is the thin HTTP boundary in front of the engine. Request
// validation happens here, before anything reaches the facade.
type Server struct {
	router *chi.Mux
	engine Tutor
	store  *store.Store // nil = no persistence
}

// NewServer wires the router. store may be nil for tests.
func NewServer(engine Tutor, st *store.Store) *Server {
	s := &Server{engine: engine, store: st}
	s.setupRouter()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// #endregion

// #region routes

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assess", s.handleAssess)
		r.Post("/guidance", s.handleGuidance)
		r.Post("/validate", s.handleValidate)
		r.Post("/chat", s.handleChat)

		r.Post("/calibration", s.handleCalibrate)
		r.Get("/calibration", s.handleLatestCalibration)
	})

	s.router = r
}

// #endregion
