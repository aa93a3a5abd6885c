// Package ui exposes the interview engine over a JSON HTTP API.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hirescope/internal"
	"hirescope/internal/session"
	"hirescope/ports"
)

// App represents the HTTP application
type App struct {
	router   *chi.Mux
	sessions *session.Manager
	renderer ports.ReportRenderer
	exporter ports.Exporter
	speech   ports.SpeechPort
	log      *internal.Logger
	port     string
}

// Config holds HTTP application configuration
type Config struct {
	Port     string
	Sessions *session.Manager
	Renderer ports.ReportRenderer
	Exporter ports.Exporter
	Speech   ports.SpeechPort
	Log      *internal.Logger
}

// NewApp creates a new HTTP application
func NewApp(config Config) *App {
	log := config.Log
	if log == nil {
		log = internal.DefaultLogger
	}
	app := &App{
		router:   chi.NewRouter(),
		sessions: config.Sessions,
		renderer: config.Renderer,
		exporter: config.Exporter,
		speech:   config.Speech,
		log:      log,
		port:     config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/interviews", a.handleStartInterview)
	a.router.Get("/api/interviews", a.handleListInterviews)
	a.router.Get("/api/interviews/{id}", a.handleGetInterview)
	a.router.Post("/api/interviews/{id}/answers", a.handleSubmitAnswer)
	a.router.Post("/api/interviews/{id}/end", a.handleEndInterview)
	a.router.Get("/api/interviews/{id}/report", a.handleGetReport)
	a.router.Get("/api/export", a.handleExport)
	a.router.Post("/api/transcribe", a.handleTranscribe)
}

// Router exposes the handler for tests and embedding.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.log.Info("starting interview server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
