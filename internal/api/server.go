// Package api exposes the prediction pipeline over HTTP JSON.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/predict"
	"github.com/yourusername/matchcast/internal/store"
)

// DatabasePinger defines the interface for checking database connectivity.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// Config holds everything the HTTP server needs. Predictors maps backend
// names to ready prediction services; DefaultBackend must be a key of it.
type Config struct {
	ServiceName    string
	Version        string
	Commit         string
	Server         config.ServerConfig
	Metrics        config.MetricsConfig
	Predictors     map[string]*predict.Service
	DefaultBackend string
	// ConfidenceThreshold flags predictions whose top percentage falls
	// below it. Zero disables the check.
	ConfidenceThreshold float64
	Store               *store.Store
	Artifact            *ml.Artifact
	DB                  DatabasePinger
	Logger              *logrus.Logger
}

// Server serves the prediction API plus health and metrics endpoints.
type Server struct {
	serviceName    string
	version        string
	commit         string
	cfg            config.ServerConfig
	metricsCfg     config.MetricsConfig
	predictors     map[string]*predict.Service
	defaultBackend string
	confThreshold  float64
	store          *store.Store
	artifact       *ml.Artifact
	db             DatabasePinger
	logger         *logrus.Logger
	validate       *validator.Validate

	server *http.Server

	mu    sync.RWMutex
	ready bool
}

// NewServer creates the API server. It does not start listening.
func NewServer(cfg Config) *Server {
	return &Server{
		serviceName:    cfg.ServiceName,
		version:        cfg.Version,
		commit:         cfg.Commit,
		cfg:            cfg.Server,
		metricsCfg:     cfg.Metrics,
		predictors:     cfg.Predictors,
		defaultBackend: cfg.DefaultBackend,
		confThreshold:  cfg.ConfidenceThreshold,
		store:          cfg.Store,
		artifact:       cfg.Artifact,
		db:             cfg.DB,
		logger:         cfg.Logger,
		validate:       validator.New(),
	}
}

// SetReady marks the server as ready to accept prediction traffic.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// IsReady returns whether the server is ready.
func (s *Server) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Router assembles the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.metricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleTeams)
		r.Post("/predict", s.handlePredict)
		r.Get("/model-info", s.handleModelInfo)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Get("/live", s.handleLive)
	if s.metricsCfg.Enabled {
		path := s.metricsCfg.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, metrics.Handler())
	}

	return r
}

func (s *Server) corsOrigins() []string {
	if len(s.cfg.CORSOrigins) > 0 {
		return s.cfg.CORSOrigins
	}
	return []string{"*"}
}

// Start starts the HTTP server in the background and shuts it down when the
// context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.cfg.ListenAddr(),
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.WithFields(logrus.Fields{
			"addr":    s.server.Addr,
			"service": s.serviceName,
		}).Info("API server starting")

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("API server error")
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("API server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
