package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/formcheck/internal/analysis"
	"github.com/abhisek/formcheck/internal/config"
)

// Status is the process-wide completion capability state reported by the
// health endpoint. Set once at startup.
type Status struct {
	// Available means the selected provider name is supported by this build.
	Available bool

	// Model is the model identifier the service would use.
	Model string
}

// Server serves the assessment API.
type Server struct {
	cfg    *config.Config
	svc    *analysis.Service
	status Status
	http   *http.Server
}

// New builds a Server around the analysis service.
func New(cfg *config.Config, svc *analysis.Service, status Status) *Server {
	s := &Server{
		cfg:    cfg,
		svc:    svc,
		status: status,
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router wires the HTTP routes and middleware. Exposed separately so
// handler tests can drive it without a listening socket.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost, http.MethodOptions)

	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware(s.cfg.CORSOrigins))

	return r
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on port %s", s.cfg.Port)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
		return err
	}
	log.Println("HTTP server gracefully stopped")
	return nil
}
