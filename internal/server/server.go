// Package server provides the HTTP JSON API for the resume screener.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jfields/resume-screener/internal/semantic"
	"github.com/jfields/resume-screener/internal/types"
)

// Config holds server configuration
type Config struct {
	Port          int
	Vocabulary    *types.SkillVocabulary
	Semantic      semantic.Scorer
	MergeOverlaps bool
}

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	vocabulary    *types.SkillVocabulary
	semantic      semantic.Scorer
	mergeOverlaps bool
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		vocabulary:    cfg.Vocabulary,
		semantic:      cfg.Semantic,
		mergeOverlaps: cfg.MergeOverlaps,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /screen", s.handleScreen)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // covers the semantic lookup
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withLogging logs each request with method, path, and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
