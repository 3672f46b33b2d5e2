// Package devstore is a development implementation of the board's remote
// store protocol: a single JSON document of notes served over HTTP with
// full-replace reads and writes. It exists so the sync client can be
// exercised end to end without a hosted endpoint; it is not the product's
// persistence layer.
package devstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/awexler/corkboard/pkg/adapters/remote"
	"github.com/awexler/corkboard/pkg/core"
)

// Server holds the full note set in memory and optionally persists it to
// a JSON document on disk.
type Server struct {
	mu    sync.RWMutex
	notes []core.Note

	path string
	log  *slog.Logger
}

// Config holds the configuration for the dev store.
type Config struct {
	// Path is an optional JSON document used for persistence. Empty means
	// memory only.
	Path string

	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// boardDocument is the on-disk and on-wire shape of the store.
type boardDocument struct {
	Notes []core.Note `json:"notes"`
}

// New creates a dev store, loading the persistence file when configured.
// A missing file starts empty; a corrupted file is logged and reset rather
// than refusing to start.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		notes: []core.Note{},
		path:  cfg.Path,
		log:   logger,
	}
	if cfg.Path != "" {
		if err := s.loadFile(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) loadFile() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read board file: %w", err)
	}

	var doc boardDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("board file is corrupted, starting empty", "path", s.path, "error", err)
		return nil
	}
	if doc.Notes == nil {
		doc.Notes = []core.Note{}
	}

	s.mu.Lock()
	s.notes = doc.Notes
	s.mu.Unlock()
	return nil
}

func (s *Server) persist() error {
	if s.path == "" {
		return nil
	}
	s.mu.RLock()
	doc := boardDocument{Notes: s.notes}
	raw, err := json.MarshalIndent(doc, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode board file: %w", err)
	}
	return writeFileAtomic(s.path, raw, 0644)
}

// Notes returns a copy of the current note set.
func (s *Server) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Handler returns the HTTP surface: GET/POST on /board plus /health, with
// CORS headers for a browser-resident render layer.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.Methods(http.MethodGet).Path("/board").HandlerFunc(s.handleGet)
	r.Methods(http.MethodPost).Path("/board").HandlerFunc(s.handlePost)
	r.Methods(http.MethodGet).Path("/health").HandlerFunc(s.handleHealth)
	return withCORS(r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("handled", "method", r.Method, "url", r.URL.Path, "duration", time.Since(start))
	})
}

// withCORS adds CORS headers for frontend development.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	doc := boardDocument{Notes: s.notes}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	var doc boardDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "invalid"})
		return
	}
	if doc.Notes == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "invalid"})
		return
	}

	s.mu.Lock()
	s.notes = doc.Notes
	s.mu.Unlock()

	if err := s.persist(); err != nil {
		s.log.Error("failed to persist board", "error", err)
		writeJSON(w, http.StatusOK, map[string]string{"status": "persist-failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": remote.StatusSuccess})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
