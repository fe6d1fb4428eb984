// Package routes exposes the profile and plan operations over HTTP.
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/aidoc"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/plan"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/store"
)

// Planner runs one plan-generation attempt.
type Planner interface {
	Generate(ctx context.Context, p *profile.AthleteProfile) (*plan.Plan, error)
}

type Server struct {
	Router  *chi.Mux
	Store   *store.Store
	Planner Planner
	Log     zerolog.Logger
}

type ServerOptions struct {
	Store   *store.Store
	Planner Planner
	Log     zerolog.Logger
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Store: opts.Store, Planner: opts.Planner, Log: opts.Log}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.Log.Error().Err(err).Msg("write health check response")
		}
	})

	r.Get("/profile", s.handleProfileInfo)
	r.Get("/profile/document", s.handleProfileDocument)
	r.Get("/profile/aidoc", s.handleProfileAIDoc)
	r.Post("/plan", s.handleGeneratePlan)

	return s
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// handleProfileInfo returns file metadata plus the completeness state of
// the stored profile.
func (s *Server) handleProfileInfo(w http.ResponseWriter, r *http.Request) {
	info := s.Store.ProbeInfo()
	if !info.Exists {
		s.writeError(w, http.StatusNotFound, "no hay perfil guardado")
		return
	}
	p := s.Store.Load()
	score := aidoc.Score(p)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"athlete_name":   info.AthleteName,
		"path":           info.Path,
		"size_bytes":     info.SizeBytes,
		"modified":       info.Modified,
		"is_complete":    p.IsComplete(),
		"missing_fields": p.MissingFields(),
		"completeness":   score,
	})
}

func (s *Server) handleProfileDocument(w http.ResponseWriter, r *http.Request) {
	if !s.Store.Exists() {
		s.writeError(w, http.StatusNotFound, "no hay perfil guardado")
		return
	}
	s.writeJSON(w, http.StatusOK, s.Store.Load().ToDocument())
}

func (s *Server) handleProfileAIDoc(w http.ResponseWriter, r *http.Request) {
	if !s.Store.Exists() {
		s.writeError(w, http.StatusNotFound, "no hay perfil guardado")
		return
	}
	s.writeJSON(w, http.StatusOK, aidoc.Transform(s.Store.Load()))
}

// handleGeneratePlan runs a single synchronous attempt against the stored
// profile. An incomplete profile is a client error; a transport or
// validation failure maps to 502.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	if s.Planner == nil {
		s.writeError(w, http.StatusServiceUnavailable, "generación de planes no configurada, falta GEMINI_API_KEY")
		return
	}
	if !s.Store.Exists() {
		s.writeError(w, http.StatusNotFound, "no hay perfil guardado")
		return
	}

	p := s.Store.Load()
	result, err := s.Planner.Generate(r.Context(), p)
	if err != nil {
		var incomplete *plan.IncompleteProfileError
		if errors.As(err, &incomplete) {
			s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":          "perfil incompleto para generar plan",
				"missing_fields": incomplete.Missing,
			})
			return
		}
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}
