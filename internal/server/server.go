// Package server is a local development backend that speaks the ARKODE HTTP
// contract. It serves a data source (normally the mock) over chi so the live
// client can be exercised end to end.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
)

// DefaultTokenTTL matches the backend's access token lifetime.
const DefaultTokenTTL = 30 * time.Minute

// Config for the HTTP handler.
type Config struct {
	Source source.DataSource

	// Secret signs login tokens. When empty, tokens are signed with a
	// random per-process key and no route requires one.
	Secret   string
	TokenTTL time.Duration

	Logger zerolog.Logger
	Now    func() time.Time
}

type server struct {
	ds      source.DataSource
	secret  []byte
	enforce bool
	ttl     time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

// New returns the HTTP handler.
func New(cfg Config) http.Handler {
	s := &server{
		ds:  cfg.Source,
		ttl: cfg.TokenTTL,
		log: cfg.Logger,
		now: cfg.Now,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTokenTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	if cfg.Secret != "" {
		s.secret = []byte(cfg.Secret)
		s.enforce = true
	} else {
		s.secret = randomSecret()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	if s.enforce {
		r.Use(s.newAuthMiddleware("/health", "/auth/login"))
	}

	r.Get("/health", s.handleHealth)
	r.Post("/auth/login", s.handleLogin)

	r.Get("/workspaces", s.handleListWorkspaces)
	r.Post("/workspaces", s.handleCreateWorkspace)

	r.Get("/projects", s.handleListProjects)
	r.Post("/projects", s.handleCreateProject)
	r.Get("/projects/{id}", s.handleGetProject)

	r.Route("/agency", func(r chi.Router) {
		r.Get("/leads", s.handleListLeads)
		r.Post("/leads", s.handleCreateLead)
		r.Get("/clients", s.handleListClients)
		r.Post("/clients", s.handleCreateClient)
		r.Get("/proposals", s.handleListProposals)
		r.Post("/proposals", s.handleCreateProposal)
		r.Get("/proposals/{id}", s.handleGetProposal)
		r.Get("/calendar", s.handleListCalendar)
		r.Post("/calendar", s.handleCreateCalendarItem)
	})

	r.Post("/orion/generate", s.handleGenerate)

	r.Get("/kb/articles", s.handleListArticles)
	r.Post("/kb/articles", s.handleCreateArticle)
	r.Get("/kb/articles/{id}", s.handleGetArticle)

	r.Post("/integrations/github/connect", s.handleConnectGitHub)
	r.Get("/integrations/github/repos", s.handleListRepos)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	return r
}

// requestID echoes X-Request-ID, minting one when the client sent none.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Str("request_id", w.Header().Get("X-Request-ID")).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// errorBody follows the backend's FastAPI-style envelope.
type errorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := errors.StatusOf(err)
	body := errorBody{Detail: "Internal Server Error"}
	if ae, ok := errors.As(err); ok && status < http.StatusInternalServerError {
		body = errorBody{Detail: ae.Message, Code: string(ae.Code)}
	} else {
		s.log.Error().Err(err).Msg("handler failed")
	}
	writeJSON(w, status, body)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errors.NewInvalidRequest("invalid JSON body: " + err.Error())
	}
	return nil
}
