// Package web serves the dashboard UI: server-rendered pages over the ops
// layer, with forms for the create operations.
package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// flash queues notifications until the next page render.
type flash struct {
	mu      sync.Mutex
	pending []ops.Notification
	next    ops.Notifier
}

func (f *flash) Notify(n ops.Notification) {
	f.mu.Lock()
	f.pending = append(f.pending, n)
	f.mu.Unlock()
	if f.next != nil {
		f.next.Notify(n)
	}
}

func (f *flash) drain() []ops.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}

// NewHandler builds the dashboard router. It takes over app's notifier,
// forwarding to the previous one.
func NewHandler(app *ops.App, version string, logger zerolog.Logger) http.Handler {
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	fl := &flash{next: app.Notifier}
	app.Notifier = fl

	h := &Handlers{
		app:      app,
		renderer: NewRenderer(templateSub, version, logger),
		flash:    fl,
		log:      logger,
	}

	r := chi.NewRouter()
	r.Use(securityHeaders)
	// Form posts from other origins are refused.
	r.Use(http.NewCrossOriginProtection().Handler)

	r.Get("/", h.HandleDashboard)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)

	r.Get("/workspaces", h.HandleWorkspaces)
	r.Post("/workspaces", h.HandleCreateWorkspace)
	r.Post("/workspaces/{id}/select", h.HandleSelectWorkspace)

	r.Get("/projects", h.HandleProjects)
	r.Post("/projects", h.HandleCreateProject)
	r.Get("/projects/{id}", h.HandleProject)

	r.Get("/agency", h.HandleAgency)
	r.Post("/agency/leads", h.HandleCreateLead)
	r.Post("/agency/clients", h.HandleCreateClient)
	r.Post("/agency/proposals", h.HandleCreateProposal)
	r.Get("/agency/proposals/{id}", h.HandleProposal)
	r.Post("/agency/calendar", h.HandleCreateCalendarItem)

	r.Get("/kb", h.HandleKnowledge)
	r.Post("/kb", h.HandleCreateArticle)
	r.Get("/kb/{id}", h.HandleArticle)

	r.Get("/orion", h.HandleOrion)
	r.Post("/orion/generate", h.HandleGenerate)
	r.Post("/orion/messages", h.HandleSendMessage)

	r.Get("/integrations", h.HandleIntegrations)
	r.Post("/integrations/github/connect", h.HandleConnectGitHub)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticSub)))
	return r
}

// NewServer wraps the dashboard handler in an http.Server bound to addr.
func NewServer(app *ops.App, version, addr string, logger zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHandler(app, version, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts srv and shuts it down on SIGINT/SIGTERM or when ctx ends.
func Run(ctx context.Context, srv *http.Server, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info().Str("addr", "http://"+srv.Addr).Msg("listening")
	if strings.HasPrefix(srv.Addr, "0.0.0.0") || strings.HasPrefix(srv.Addr, "[::]") || strings.HasPrefix(srv.Addr, ":") {
		logger.Warn().Msg("binding to all interfaces; the server may be reachable from the network")
	}

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
