package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h, err := s.ds.Health(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin checks the credentials against the data source and swaps its
// token for a signed JWT.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.ds.Login(r.Context(), strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		s.writeError(w, err)
		return
	}
	token, err := signToken(s.secret, res.User.ID, s.now(), s.ttl)
	if err != nil {
		s.writeError(w, errors.NewInternal(err))
		return
	}
	writeJSON(w, http.StatusOK, model.AuthResponse{Token: token, User: res.User})
}

func (s *server) handleListWorkspaces(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListWorkspaces(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var in model.NewWorkspace
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	ws, err := s.ds.CreateWorkspace(r.Context(), in)
	respond(s, w, http.StatusCreated, ws, err)
}

func (s *server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	wsID := r.URL.Query().Get("workspace_id")
	if wsID == "" {
		s.writeError(w, errors.NewInvalidRequest("workspace_id is required"))
		return
	}
	list, err := s.ds.ListProjects(r.Context(), wsID)
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in model.NewProject
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	p, err := s.ds.CreateProject(r.Context(), in)
	respond(s, w, http.StatusCreated, p, err)
}

func (s *server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	d, err := s.ds.GetProject(r.Context(), chi.URLParam(r, "id"))
	respond(s, w, http.StatusOK, d, err)
}

func (s *server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListLeads(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var in model.NewLead
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	l, err := s.ds.CreateLead(r.Context(), in)
	respond(s, w, http.StatusCreated, l, err)
}

func (s *server) handleListClients(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListClients(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var in model.NewClient
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.ds.CreateClient(r.Context(), in)
	respond(s, w, http.StatusCreated, c, err)
}

func (s *server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListProposals(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var in model.NewProposal
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	p, err := s.ds.CreateProposal(r.Context(), in)
	respond(s, w, http.StatusCreated, p, err)
}

func (s *server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	p, err := s.ds.GetProposal(r.Context(), chi.URLParam(r, "id"))
	respond(s, w, http.StatusOK, p, err)
}

func (s *server) handleListCalendar(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListCalendar(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateCalendarItem(w http.ResponseWriter, r *http.Request) {
	var in model.NewCalendarItem
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	item, err := s.ds.CreateCalendarItem(r.Context(), in)
	respond(s, w, http.StatusCreated, item, err)
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in model.GenerateRequest
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	if in.Type == "" {
		s.writeError(w, errors.NewInvalidRequest("type is required"))
		return
	}
	a, err := s.ds.GenerateArtifact(r.Context(), in)
	respond(s, w, http.StatusOK, a, err)
}

func (s *server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	list, err := s.ds.ListArticles(r.Context())
	respond(s, w, http.StatusOK, list, err)
}

func (s *server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var in model.NewArticle
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	a, err := s.ds.CreateArticle(r.Context(), in)
	respond(s, w, http.StatusCreated, a, err)
}

func (s *server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.ds.GetArticle(r.Context(), chi.URLParam(r, "id"))
	respond(s, w, http.StatusOK, a, err)
}

func (s *server) handleConnectGitHub(w http.ResponseWriter, r *http.Request) {
	c, err := s.ds.ConnectGitHub(r.Context())
	respond(s, w, http.StatusOK, c, err)
}

func (s *server) handleListRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := s.ds.ListGitHubRepos(r.Context())
	respond(s, w, http.StatusOK, repos, err)
}

func respond[T any](s *server, w http.ResponseWriter, status int, v T, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, status, v)
}
