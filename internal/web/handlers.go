package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
)

// Handlers contains HTTP route handlers for the dashboard.
type Handlers struct {
	app      *ops.App
	renderer *Renderer
	flash    *flash
	log      zerolog.Logger
}

func (h *Handlers) page(title, nav string) PageData {
	st := h.app.Stores
	return PageData{
		Title:     title,
		AppName:   config.AppName,
		Version:   h.renderer.version,
		Nav:       nav,
		Mode:      h.app.Mode,
		User:      st.Auth.State().User,
		Workspace: st.Workspace.Active(),
		Toasts:    h.flash.drain(),
	}
}

// redirect sends the browser back after a form post. Guard failures never
// reach the notifier, so they are flashed here.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, to string, err error) {
	if err != nil && errors.Is(err, errors.ErrInvalidRequest) {
		ae, _ := errors.As(err)
		h.flash.Notify(ops.Notification{Title: "Invalid input", Description: ae.Message, Variant: ops.VariantDestructive})
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func form(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// HandleDashboard handles GET /.
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.app.LoadDashboard(r.Context())
	if err != nil {
		h.log.Debug().Err(err).Msg("dashboard partially loaded")
	}
	h.renderer.renderPage(w, "dashboard", DashboardPageData{
		PageData:  h.page("Dashboard", "dashboard"),
		Dashboard: d,
		NewLeads:  h.app.Stores.Agency.NewLeads(),
	})
}

func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.Login(r.Context(), form(r, "email"), r.PostFormValue("password"))
	h.redirect(w, r, "/", err)
}

func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	err := h.app.Logout(r.Context())
	h.redirect(w, r, "/", err)
}

// Workspaces

func (h *Handlers) HandleWorkspaces(w http.ResponseWriter, r *http.Request) {
	_, _ = h.app.LoadWorkspaces(r.Context())
	h.renderer.renderPage(w, "workspaces", WorkspacesPageData{
		PageData:   h.page("Workspaces", "workspaces"),
		Workspaces: h.app.Stores.Workspace.Workspaces(),
	})
}

func (h *Handlers) HandleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateWorkspace(r.Context(), form(r, "name"))
	h.redirect(w, r, "/workspaces", err)
}

func (h *Handlers) HandleSelectWorkspace(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.SelectWorkspace(r.Context(), chi.URLParam(r, "id"))
	h.redirect(w, r, "/projects", err)
}

// Projects

func (h *Handlers) HandleProjects(w http.ResponseWriter, r *http.Request) {
	if h.app.Stores.Workspace.Active() == nil {
		_, _ = h.app.LoadWorkspaces(r.Context())
	}
	if _, err := h.app.LoadProjects(r.Context()); err != nil && errors.Is(err, errors.ErrInvalidRequest) {
		http.Redirect(w, r, "/workspaces", http.StatusSeeOther)
		return
	}
	h.renderer.renderPage(w, "projects", ProjectsPageData{
		PageData: h.page("Projects", "projects"),
		Projects: h.app.Stores.Project.Projects.Items(),
	})
}

func (h *Handlers) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateProject(r.Context(), form(r, "name"))
	h.redirect(w, r, "/projects", err)
}

func (h *Handlers) HandleProject(w http.ResponseWriter, r *http.Request) {
	d, err := h.app.OpenProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderer.renderError(w, r, h.page("Project", "projects"), err)
		return
	}
	h.renderer.renderPage(w, "project", ProjectPageData{
		PageData: h.page(d.Name, "projects"),
		Project:  d,
	})
}

// Agency

func (h *Handlers) HandleAgency(w http.ResponseWriter, r *http.Request) {
	_ = h.app.LoadAgency(r.Context())
	a := h.app.Stores.Agency
	h.renderer.renderPage(w, "agency", AgencyPageData{
		PageData:  h.page("Agency", "agency"),
		Leads:     a.Leads.Items(),
		Clients:   a.Clients.Items(),
		Proposals: a.Proposals.Items(),
		Calendar:  a.Calendar.Items(),
	})
}

func (h *Handlers) HandleCreateLead(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateLead(r.Context(), model.NewLead{
		Name:     form(r, "name"),
		Email:    form(r, "email"),
		Status:   model.LeadStatus(form(r, "status")),
		NextStep: form(r, "next_step"),
	})
	h.redirect(w, r, "/agency", err)
}

func (h *Handlers) HandleCreateClient(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateClient(r.Context(), model.NewClient{Name: form(r, "name"), Segment: form(r, "segment")})
	h.redirect(w, r, "/agency", err)
}

func (h *Handlers) HandleCreateProposal(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateProposal(r.Context(), model.NewProposal{
		Title:    form(r, "title"),
		Status:   model.ProposalStatus(form(r, "status")),
		Markdown: r.PostFormValue("markdown"),
	})
	h.redirect(w, r, "/agency", err)
}

func (h *Handlers) HandleProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.OpenProposal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderer.renderError(w, r, h.page("Proposal", "agency"), err)
		return
	}
	html, outline := h.renderer.renderMarkdown(p.Markdown)
	h.renderer.renderPage(w, "document", DocumentPageData{
		PageData:     h.page(p.Title, "agency"),
		Heading:      p.Title,
		Subtitle:     string(p.Status),
		RenderedHTML: html,
		Outline:      outline,
	})
}

func (h *Handlers) HandleCreateCalendarItem(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateCalendarItem(r.Context(), model.NewCalendarItem{
		Title:  form(r, "title"),
		Date:   form(r, "date"),
		Status: model.CalendarStatus(form(r, "status")),
	})
	h.redirect(w, r, "/agency", err)
}

// Knowledge base

// HandleKnowledge handles GET /kb?q=...&tag=...&tag=...
func (h *Handlers) HandleKnowledge(w http.ResponseWriter, r *http.Request) {
	if h.app.Stores.Knowledge.Articles.Len() == 0 || r.URL.Query().Get("refresh") != "" {
		_, _ = h.app.LoadArticles(r.Context())
	}
	q := r.URL.Query().Get("q")
	tags := r.URL.Query()["tag"]
	articles := h.app.SearchArticles(q, tags)
	h.renderer.renderPage(w, "knowledge", KnowledgePageData{
		PageData: h.page("Knowledge Base", "kb"),
		Articles: articles,
		Tags:     h.app.Stores.Knowledge.Tags(),
		Query:    q,
		Selected: tags,
	})
}

func (h *Handlers) HandleCreateArticle(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.CreateArticle(r.Context(), form(r, "title"), r.PostFormValue("tags"), r.PostFormValue("markdown"))
	h.redirect(w, r, "/kb", err)
}

func (h *Handlers) HandleArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.app.OpenArticle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderer.renderError(w, r, h.page("Article", "kb"), err)
		return
	}
	html, outline := h.renderer.renderMarkdown(a.Markdown)
	h.renderer.renderPage(w, "document", DocumentPageData{
		PageData:     h.page(a.Title, "kb"),
		Heading:      a.Title,
		Subtitle:     "Updated " + formatDate(a.UpdatedAt),
		Tags:         a.Tags,
		RenderedHTML: html,
		Outline:      outline,
	})
}

// ORION

func (h *Handlers) HandleOrion(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, "orion", OrionPageData{
		PageData:  h.page("ORION", "orion"),
		Session:   h.app.Stores.Orion.CurrentSession(),
		Artifacts: h.app.Stores.Orion.Artifacts(),
		Types:     []model.ArtifactType{model.ArtifactBacklog, model.ArtifactProposal, model.ArtifactContentPlan},
	})
}

func (h *Handlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.GenerateArtifact(r.Context(), model.GenerateRequest{
		Type:   model.ArtifactType(form(r, "type")),
		Prompt: form(r, "prompt"),
	})
	h.redirect(w, r, "/orion", err)
}

func (h *Handlers) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	_, err := h.app.SendMessage(r.Context(), r.PostFormValue("content"))
	h.redirect(w, r, "/orion", err)
}

// Integrations

func (h *Handlers) HandleIntegrations(w http.ResponseWriter, r *http.Request) {
	data := IntegrationsPageData{PageData: h.page("Integrations", "integrations")}
	if r.URL.Query().Get("repos") != "" {
		repos, err := h.app.ListGitHubRepos(r.Context())
		if err == nil {
			data.Connected = true
			data.Repos = repos
		}
	}
	h.renderer.renderPage(w, "integrations", data)
}

func (h *Handlers) HandleConnectGitHub(w http.ResponseWriter, r *http.Request) {
	ok, err := h.app.ConnectGitHub(r.Context())
	to := "/integrations"
	if err == nil && ok {
		to = "/integrations?repos=1"
	}
	h.redirect(w, r, to, err)
}
