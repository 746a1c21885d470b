package mock

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (m *Mock) Health(ctx context.Context) (model.Health, error) {
	if err := wait(ctx, m.delays.Health); err != nil {
		return model.Health{}, err
	}
	return model.Health{OK: true}, nil
}

// Login accepts only the demo credentials. It is not a security boundary.
func (m *Mock) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	if err := wait(ctx, m.delays.Login); err != nil {
		return model.AuthResponse{}, err
	}
	if email != DemoEmail || password != DemoPassword {
		return model.AuthResponse{}, errors.NewInvalidCredentials()
	}
	return model.AuthResponse{
		Token: "mock_jwt_token_" + strconv.FormatInt(m.now().UnixMilli(), 10),
		User:  DemoUser,
	}, nil
}

// Workspaces

func (m *Mock) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.workspaces), nil
}

func (m *Mock) CreateWorkspace(ctx context.Context, in model.NewWorkspace) (model.Workspace, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Workspace{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Workspace{}, errors.NewInvalidRequest("name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	ws := model.Workspace{ID: m.newID(), Name: name, Slug: model.Slugify(name)}
	m.workspaces = append(m.workspaces, ws)
	return ws, nil
}

// Projects

func (m *Mock) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Project{}
	for _, p := range m.projects {
		if p.WorkspaceID == workspaceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Mock) CreateProject(ctx context.Context, in model.NewProject) (model.Project, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Project{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Project{}, errors.NewInvalidRequest("name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.ContainsFunc(m.workspaces, func(w model.Workspace) bool { return w.ID == in.WorkspaceID }) {
		return model.Project{}, errors.NewNotFound("Workspace", in.WorkspaceID)
	}
	p := model.Project{
		ID:          m.newID(),
		Name:        name,
		Status:      model.ProjectActive,
		WorkspaceID: in.WorkspaceID,
	}
	m.projects = append(m.projects, p)
	return p, nil
}

// GetProject returns the project with stats. Stats are re-rolled on every
// call unless the mock was built with StableStats.
func (m *Mock) GetProject(ctx context.Context, id string) (model.ProjectDetails, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.ProjectDetails{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.projects, func(p model.Project) bool { return p.ID == id })
	if i < 0 {
		return model.ProjectDetails{}, errors.NewNotFound("Project", id)
	}

	stats, ok := m.stats[id]
	if !ok || !m.stableStats {
		stats = model.ProjectStats{
			Stories: m.rng.IntN(50) + 10,
			Tasks:   m.rng.IntN(100) + 20,
		}
		if m.stableStats {
			m.stats[id] = stats
		}
	}
	return model.ProjectDetails{Project: m.projects[i], Stats: stats}, nil
}

// Agency

func (m *Mock) ListLeads(ctx context.Context) ([]model.Lead, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.leads), nil
}

func (m *Mock) CreateLead(ctx context.Context, in model.NewLead) (model.Lead, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Lead{}, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return model.Lead{}, errors.NewInvalidRequest("name and email are required")
	}
	status := in.Status
	if status == "" {
		status = model.LeadNew
	}
	if !status.Valid() {
		return model.Lead{}, errors.NewInvalidRequest("invalid lead status: " + string(status))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	lead := model.Lead{
		ID:       m.newID(),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Status:   status,
		NextStep: strings.TrimSpace(in.NextStep),
	}
	m.leads = append(m.leads, lead)
	return lead, nil
}

func (m *Mock) ListClients(ctx context.Context) ([]model.Client, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.clients), nil
}

func (m *Mock) CreateClient(ctx context.Context, in model.NewClient) (model.Client, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Client{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Client{}, errors.NewInvalidRequest("name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c := model.Client{ID: m.newID(), Name: strings.TrimSpace(in.Name), Segment: strings.TrimSpace(in.Segment)}
	m.clients = append(m.clients, c)
	return c, nil
}

func (m *Mock) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Proposal, len(m.proposals))
	for i, p := range m.proposals {
		// Lists carry summaries; markdown is served by GetProposal.
		p.Markdown = ""
		out[i] = p
	}
	return out, nil
}

func (m *Mock) CreateProposal(ctx context.Context, in model.NewProposal) (model.Proposal, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Proposal{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Proposal{}, errors.NewInvalidRequest("title is required")
	}
	status := in.Status
	if status == "" {
		status = model.ProposalDraft
	}
	if !status.Valid() {
		return model.Proposal{}, errors.NewInvalidRequest("invalid proposal status: " + string(status))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p := model.Proposal{ID: m.newID(), Title: strings.TrimSpace(in.Title), Status: status, Markdown: in.Markdown}
	m.proposals = append(m.proposals, p)
	return p, nil
}

// GetProposal fills in default markdown on first access and keeps it.
func (m *Mock) GetProposal(ctx context.Context, id string) (model.Proposal, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Proposal{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.proposals, func(p model.Proposal) bool { return p.ID == id })
	if i < 0 {
		return model.Proposal{}, errors.NewNotFound("Proposal", id)
	}
	if m.proposals[i].Markdown == "" {
		m.proposals[i].Markdown = defaultProposalMarkdown(m.proposals[i].Title)
	}
	return m.proposals[i], nil
}

func (m *Mock) ListCalendar(ctx context.Context) ([]model.CalendarItem, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calendar), nil
}

func (m *Mock) CreateCalendarItem(ctx context.Context, in model.NewCalendarItem) (model.CalendarItem, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.CalendarItem{}, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" {
		return model.CalendarItem{}, errors.NewInvalidRequest("title and date are required")
	}
	if !model.ValidDate(strings.TrimSpace(in.Date)) {
		return model.CalendarItem{}, errors.NewInvalidRequest("date must be YYYY-MM-DD or RFC 3339: " + in.Date)
	}
	status := in.Status
	if status == "" {
		status = model.CalendarDraft
	}
	if !status.Valid() {
		return model.CalendarItem{}, errors.NewInvalidRequest("invalid calendar status: " + string(status))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	item := model.CalendarItem{ID: m.newID(), Title: strings.TrimSpace(in.Title), Date: strings.TrimSpace(in.Date), Status: status}
	m.calendar = append(m.calendar, item)
	return item, nil
}

// Knowledge base

func (m *Mock) ListArticles(ctx context.Context) ([]model.Article, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Article, len(m.articles))
	for i, a := range m.articles {
		out[i] = cloneArticle(a)
	}
	return out, nil
}

func (m *Mock) CreateArticle(ctx context.Context, in model.NewArticle) (model.Article, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Article{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Article{}, errors.NewInvalidRequest("title is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a := model.Article{
		ID:        m.newID(),
		Title:     strings.TrimSpace(in.Title),
		Tags:      model.ParseTags(strings.Join(in.Tags, ",")),
		UpdatedAt: m.timestamp(),
		Markdown:  in.Markdown,
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	m.articles = append(m.articles, a)
	return cloneArticle(a), nil
}

// GetArticle fills in default markdown on first access and keeps it.
func (m *Mock) GetArticle(ctx context.Context, id string) (model.Article, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.Article{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.articles, func(a model.Article) bool { return a.ID == id })
	if i < 0 {
		return model.Article{}, errors.NewNotFound("Article", id)
	}
	if m.articles[i].Markdown == "" {
		m.articles[i].Markdown = defaultArticleMarkdown(m.articles[i].Title)
	}
	return cloneArticle(m.articles[i]), nil
}

// Integrations

func (m *Mock) ConnectGitHub(ctx context.Context) (model.GitHubConnection, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return model.GitHubConnection{}, err
	}
	m.mu.Lock()
	m.connected = true
	m.mu.Unlock()
	return model.GitHubConnection{OK: true}, nil
}

func (m *Mock) ListGitHubRepos(ctx context.Context) ([]model.Repo, error) {
	if err := wait(ctx, m.delays.Default); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.repos), nil
}

// GitHubConnected reports whether ConnectGitHub has been called.
func (m *Mock) GitHubConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func cloneArticle(a model.Article) model.Article {
	a.Tags = slices.Clone(a.Tags)
	return a
}
