package source

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// WithLogging decorates ds so every call emits one debug event with its
// duration and outcome.
func WithLogging(ds DataSource, logger zerolog.Logger) DataSource {
	return &logged{next: ds, log: logger.With().Str("component", "source").Logger()}
}

type logged struct {
	next DataSource
	log  zerolog.Logger
}

func observe[T any](l *logged, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	ev := l.log.Debug()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev.Str("op", op).Dur("took", time.Since(start)).Msg("data source call")
	return out, err
}

func (l *logged) Health(ctx context.Context) (model.Health, error) {
	return observe(l, "health", func() (model.Health, error) { return l.next.Health(ctx) })
}

func (l *logged) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	return observe(l, "login", func() (model.AuthResponse, error) { return l.next.Login(ctx, email, password) })
}

func (l *logged) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	return observe(l, "list_workspaces", func() ([]model.Workspace, error) { return l.next.ListWorkspaces(ctx) })
}

func (l *logged) CreateWorkspace(ctx context.Context, in model.NewWorkspace) (model.Workspace, error) {
	return observe(l, "create_workspace", func() (model.Workspace, error) { return l.next.CreateWorkspace(ctx, in) })
}

func (l *logged) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	return observe(l, "list_projects", func() ([]model.Project, error) { return l.next.ListProjects(ctx, workspaceID) })
}

func (l *logged) CreateProject(ctx context.Context, in model.NewProject) (model.Project, error) {
	return observe(l, "create_project", func() (model.Project, error) { return l.next.CreateProject(ctx, in) })
}

func (l *logged) GetProject(ctx context.Context, id string) (model.ProjectDetails, error) {
	return observe(l, "get_project", func() (model.ProjectDetails, error) { return l.next.GetProject(ctx, id) })
}

func (l *logged) ListLeads(ctx context.Context) ([]model.Lead, error) {
	return observe(l, "list_leads", func() ([]model.Lead, error) { return l.next.ListLeads(ctx) })
}

func (l *logged) CreateLead(ctx context.Context, in model.NewLead) (model.Lead, error) {
	return observe(l, "create_lead", func() (model.Lead, error) { return l.next.CreateLead(ctx, in) })
}

func (l *logged) ListClients(ctx context.Context) ([]model.Client, error) {
	return observe(l, "list_clients", func() ([]model.Client, error) { return l.next.ListClients(ctx) })
}

func (l *logged) CreateClient(ctx context.Context, in model.NewClient) (model.Client, error) {
	return observe(l, "create_client", func() (model.Client, error) { return l.next.CreateClient(ctx, in) })
}

func (l *logged) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	return observe(l, "list_proposals", func() ([]model.Proposal, error) { return l.next.ListProposals(ctx) })
}

func (l *logged) CreateProposal(ctx context.Context, in model.NewProposal) (model.Proposal, error) {
	return observe(l, "create_proposal", func() (model.Proposal, error) { return l.next.CreateProposal(ctx, in) })
}

func (l *logged) GetProposal(ctx context.Context, id string) (model.Proposal, error) {
	return observe(l, "get_proposal", func() (model.Proposal, error) { return l.next.GetProposal(ctx, id) })
}

func (l *logged) ListCalendar(ctx context.Context) ([]model.CalendarItem, error) {
	return observe(l, "list_calendar", func() ([]model.CalendarItem, error) { return l.next.ListCalendar(ctx) })
}

func (l *logged) CreateCalendarItem(ctx context.Context, in model.NewCalendarItem) (model.CalendarItem, error) {
	return observe(l, "create_calendar_item", func() (model.CalendarItem, error) { return l.next.CreateCalendarItem(ctx, in) })
}

func (l *logged) GenerateArtifact(ctx context.Context, in model.GenerateRequest) (model.Artifact, error) {
	return observe(l, "generate_artifact", func() (model.Artifact, error) { return l.next.GenerateArtifact(ctx, in) })
}

func (l *logged) ListArticles(ctx context.Context) ([]model.Article, error) {
	return observe(l, "list_articles", func() ([]model.Article, error) { return l.next.ListArticles(ctx) })
}

func (l *logged) CreateArticle(ctx context.Context, in model.NewArticle) (model.Article, error) {
	return observe(l, "create_article", func() (model.Article, error) { return l.next.CreateArticle(ctx, in) })
}

func (l *logged) GetArticle(ctx context.Context, id string) (model.Article, error) {
	return observe(l, "get_article", func() (model.Article, error) { return l.next.GetArticle(ctx, id) })
}

func (l *logged) ConnectGitHub(ctx context.Context) (model.GitHubConnection, error) {
	return observe(l, "connect_github", func() (model.GitHubConnection, error) { return l.next.ConnectGitHub(ctx) })
}

func (l *logged) ListGitHubRepos(ctx context.Context) ([]model.Repo, error) {
	return observe(l, "list_github_repos", func() ([]model.Repo, error) { return l.next.ListGitHubRepos(ctx) })
}
