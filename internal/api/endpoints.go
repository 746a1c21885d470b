package api

import (
	"context"
	"net/url"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var out model.Health
	err := c.get(ctx, "/health", &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out model.AuthResponse
	err := c.post(ctx, "/auth/login", body, &out)
	return out, err
}

// Workspaces

func (c *Client) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	var out []model.Workspace
	err := c.get(ctx, "/workspaces", &out)
	return out, err
}

func (c *Client) CreateWorkspace(ctx context.Context, in model.NewWorkspace) (model.Workspace, error) {
	var out model.Workspace
	err := c.post(ctx, "/workspaces", in, &out)
	return out, err
}

// Projects

func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	q := url.Values{"workspace_id": {workspaceID}}
	var out []model.Project
	err := c.get(ctx, "/projects?"+q.Encode(), &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, in model.NewProject) (model.Project, error) {
	var out model.Project
	err := c.post(ctx, "/projects", in, &out)
	return out, err
}

func (c *Client) GetProject(ctx context.Context, id string) (model.ProjectDetails, error) {
	var out model.ProjectDetails
	err := c.get(ctx, "/projects/"+url.PathEscape(id), &out)
	return out, err
}

// Agency

func (c *Client) ListLeads(ctx context.Context) ([]model.Lead, error) {
	var out []model.Lead
	err := c.get(ctx, "/agency/leads", &out)
	return out, err
}

func (c *Client) CreateLead(ctx context.Context, in model.NewLead) (model.Lead, error) {
	var out model.Lead
	err := c.post(ctx, "/agency/leads", in, &out)
	return out, err
}

func (c *Client) ListClients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	err := c.get(ctx, "/agency/clients", &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, in model.NewClient) (model.Client, error) {
	var out model.Client
	err := c.post(ctx, "/agency/clients", in, &out)
	return out, err
}

func (c *Client) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	var out []model.Proposal
	err := c.get(ctx, "/agency/proposals", &out)
	return out, err
}

func (c *Client) CreateProposal(ctx context.Context, in model.NewProposal) (model.Proposal, error) {
	var out model.Proposal
	err := c.post(ctx, "/agency/proposals", in, &out)
	return out, err
}

func (c *Client) GetProposal(ctx context.Context, id string) (model.Proposal, error) {
	var out model.Proposal
	err := c.get(ctx, "/agency/proposals/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) ListCalendar(ctx context.Context) ([]model.CalendarItem, error) {
	var out []model.CalendarItem
	err := c.get(ctx, "/agency/calendar", &out)
	return out, err
}

func (c *Client) CreateCalendarItem(ctx context.Context, in model.NewCalendarItem) (model.CalendarItem, error) {
	var out model.CalendarItem
	err := c.post(ctx, "/agency/calendar", in, &out)
	return out, err
}

// Orion

func (c *Client) GenerateArtifact(ctx context.Context, in model.GenerateRequest) (model.Artifact, error) {
	var out model.Artifact
	err := c.post(ctx, "/orion/generate", in, &out)
	return out, err
}

// Knowledge base

func (c *Client) ListArticles(ctx context.Context) ([]model.Article, error) {
	var out []model.Article
	err := c.get(ctx, "/kb/articles", &out)
	return out, err
}

func (c *Client) CreateArticle(ctx context.Context, in model.NewArticle) (model.Article, error) {
	var out model.Article
	err := c.post(ctx, "/kb/articles", in, &out)
	return out, err
}

func (c *Client) GetArticle(ctx context.Context, id string) (model.Article, error) {
	var out model.Article
	err := c.get(ctx, "/kb/articles/"+url.PathEscape(id), &out)
	return out, err
}

// Integrations

func (c *Client) ConnectGitHub(ctx context.Context) (model.GitHubConnection, error) {
	var out model.GitHubConnection
	err := c.post(ctx, "/integrations/github/connect", nil, &out)
	return out, err
}

func (c *Client) ListGitHubRepos(ctx context.Context) ([]model.Repo, error) {
	var out []model.Repo
	err := c.get(ctx, "/integrations/github/repos", &out)
	return out, err
}
