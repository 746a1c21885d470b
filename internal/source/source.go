// Package source is the data-source switch: per-domain repository
// interfaces with a mock and a live implementation, selected once at start.
package source

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

type HealthChecker interface {
	Health(ctx context.Context) (model.Health, error)
}

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
}

type WorkspaceRepository interface {
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	CreateWorkspace(ctx context.Context, in model.NewWorkspace) (model.Workspace, error)
}

type ProjectRepository interface {
	ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error)
	CreateProject(ctx context.Context, in model.NewProject) (model.Project, error)
	GetProject(ctx context.Context, id string) (model.ProjectDetails, error)
}

type AgencyRepository interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
	CreateLead(ctx context.Context, in model.NewLead) (model.Lead, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, in model.NewClient) (model.Client, error)
	ListProposals(ctx context.Context) ([]model.Proposal, error)
	CreateProposal(ctx context.Context, in model.NewProposal) (model.Proposal, error)
	GetProposal(ctx context.Context, id string) (model.Proposal, error)
	ListCalendar(ctx context.Context) ([]model.CalendarItem, error)
	CreateCalendarItem(ctx context.Context, in model.NewCalendarItem) (model.CalendarItem, error)
}

type OrionRepository interface {
	GenerateArtifact(ctx context.Context, in model.GenerateRequest) (model.Artifact, error)
}

type KnowledgeRepository interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	CreateArticle(ctx context.Context, in model.NewArticle) (model.Article, error)
	GetArticle(ctx context.Context, id string) (model.Article, error)
}

type IntegrationRepository interface {
	ConnectGitHub(ctx context.Context) (model.GitHubConnection, error)
	ListGitHubRepos(ctx context.Context) ([]model.Repo, error)
}

// DataSource is everything the view layer can ask of a backend.
type DataSource interface {
	HealthChecker
	AuthRepository
	WorkspaceRepository
	ProjectRepository
	AgencyRepository
	OrionRepository
	KnowledgeRepository
	IntegrationRepository
}
