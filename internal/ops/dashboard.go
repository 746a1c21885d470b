package ops

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
)

func (a *App) ConnectGitHub(ctx context.Context) (bool, error) {
	res, err := a.Source.ConnectGitHub(ctx)
	if err != nil {
		return false, a.fail("connect_github", "Connection Failed", err)
	}
	a.success("GitHub Connected", "")
	return res.OK, nil
}

func (a *App) ListGitHubRepos(ctx context.Context) ([]model.Repo, error) {
	repos, err := a.Source.ListGitHubRepos(ctx)
	if err != nil {
		return nil, a.fail("list_github_repos", "Load Failed", err)
	}
	return repos, nil
}

// Dashboard is the home page summary.
type Dashboard struct {
	Online          bool              `json:"online"`
	Mode            source.Mode       `json:"mode"`
	Greeting        string            `json:"greeting,omitempty"`
	ActiveWorkspace *model.Workspace  `json:"active_workspace,omitempty"`
	Workspaces      []model.Workspace `json:"workspaces"`
	Projects        []model.Project   `json:"projects"`
}

// LoadDashboard checks health and loads workspaces concurrently. Projects are
// loaded for the active workspace as soon as one is known: alongside the
// other two when it was persisted, after the workspace list otherwise.
func (a *App) LoadDashboard(ctx context.Context) (Dashboard, error) {
	d := Dashboard{Mode: a.Mode}
	if u := a.Stores.Auth.State().User; u != nil {
		d.Greeting = "Welcome back, " + model.FirstName(u.Name)
	}

	hadActive := a.Stores.Workspace.Active() != nil

	var g errgroup.Group
	g.Go(func() error {
		d.Online = a.CheckHealth(ctx)
		return nil
	})
	g.Go(func() error {
		_, err := a.LoadWorkspaces(ctx)
		return err
	})
	if hadActive {
		g.Go(func() error {
			_, err := a.LoadProjects(ctx)
			return err
		})
	}
	err := g.Wait()

	if !hadActive && a.Stores.Workspace.Active() != nil {
		if _, perr := a.LoadProjects(ctx); err == nil {
			err = perr
		}
	}

	d.ActiveWorkspace = a.Stores.Workspace.Active()
	d.Workspaces = a.Stores.Workspace.Workspaces()
	d.Projects = a.Stores.Project.Projects.Items()
	return d, err
}
