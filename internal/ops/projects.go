package ops

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (a *App) activeWorkspaceID() (string, error) {
	w := a.Stores.Workspace.Active()
	if w == nil {
		return "", errors.NewInvalidRequest("no active workspace")
	}
	return w.ID, nil
}

// LoadProjects fetches the projects of the active workspace.
func (a *App) LoadProjects(ctx context.Context) ([]model.Project, error) {
	wsID, err := a.activeWorkspaceID()
	if err != nil {
		return nil, err
	}
	c := a.Stores.Project.Projects
	mark := c.Mark()
	list, err := a.Source.ListProjects(ctx, wsID)
	if err != nil {
		return nil, a.fail("load_projects", "Failed to load projects", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

func (a *App) CreateProject(ctx context.Context, name string) (model.Project, error) {
	if err := required("name", name); err != nil {
		return model.Project{}, err
	}
	wsID, err := a.activeWorkspaceID()
	if err != nil {
		return model.Project{}, err
	}
	p, err := a.Source.CreateProject(ctx, model.NewProject{WorkspaceID: wsID, Name: name})
	if err != nil {
		return model.Project{}, a.fail("create_project", "Failed to create project", err)
	}
	a.Stores.Project.Projects.Add(p)
	a.success("Project created", p.Name)
	return p, nil
}

// OpenProject fetches details and stats into the current-project slot. On
// failure the slot keeps whatever it held.
func (a *App) OpenProject(ctx context.Context, id string) (model.ProjectDetails, error) {
	if err := required("project id", id); err != nil {
		return model.ProjectDetails{}, err
	}
	d, err := a.Source.GetProject(ctx, id)
	if err != nil {
		return model.ProjectDetails{}, a.fail("open_project", "Failed to load project", err)
	}
	a.Stores.Project.SetCurrentProject(&d)
	return d, nil
}
