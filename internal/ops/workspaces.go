package ops

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (a *App) LoadWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	ws := a.Stores.Workspace
	mark := ws.Mark()
	list, err := a.Source.ListWorkspaces(ctx)
	if err != nil {
		return nil, a.fail("load_workspaces", "Failed to load workspaces", err)
	}
	if a.Policy == config.PolicyLatest {
		err = ws.SetWorkspaces(ctx, list)
	} else {
		err = ws.ReconcileWorkspaces(ctx, mark, list)
	}
	if err != nil {
		return nil, a.fail("load_workspaces", "Failed to load workspaces", err)
	}
	return ws.Workspaces(), nil
}

func (a *App) CreateWorkspace(ctx context.Context, name string) (model.Workspace, error) {
	if err := required("name", name); err != nil {
		return model.Workspace{}, err
	}
	w, err := a.Source.CreateWorkspace(ctx, model.NewWorkspace{Name: name})
	if err != nil {
		return model.Workspace{}, a.fail("create_workspace", "Failed to create workspace", err)
	}
	if err := a.Stores.Workspace.AddWorkspace(ctx, w); err != nil {
		return model.Workspace{}, a.fail("create_workspace", "Failed to create workspace", err)
	}
	a.success("Workspace created", w.Name)
	return w, nil
}

// SelectWorkspace makes id active. The project list belonged to the previous
// workspace, so it is cleared.
func (a *App) SelectWorkspace(ctx context.Context, id string) (model.Workspace, error) {
	if err := required("workspace id", id); err != nil {
		return model.Workspace{}, err
	}
	if err := a.Stores.Workspace.SetActiveWorkspace(ctx, id); err != nil {
		return model.Workspace{}, a.fail("select_workspace", "Selection Failed", err)
	}
	a.Stores.Project.Projects.Set(nil)
	a.Stores.Project.SetCurrentProject(nil)
	w := a.Stores.Workspace.Active()
	a.success("Workspace selected", w.Name)
	return *w, nil
}
