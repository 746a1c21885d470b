package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	app     *ops.App
	cfg     *config.Config
	persist kv.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *ops.App, cfg *config.Config, persist kv.Store) *Handlers {
	return &Handlers{app: app, cfg: cfg, persist: persist}
}

// Request types for tools whose arguments are not a model input.

type IDRequest struct {
	ID string `json:"id"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SetModeRequest struct {
	Mode string `json:"mode"`
}

type ArticleCreateRequest struct {
	Title    string `json:"title"`
	Tags     string `json:"tags,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

type ArticleSearchRequest struct {
	Query string   `json:"query,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type ChatRequest struct {
	Content string `json:"content"`
}

// listOutput wraps list results so every tool returns a JSON object.
type listOutput[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func list[T any](items []T) listOutput[T] {
	if items == nil {
		items = []T{}
	}
	return listOutput[T]{Items: items, Count: len(items)}
}

// decode unmarshals tool arguments into T by round-tripping through JSON.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return out, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("unmarshal args: %w", err)
	}
	return out, nil
}

// call decodes the arguments into In, runs fn and renders the result.
func call[In, Out any](ctx context.Context, req mcp.CallToolRequest, fn func(context.Context, In) (Out, error)) (*mcp.CallToolResult, error) {
	input, err := decode[In](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	out, err := fn(ctx, input)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(out)
}

type none struct{}

// System

func (h *Handlers) HandleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(map[string]any{"ok": h.app.CheckHealth(ctx)})
}

func (h *Handlers) HandleDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := h.app.LoadDashboard(ctx)
	if err != nil && len(d.Workspaces) == 0 {
		return errorResult(err), nil
	}
	return successResult(d)
}

func (h *Handlers) HandleSetMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in SetModeRequest) (map[string]any, error) {
		mode, err := source.ParseMode(in.Mode)
		if err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
		changed, err := h.app.SetDataMode(ctx, h.persist, h.cfg, mode)
		if err != nil {
			return nil, err
		}
		return map[string]any{"mode": mode, "changed": changed, "restart_required": changed}, nil
	})
}

func (h *Handlers) HandleReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.app.ClearCache(ctx); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"reset": true})
}

// Auth

func (h *Handlers) HandleLogin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in LoginRequest) (model.User, error) {
		return h.app.Login(ctx, in.Email, in.Password)
	})
}

func (h *Handlers) HandleLogout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.app.Logout(ctx); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"signed_out": true})
}

// Workspaces and projects

func (h *Handlers) HandleWorkspaceList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ws, err := h.app.LoadWorkspaces(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	out := map[string]any{"items": list(ws).Items, "count": len(ws)}
	if a := h.app.Stores.Workspace.Active(); a != nil {
		out["active_workspace_id"] = a.ID
	}
	return successResult(out)
}

func (h *Handlers) HandleWorkspaceCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in NameRequest) (model.Workspace, error) {
		return h.app.CreateWorkspace(ctx, in.Name)
	})
}

func (h *Handlers) HandleWorkspaceSelect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in IDRequest) (model.Workspace, error) {
		if len(h.app.Stores.Workspace.Workspaces()) == 0 {
			if _, err := h.app.LoadWorkspaces(ctx); err != nil {
				return model.Workspace{}, err
			}
		}
		return h.app.SelectWorkspace(ctx, in.ID)
	})
}

func (h *Handlers) HandleProjectList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Project], error) {
		ps, err := h.app.LoadProjects(ctx)
		return list(ps), err
	})
}

func (h *Handlers) HandleProjectCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in NameRequest) (model.Project, error) {
		return h.app.CreateProject(ctx, in.Name)
	})
}

func (h *Handlers) HandleProjectGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in IDRequest) (model.ProjectDetails, error) {
		return h.app.OpenProject(ctx, in.ID)
	})
}

// Agency

func (h *Handlers) HandleLeadList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Lead], error) {
		ls, err := h.app.LoadLeads(ctx)
		return list(ls), err
	})
}

func (h *Handlers) HandleLeadCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, h.app.CreateLead)
}

func (h *Handlers) HandleClientList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Client], error) {
		cs, err := h.app.LoadClients(ctx)
		return list(cs), err
	})
}

func (h *Handlers) HandleClientCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, h.app.CreateClient)
}

func (h *Handlers) HandleProposalList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Proposal], error) {
		ps, err := h.app.LoadProposals(ctx)
		return list(ps), err
	})
}

func (h *Handlers) HandleProposalCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, h.app.CreateProposal)
}

func (h *Handlers) HandleProposalGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in IDRequest) (model.Proposal, error) {
		return h.app.OpenProposal(ctx, in.ID)
	})
}

func (h *Handlers) HandleCalendarList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.CalendarItem], error) {
		items, err := h.app.LoadCalendar(ctx)
		return list(items), err
	})
}

func (h *Handlers) HandleCalendarCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, h.app.CreateCalendarItem)
}

// HandleAgencyLoad reports per-collection counts. A partial failure still
// returns the counts with the first error message.
func (h *Handlers) HandleAgencyLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := h.app.LoadAgency(ctx)
	a := h.app.Stores.Agency
	out := map[string]any{
		"leads":     a.Leads.Len(),
		"clients":   a.Clients.Len(),
		"proposals": a.Proposals.Len(),
		"calendar":  a.Calendar.Len(),
		"new_leads": a.NewLeads(),
	}
	if err != nil {
		if a.Leads.Len()+a.Clients.Len()+a.Proposals.Len()+a.Calendar.Len() == 0 {
			return errorResult(err), nil
		}
		out["error"] = err.Error()
	}
	return successResult(out)
}

// Knowledge base

func (h *Handlers) HandleArticleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Article], error) {
		as, err := h.app.LoadArticles(ctx)
		return list(as), err
	})
}

func (h *Handlers) HandleArticleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in ArticleCreateRequest) (model.Article, error) {
		return h.app.CreateArticle(ctx, in.Title, in.Tags, in.Markdown)
	})
}

func (h *Handlers) HandleArticleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in IDRequest) (model.Article, error) {
		return h.app.OpenArticle(ctx, in.ID)
	})
}

func (h *Handlers) HandleArticleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in ArticleSearchRequest) (listOutput[model.Article], error) {
		if h.app.Stores.Knowledge.Articles.Len() == 0 {
			if _, err := h.app.LoadArticles(ctx); err != nil {
				return listOutput[model.Article]{}, err
			}
		}
		return list(h.app.SearchArticles(in.Query, in.Tags)), nil
	})
}

// ORION

func (h *Handlers) HandleOrionGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, h.app.GenerateArtifact)
}

// HandleOrionChat returns the whole session so the caller sees the reply.
func (h *Handlers) HandleOrionChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, in ChatRequest) (*model.OrionSession, error) {
		if _, err := h.app.SendMessage(ctx, in.Content); err != nil {
			return nil, err
		}
		return h.app.Stores.Orion.CurrentSession(), nil
	})
}

// Integrations

func (h *Handlers) HandleGitHubConnect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ok, err := h.app.ConnectGitHub(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"connected": ok})
}

func (h *Handlers) HandleGitHubRepos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return call(ctx, req, func(ctx context.Context, _ none) (listOutput[model.Repo], error) {
		rs, err := h.app.ListGitHubRepos(ctx)
		return list(rs), err
	})
}

// Result helpers

// errorResult creates an MCP error result. Internal errors are reported
// without their message or details.
func errorResult(err error) *mcp.CallToolResult {
	var errorObj map[string]any

	if ae, ok := errors.As(err); ok && ae.Code != errors.ErrInternal {
		errorObj = map[string]any{
			"code":    ae.Code,
			"message": ae.Message,
			"status":  ae.Status,
		}
		if ae.Details != nil {
			errorObj["details"] = ae.Details
		}
	} else {
		errorObj = map[string]any{
			"code":    errors.ErrInternal,
			"message": "an internal error occurred",
			"status":  500,
		}
	}

	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
