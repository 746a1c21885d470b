// Package mcp exposes the view operations as MCP tools over stdio.
package mcp

import (
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
// Names follow "group_action".
var toolRegistry = map[string]toolEntry{
	"system_health": {
		def:     healthToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHealth },
	},
	"system_dashboard": {
		def:     dashboardToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDashboard },
	},
	"system_set_mode": {
		def:     setModeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetMode },
	},
	"system_reset": {
		def:     resetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReset },
	},
	"auth_login": {
		def:     loginToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLogin },
	},
	"auth_logout": {
		def:     logoutToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLogout },
	},
	"workspace_list": {
		def:     workspaceListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWorkspaceList },
	},
	"workspace_create": {
		def:     workspaceCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWorkspaceCreate },
	},
	"workspace_select": {
		def:     workspaceSelectToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWorkspaceSelect },
	},
	"project_list": {
		def:     projectListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectList },
	},
	"project_create": {
		def:     projectCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectCreate },
	},
	"project_get": {
		def:     projectGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProjectGet },
	},
	"lead_list": {
		def:     leadListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLeadList },
	},
	"lead_create": {
		def:     leadCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleLeadCreate },
	},
	"client_list": {
		def:     clientListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClientList },
	},
	"client_create": {
		def:     clientCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClientCreate },
	},
	"proposal_list": {
		def:     proposalListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProposalList },
	},
	"proposal_create": {
		def:     proposalCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProposalCreate },
	},
	"proposal_get": {
		def:     proposalGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProposalGet },
	},
	"calendar_list": {
		def:     calendarListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCalendarList },
	},
	"calendar_create": {
		def:     calendarCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCalendarCreate },
	},
	"agency_load": {
		def:     agencyLoadToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAgencyLoad },
	},
	"article_list": {
		def:     articleListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleArticleList },
	},
	"article_create": {
		def:     articleCreateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleArticleCreate },
	},
	"article_get": {
		def:     articleGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleArticleGet },
	},
	"article_search": {
		def:     articleSearchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleArticleSearch },
	},
	"orion_generate": {
		def:     orionGenerateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOrionGenerate },
	},
	"orion_chat": {
		def:     orionChatToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOrionChat },
	},
	"github_connect": {
		def:     githubConnectToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGitHubConnect },
	},
	"github_repos": {
		def:     githubReposToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGitHubRepos },
	},
}

// AllToolNames returns every tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateDisabledTools returns the names that match no tool.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GroupOf returns the group prefix of a tool name ("lead_create" → "lead").
func GroupOf(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// NewServer creates an MCP server with the ARKODE tools registered, minus
// those listed in cfg.DisabledTools. persist backs system_set_mode.
func NewServer(app *ops.App, cfg *config.Config, persist kv.Store, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"arkode",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(app, cfg, persist)

	disabled := make(map[string]bool, len(cfg.DisabledTools))
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run serves the tools on stdio until stdin closes.
func Run(app *ops.App, cfg *config.Config, persist kv.Store, version string) error {
	return server.ServeStdio(NewServer(app, cfg, persist, version))
}
