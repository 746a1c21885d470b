package mcp

import "github.com/mark3labs/mcp-go/mcp"

var healthToolDef = mcp.NewTool("system_health",
	mcp.WithDescription("Check whether the ARKODE backend is reachable."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var dashboardToolDef = mcp.NewTool("system_dashboard",
	mcp.WithDescription("Load the dashboard summary: backend status, data mode, greeting, workspaces and projects of the active workspace."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var setModeToolDef = mcp.NewTool("system_set_mode",
	mcp.WithDescription("Persist the data mode (mock or live). Takes effect on next start."),
	mcp.WithString("mode", mcp.Required(), mcp.Enum("mock", "live")),
)

var resetToolDef = mcp.NewTool("system_reset",
	mcp.WithDescription("Sign out and clear all cached dashboard state."),
	mcp.WithDestructiveHintAnnotation(true),
)

var loginToolDef = mcp.NewTool("auth_login",
	mcp.WithDescription("Sign in with email and password."),
	mcp.WithString("email", mcp.Required()),
	mcp.WithString("password", mcp.Required()),
)

var logoutToolDef = mcp.NewTool("auth_logout",
	mcp.WithDescription("Sign out and drop the stored token."),
)

var workspaceListToolDef = mcp.NewTool("workspace_list",
	mcp.WithDescription("List workspaces. The first one becomes active if none is."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var workspaceCreateToolDef = mcp.NewTool("workspace_create",
	mcp.WithDescription("Create a workspace."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name; the slug is derived from it")),
)

var workspaceSelectToolDef = mcp.NewTool("workspace_select",
	mcp.WithDescription("Make a known workspace active. Clears the loaded projects."),
	mcp.WithString("id", mcp.Required()),
)

var projectListToolDef = mcp.NewTool("project_list",
	mcp.WithDescription("List projects of the active workspace."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var projectCreateToolDef = mcp.NewTool("project_create",
	mcp.WithDescription("Create a project in the active workspace."),
	mcp.WithString("name", mcp.Required()),
)

var projectGetToolDef = mcp.NewTool("project_get",
	mcp.WithDescription("Fetch a project with its stats and make it current."),
	mcp.WithString("id", mcp.Required()),
	mcp.WithReadOnlyHintAnnotation(true),
)

var leadListToolDef = mcp.NewTool("lead_list",
	mcp.WithDescription("List sales leads."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var leadCreateToolDef = mcp.NewTool("lead_create",
	mcp.WithDescription("Create a lead."),
	mcp.WithString("name", mcp.Required()),
	mcp.WithString("email", mcp.Required()),
	mcp.WithString("status", mcp.Enum("new", "contacted", "interested", "closed"), mcp.Description("Defaults to new")),
	mcp.WithString("next_step"),
)

var clientListToolDef = mcp.NewTool("client_list",
	mcp.WithDescription("List clients."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var clientCreateToolDef = mcp.NewTool("client_create",
	mcp.WithDescription("Create a client."),
	mcp.WithString("name", mcp.Required()),
	mcp.WithString("segment"),
)

var proposalListToolDef = mcp.NewTool("proposal_list",
	mcp.WithDescription("List proposals."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var proposalCreateToolDef = mcp.NewTool("proposal_create",
	mcp.WithDescription("Create a proposal. A markdown body is generated when omitted."),
	mcp.WithString("title", mcp.Required()),
	mcp.WithString("status", mcp.Enum("draft", "sent", "approved", "rejected")),
	mcp.WithString("markdown"),
)

var proposalGetToolDef = mcp.NewTool("proposal_get",
	mcp.WithDescription("Fetch one proposal with its markdown."),
	mcp.WithString("id", mcp.Required()),
	mcp.WithReadOnlyHintAnnotation(true),
)

var calendarListToolDef = mcp.NewTool("calendar_list",
	mcp.WithDescription("List content calendar items."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var calendarCreateToolDef = mcp.NewTool("calendar_create",
	mcp.WithDescription("Schedule a content calendar item."),
	mcp.WithString("title", mcp.Required()),
	mcp.WithString("date", mcp.Required(), mcp.Description("YYYY-MM-DD")),
	mcp.WithString("status", mcp.Enum("draft", "scheduled", "published")),
)

var agencyLoadToolDef = mcp.NewTool("agency_load",
	mcp.WithDescription("Load leads, clients, proposals and calendar concurrently and report counts."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var articleListToolDef = mcp.NewTool("article_list",
	mcp.WithDescription("List knowledge base articles."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var articleCreateToolDef = mcp.NewTool("article_create",
	mcp.WithDescription("Create a knowledge base article."),
	mcp.WithString("title", mcp.Required()),
	mcp.WithString("tags", mcp.Description("Comma-separated tags")),
	mcp.WithString("markdown"),
)

var articleGetToolDef = mcp.NewTool("article_get",
	mcp.WithDescription("Fetch one article with its markdown."),
	mcp.WithString("id", mcp.Required()),
	mcp.WithReadOnlyHintAnnotation(true),
)

var articleSearchToolDef = mcp.NewTool("article_search",
	mcp.WithDescription("Filter loaded articles by a title/tag query and any of the given tags. Loads articles first if none are loaded."),
	mcp.WithString("query"),
	mcp.WithArray("tags", mcp.WithStringItems()),
	mcp.WithReadOnlyHintAnnotation(true),
)

var orionGenerateToolDef = mcp.NewTool("orion_generate",
	mcp.WithDescription("Ask ORION to generate an artifact."),
	mcp.WithString("type", mcp.Required(), mcp.Enum("backlog", "proposal", "contentPlan")),
	mcp.WithString("prompt"),
)

var orionChatToolDef = mcp.NewTool("orion_chat",
	mcp.WithDescription("Send a chat message to ORION and wait for the reply."),
	mcp.WithString("content", mcp.Required()),
)

var githubConnectToolDef = mcp.NewTool("github_connect",
	mcp.WithDescription("Connect the GitHub integration."),
)

var githubReposToolDef = mcp.NewTool("github_repos",
	mcp.WithDescription("List repositories of the connected GitHub account."),
	mcp.WithReadOnlyHintAnnotation(true),
)
