package mock

import "github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"

// DemoUser is returned by a successful Login.
var DemoUser = model.User{ID: "1", Name: "John Developer", Email: DemoEmail}

func (m *Mock) seed() {
	m.workspaces = []model.Workspace{
		{ID: "1", Name: "ARKODE Studio", Slug: "arkode-studio"},
		{ID: "2", Name: "Client Projects", Slug: "client-projects"},
		{ID: "3", Name: "Internal Tools", Slug: "internal-tools"},
	}

	m.projects = []model.Project{
		{ID: "1", Name: "ARKODE Web App", Status: model.ProjectActive, Client: "Internal", WorkspaceID: "1"},
		{ID: "2", Name: "Dashboard UI", Status: model.ProjectActive, WorkspaceID: "1"},
		{ID: "3", Name: "Client Portal", Status: model.ProjectOnHold, Client: "Acme Corp", WorkspaceID: "2"},
		{ID: "4", Name: "Analytics Tool", Status: model.ProjectArchived, WorkspaceID: "3"},
	}

	m.leads = []model.Lead{
		{ID: "1", Name: "Maria Santos", Email: "maria@acme.com", Status: model.LeadInterested, NextStep: "Send proposal draft"},
		{ID: "2", Name: "Lucas Oliveira", Email: "lucas@nimbus.io", Status: model.LeadNew, NextStep: "Schedule discovery call"},
		{ID: "3", Name: "Ana Costa", Email: "ana@freshbite.com.br", Status: model.LeadContacted, NextStep: "Follow up on pricing"},
	}

	m.clients = []model.Client{
		{ID: "1", Name: "Acme Corp", Segment: "Enterprise"},
		{ID: "2", Name: "Nimbus Labs", Segment: "SaaS"},
		{ID: "3", Name: "FreshBite", Segment: "Food & Beverage"},
	}

	m.proposals = []model.Proposal{
		{
			ID:     "1",
			Title:  "Acme Corp Portal Redesign",
			Status: model.ProposalSent,
			Markdown: "# Acme Corp Portal Redesign\n\n" +
				"## Overview\n\nRebuild the customer portal with a modern component library.\n\n" +
				"## Scope\n\n- Discovery workshop\n- UI kit and design tokens\n- Portal rebuild\n\n" +
				"## Investment\n\n6 weeks, fixed price.\n",
		},
		{ID: "2", Title: "Nimbus Analytics MVP", Status: model.ProposalDraft},
	}

	m.calendar = []model.CalendarItem{
		{ID: "1", Title: "Weekly dev tips", Date: "2025-01-27", Status: model.CalendarPublished},
		{ID: "2", Title: "Launch announcement post", Date: "2025-02-03", Status: model.CalendarScheduled},
		{ID: "3", Title: "Case study: Client Portal", Date: "2025-02-10", Status: model.CalendarDraft},
	}

	m.articles = []model.Article{
		{
			ID:        "1",
			Title:     "Getting Started with ARKODE",
			Tags:      []string{"onboarding", "guide"},
			UpdatedAt: "2025-01-15T10:00:00Z",
			Markdown: "# Getting Started with ARKODE\n\n" +
				"## Workspaces\n\nEvery project lives in a workspace.\n\n" +
				"## Projects\n\nCreate a project from the Projects page.\n",
		},
		{ID: "2", Title: "React Component Patterns", Tags: []string{"react", "frontend"}, UpdatedAt: "2025-01-20T14:30:00Z"},
		{ID: "3", Title: "API Design Guidelines", Tags: []string{"backend", "api", "guide"}, UpdatedAt: "2025-01-22T09:15:00Z"},
	}

	m.repos = []model.Repo{
		{ID: "1", Name: "arkode-web", FullName: "arkode-dev/arkode-web"},
		{ID: "2", Name: "arkode-backend", FullName: "arkode-dev/arkode-backend"},
		{ID: "3", Name: "design-system", FullName: "arkode-dev/design-system"},
	}
}

func defaultProposalMarkdown(title string) string {
	return "# " + title + "\n\n" +
		"## Overview\n\nProposal details will be added here.\n\n" +
		"## Scope\n\n- Discovery\n- Design\n- Development\n\n" +
		"## Timeline\n\nTo be defined.\n"
}

func defaultArticleMarkdown(title string) string {
	return "# " + title + "\n\nThis article has no content yet.\n"
}
