package model

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
	ProjectOnHold   ProjectStatus = "on-hold"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectArchived, ProjectOnHold:
		return true
	}
	return false
}

type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadContacted  LeadStatus = "contacted"
	LeadInterested LeadStatus = "interested"
	LeadClosed     LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadInterested, LeadClosed:
		return true
	}
	return false
}

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalDraft, ProposalSent, ProposalApproved, ProposalRejected:
		return true
	}
	return false
}

type CalendarStatus string

const (
	CalendarDraft     CalendarStatus = "draft"
	CalendarScheduled CalendarStatus = "scheduled"
	CalendarPublished CalendarStatus = "published"
)

func (s CalendarStatus) Valid() bool {
	switch s {
	case CalendarDraft, CalendarScheduled, CalendarPublished:
		return true
	}
	return false
}

type ArtifactType string

const (
	ArtifactBacklog     ArtifactType = "backlog"
	ArtifactProposal    ArtifactType = "proposal"
	ArtifactContentPlan ArtifactType = "contentPlan"
)

// Known reports whether t has a canned generator. Unknown types are still
// accepted and produce a placeholder.
func (t ArtifactType) Known() bool {
	switch t {
	case ArtifactBacklog, ArtifactProposal, ArtifactContentPlan:
		return true
	}
	return false
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}
