package store

import (
	"sync"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// ProjectStore caches the active workspace's projects and the project
// currently open. Details are never merged into the list.
type ProjectStore struct {
	listeners

	Projects *Collection[model.Project]

	mu      sync.RWMutex
	current *model.ProjectDetails
}

func newProjectStore() *ProjectStore {
	s := &ProjectStore{}
	s.Projects = newCollection(func(p model.Project) string { return p.ID }, s.notify)
	return s
}

func (s *ProjectStore) Current() *model.ProjectDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	d := *s.current
	return &d
}

// SetCurrentProject replaces the open project; nil closes it.
func (s *ProjectStore) SetCurrentProject(d *model.ProjectDetails) {
	s.mu.Lock()
	if d == nil {
		s.current = nil
	} else {
		cp := *d
		s.current = &cp
	}
	s.mu.Unlock()
	s.notify()
}

// AgencyStore groups the agency collections.
type AgencyStore struct {
	listeners

	Leads     *Collection[model.Lead]
	Clients   *Collection[model.Client]
	Proposals *Collection[model.Proposal]
	Calendar  *Collection[model.CalendarItem]

	mu       sync.RWMutex
	proposal *model.Proposal
}

func newAgencyStore() *AgencyStore {
	s := &AgencyStore{}
	s.Leads = newCollection(func(l model.Lead) string { return l.ID }, s.notify)
	s.Clients = newCollection(func(c model.Client) string { return c.ID }, s.notify)
	s.Proposals = newCollection(func(p model.Proposal) string { return p.ID }, s.notify)
	s.Calendar = newCollection(func(c model.CalendarItem) string { return c.ID }, s.notify)
	return s
}

// CurrentProposal is the proposal open in the editor, with markdown.
func (s *AgencyStore) CurrentProposal() *model.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.proposal == nil {
		return nil
	}
	p := *s.proposal
	return &p
}

func (s *AgencyStore) SetCurrentProposal(p *model.Proposal) {
	s.mu.Lock()
	if p == nil {
		s.proposal = nil
	} else {
		cp := *p
		s.proposal = &cp
	}
	s.mu.Unlock()
	s.notify()
}

// NewLeads counts leads still in the "new" status.
func (s *AgencyStore) NewLeads() int {
	n := 0
	for _, l := range s.Leads.Items() {
		if l.Status == model.LeadNew {
			n++
		}
	}
	return n
}
