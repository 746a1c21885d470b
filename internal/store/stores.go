package store

import (
	"context"
	"fmt"
	"time"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
)

// Stores bundles every container for one client session.
type Stores struct {
	Auth      *AuthStore
	Workspace *WorkspaceStore
	Project   *ProjectStore
	Agency    *AgencyStore
	Knowledge *KnowledgeStore
	Orion     *OrionStore

	persist kv.Store
}

// Option configures Open and New.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New returns memory-only stores.
func New(opts ...Option) *Stores {
	return build(nil, opts)
}

// Open returns stores backed by persist and loads the persisted auth and
// workspace state.
func Open(ctx context.Context, persist kv.Store, opts ...Option) (*Stores, error) {
	s := build(persist, opts)
	if err := s.Auth.load(ctx); err != nil {
		return nil, fmt.Errorf("load auth: %w", err)
	}
	if err := s.Workspace.load(ctx); err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}
	return s, nil
}

func build(persist kv.Store, opts []Option) *Stores {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Stores{
		Auth:      newAuthStore(persist),
		Workspace: newWorkspaceStore(persist),
		Project:   newProjectStore(),
		Agency:    newAgencyStore(),
		Knowledge: newKnowledgeStore(),
		Orion:     newOrionStore(o.now),
		persist:   persist,
	}
}

// Reset logs out, clears the persisted blobs and empties the session state.
// The persisted keys go first; if any delete fails nothing in memory changes.
func (s *Stores) Reset(ctx context.Context) error {
	if s.persist != nil {
		for _, key := range []string{kv.KeyToken, kv.KeyAuth, kv.KeyWorkspace} {
			if err := s.persist.Delete(ctx, key); err != nil {
				return err
			}
		}
	}
	s.Auth.apply(AuthState{})
	s.Workspace.clear()
	s.Project.Projects.Set(nil)
	s.Project.SetCurrentProject(nil)
	s.Agency.Leads.Set(nil)
	s.Agency.Clients.Set(nil)
	s.Agency.Proposals.Set(nil)
	s.Agency.Calendar.Set(nil)
	s.Agency.SetCurrentProposal(nil)
	s.Knowledge.Articles.Set(nil)
	s.Knowledge.SetSearchQuery("")
	s.Knowledge.SetSelectedTags(nil)
	s.Knowledge.SetCurrent(nil)
	s.Orion.reset()
	return nil
}
