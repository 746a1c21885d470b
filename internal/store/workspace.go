package store

import (
	"context"
	"sync"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// WorkspaceState is the persisted workspace blob.
type WorkspaceState struct {
	Workspaces      []model.Workspace `json:"workspaces"`
	ActiveWorkspace *model.Workspace  `json:"active_workspace"`
}

// WorkspaceStore caches workspaces and the active selection.
type WorkspaceStore struct {
	listeners

	list    *Collection[model.Workspace]
	mu      sync.RWMutex
	active  *model.Workspace
	persist kv.Store
}

func newWorkspaceStore(persist kv.Store) *WorkspaceStore {
	s := &WorkspaceStore{persist: persist}
	s.list = newCollection(func(w model.Workspace) string { return w.ID }, func() {})
	return s
}

func (s *WorkspaceStore) load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	var st WorkspaceState
	found, err := kv.GetJSON(ctx, s.persist, kv.KeyWorkspace, &st)
	if err != nil || !found {
		return err
	}
	s.list.Set(st.Workspaces)
	s.mu.Lock()
	s.active = st.ActiveWorkspace
	s.mu.Unlock()
	return nil
}

// Workspaces returns a copy of the cached list.
func (s *WorkspaceStore) Workspaces() []model.Workspace {
	return s.list.Items()
}

// Active returns the active workspace, or nil.
func (s *WorkspaceStore) Active() *model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	w := *s.active
	return &w
}

// SetWorkspaces replaces the list. The first element becomes active only
// when nothing is active yet.
func (s *WorkspaceStore) SetWorkspaces(ctx context.Context, ws []model.Workspace) error {
	return s.update(ctx, func() { s.list.Set(ws) })
}

// ReconcileWorkspaces applies a list fetch started at mark.
func (s *WorkspaceStore) ReconcileWorkspaces(ctx context.Context, mark uint64, ws []model.Workspace) error {
	return s.update(ctx, func() { s.list.Reconcile(mark, ws) })
}

// Mark returns the token to pass to ReconcileWorkspaces.
func (s *WorkspaceStore) Mark() uint64 {
	return s.list.Mark()
}

// AddWorkspace appends a created workspace. When the write fails the list
// is unchanged.
func (s *WorkspaceStore) AddWorkspace(ctx context.Context, w model.Workspace) error {
	st := WorkspaceState{Workspaces: append(s.list.Items(), w), ActiveWorkspace: s.Active()}
	if err := s.save(ctx, st); err != nil {
		return err
	}
	s.list.Add(w)
	s.notify()
	return nil
}

// SetActiveWorkspace selects a workspace by id. The id must be in the list.
func (s *WorkspaceStore) SetActiveWorkspace(ctx context.Context, id string) error {
	w, ok := s.list.Find(id)
	if !ok {
		return errors.NewNotFound("Workspace", id)
	}
	if err := s.save(ctx, WorkspaceState{Workspaces: s.list.Items(), ActiveWorkspace: &w}); err != nil {
		return err
	}
	s.mu.Lock()
	s.active = &w
	s.mu.Unlock()
	s.notify()
	return nil
}

// update runs a list change and persists the result. A failed write rolls
// the list and the active selection back.
func (s *WorkspaceStore) update(ctx context.Context, change func()) error {
	snap := s.list.snapshot()
	s.mu.Lock()
	prev := s.active
	s.mu.Unlock()

	change()
	items := s.list.Items()
	s.mu.Lock()
	if s.active == nil && len(items) > 0 {
		first := items[0]
		s.active = &first
	}
	s.mu.Unlock()

	if err := s.save(ctx, WorkspaceState{Workspaces: items, ActiveWorkspace: s.Active()}); err != nil {
		s.list.restore(snap)
		s.mu.Lock()
		s.active = prev
		s.mu.Unlock()
		return err
	}
	s.notify()
	return nil
}

// clear empties the in-memory state only.
func (s *WorkspaceStore) clear() {
	s.list.Set(nil)
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
	s.notify()
}

func (s *WorkspaceStore) save(ctx context.Context, st WorkspaceState) error {
	if s.persist == nil {
		return nil
	}
	return kv.SetJSON(ctx, s.persist, kv.KeyWorkspace, st)
}
