package store

import (
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// OrionStore holds the single AI session and the generated artifacts. None
// of it is persisted.
type OrionStore struct {
	listeners

	mu        sync.RWMutex
	session   *model.OrionSession
	artifacts []model.Artifact
	now       func() time.Time
}

func newOrionStore(now func() time.Time) *OrionStore {
	if now == nil {
		now = time.Now
	}
	return &OrionStore{now: now}
}

// CurrentSession returns a copy of the session, or nil.
func (s *OrionStore) CurrentSession() *model.OrionSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.session)
}

func (s *OrionStore) SetCurrentSession(sess *model.OrionSession) {
	s.mu.Lock()
	s.session = cloneSession(sess)
	s.mu.Unlock()
	s.notify()
}

func (s *OrionStore) Artifacts() []model.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.artifacts)
}

func (s *OrionStore) SetArtifacts(a []model.Artifact) {
	s.mu.Lock()
	s.artifacts = slices.Clone(a)
	s.mu.Unlock()
	s.notify()
}

// AddArtifact appends to the artifact list and to the session, if any.
func (s *OrionStore) AddArtifact(a model.Artifact) {
	s.mu.Lock()
	s.artifacts = append(s.artifacts, a)
	if s.session != nil {
		s.session.Artifacts = append(s.session.Artifacts, a)
	}
	s.mu.Unlock()
	s.notify()
}

// AddMessage appends a message to the session, starting one if needed.
func (s *OrionStore) AddMessage(content string, role model.Role) model.Message {
	s.mu.Lock()
	now := model.Timestamp(s.now())
	if s.session == nil {
		s.session = &model.OrionSession{
			ID:        ulid.Make().String(),
			Messages:  []model.Message{},
			Artifacts: []model.Artifact{},
			CreatedAt: now,
		}
	}
	msg := model.Message{Role: role, Content: content, Timestamp: now}
	s.session.Messages = append(s.session.Messages, msg)
	s.mu.Unlock()
	s.notify()
	return msg
}

func (s *OrionStore) reset() {
	s.mu.Lock()
	s.session = nil
	s.artifacts = nil
	s.mu.Unlock()
	s.notify()
}

func cloneSession(sess *model.OrionSession) *model.OrionSession {
	if sess == nil {
		return nil
	}
	cp := *sess
	cp.Messages = slices.Clone(sess.Messages)
	cp.Artifacts = slices.Clone(sess.Artifacts)
	return &cp
}
