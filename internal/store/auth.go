package store

import (
	"context"
	"sync"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// AuthState is the persisted auth blob.
type AuthState struct {
	User            *model.User `json:"user"`
	Token           string      `json:"token"`
	IsAuthenticated bool        `json:"is_authenticated"`
}

// AuthStore moves between anonymous and authenticated. There is no refresh
// or expiry state.
type AuthStore struct {
	listeners

	mu      sync.RWMutex
	state   AuthState
	persist kv.Store
}

func newAuthStore(persist kv.Store) *AuthStore {
	return &AuthStore{persist: persist}
}

func (s *AuthStore) load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	var st AuthState
	found, err := kv.GetJSON(ctx, s.persist, kv.KeyAuth, &st)
	if err != nil || !found {
		return err
	}
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// State returns a copy of the current auth state.
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// IsAuthenticated reports whether a user is signed in.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// SetAuth moves to authenticated and persists the token and user. When the
// write fails the state is unchanged.
func (s *AuthStore) SetAuth(ctx context.Context, token string, user model.User) error {
	st := AuthState{User: &user, Token: token, IsAuthenticated: true}
	if err := s.save(ctx, st, func() error { return s.persist.Set(ctx, kv.KeyToken, token) }); err != nil {
		return err
	}
	s.apply(st)
	return nil
}

// Logout moves to anonymous and clears the persisted token. When the write
// fails the session stays.
func (s *AuthStore) Logout(ctx context.Context) error {
	if err := s.save(ctx, AuthState{}, func() error { return s.persist.Delete(ctx, kv.KeyToken) }); err != nil {
		return err
	}
	s.apply(AuthState{})
	return nil
}

func (s *AuthStore) apply(st AuthState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) save(ctx context.Context, st AuthState, token func() error) error {
	if s.persist == nil {
		return nil
	}
	if err := token(); err != nil {
		return err
	}
	return kv.SetJSON(ctx, s.persist, kv.KeyAuth, st)
}
