package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// KnowledgeStore caches articles and the session-local filter state.
type KnowledgeStore struct {
	listeners

	Articles *Collection[model.Article]

	mu       sync.RWMutex
	query    string
	selected []string
	current  *model.Article
}

func newKnowledgeStore() *KnowledgeStore {
	s := &KnowledgeStore{}
	s.Articles = newCollection(func(a model.Article) string { return a.ID }, s.notify)
	return s
}

func (s *KnowledgeStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *KnowledgeStore) SetSearchQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
	s.notify()
}

func (s *KnowledgeStore) SelectedTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.selected)
}

func (s *KnowledgeStore) SetSelectedTags(tags []string) {
	s.mu.Lock()
	s.selected = slices.Clone(tags)
	s.mu.Unlock()
	s.notify()
}

// Filtered returns the articles matching the current search and tag filter.
//
// The search matches case-insensitively against the title or any tag. The
// tag filter matches articles carrying at least one selected tag exactly.
// An article is returned when both hold.
func (s *KnowledgeStore) Filtered() []model.Article {
	s.mu.RLock()
	query := strings.ToLower(s.query)
	selected := slices.Clone(s.selected)
	s.mu.RUnlock()

	all := s.Articles.Items()
	if query == "" && len(selected) == 0 {
		return all
	}

	out := make([]model.Article, 0, len(all))
	for _, a := range all {
		if matchesSearch(a, query) && matchesTags(a, selected) {
			out = append(out, a)
		}
	}
	return out
}

func matchesSearch(a model.Article, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func matchesTags(a model.Article, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range selected {
		if slices.Contains(a.Tags, t) {
			return true
		}
	}
	return false
}

// Tags returns every distinct tag across the articles, sorted.
func (s *KnowledgeStore) Tags() []string {
	seen := map[string]bool{}
	var tags []string
	for _, a := range s.Articles.Items() {
		for _, t := range a.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags
}

// Current is the article open in the reader, with markdown.
func (s *KnowledgeStore) Current() *model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	a := *s.current
	return &a
}

func (s *KnowledgeStore) SetCurrent(a *model.Article) {
	s.mu.Lock()
	if a == nil {
		s.current = nil
	} else {
		cp := *a
		s.current = &cp
	}
	s.mu.Unlock()
	s.notify()
}
