// Package store holds the client-side state containers. Containers are
// plain synchronous stores: a write is applied and every subscriber has run
// before the mutator returns.
package store

import (
	"slices"
	"sync"
)

// listeners is the subscriber list shared by every container.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// Subscribe registers fn to run after every change. The returned func
// unregisters it.
func (l *listeners) Subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

func (l *listeners) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for i := 0; i < l.next; i++ {
		if fn, ok := l.fns[i]; ok {
			fns = append(fns, fn)
		}
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type pending[T any] struct {
	version uint64
	item    T
}

// Collection is an ordered, replace-or-append list of records keyed by id.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	local   []pending[T]
	version uint64
	key     func(T) string
	changed func()
}

func newCollection[T any](key func(T) string, changed func()) *Collection[T] {
	return &Collection[T]{key: key, changed: changed}
}

// Items returns a copy of the collection in order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Set replaces the whole collection with items, same order.
func (c *Collection[T]) Set(items []T) {
	c.mu.Lock()
	c.items = slices.Clone(items)
	c.local = nil
	c.mu.Unlock()
	c.changed()
}

// Add appends one locally created record.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	c.version++
	c.items = append(c.items, item)
	c.local = append(c.local, pending[T]{version: c.version, item: item})
	c.mu.Unlock()
	c.changed()
}

// Mark returns a token to take right before starting a list fetch.
func (c *Collection[T]) Mark() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Reconcile applies a list fetch that started at mark. Records added after
// mark and missing from the fetch are kept at the end, in the order they
// were added. Earlier local records yield to the fetched list.
func (c *Collection[T]) Reconcile(mark uint64, fetched []T) {
	c.mu.Lock()
	result := slices.Clone(fetched)
	seen := make(map[string]bool, len(fetched))
	for _, it := range fetched {
		seen[c.key(it)] = true
	}
	var still []pending[T]
	for _, p := range c.local {
		if p.version <= mark {
			continue
		}
		still = append(still, p)
		if !seen[c.key(p.item)] {
			result = append(result, p.item)
		}
	}
	c.items = result
	c.local = still
	c.mu.Unlock()
	c.changed()
}

type collectionState[T any] struct {
	items []T
	local []pending[T]
}

func (c *Collection[T]) snapshot() collectionState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return collectionState[T]{items: slices.Clone(c.items), local: slices.Clone(c.local)}
}

// restore puts back a snapshot after a failed write. The version never
// goes backwards so outstanding marks stay valid.
func (c *Collection[T]) restore(st collectionState[T]) {
	c.mu.Lock()
	c.items = st.items
	c.local = st.local
	c.mu.Unlock()
	c.changed()
}
