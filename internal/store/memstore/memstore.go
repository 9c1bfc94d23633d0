// Package memstore is an in-process document store used by tests and local runs.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/supplyline/supplyline/internal/store"
)

// Store keeps collections in memory. Safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// New constructs an empty Store.
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

// Collection returns the named collection, creating it on first use.
func (s *Store) Collection(name string) store.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]store.Document)}
		s.collections[name] = c
	}
	return c
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close(context.Context) error { return nil }

type collection struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]store.Document
}

func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", store.ErrInvalidID
	}
	return parsed.String(), nil
}

func (c *collection) Insert(_ context.Context, doc store.Document) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(doc), nil
}

func (c *collection) insertLocked(doc store.Document) string {
	id := uuid.NewString()
	stored := store.Clone(doc)
	if stored == nil {
		stored = store.Document{}
	}
	stored[store.IDField] = id
	c.docs[id] = stored
	c.order = append(c.order, id)
	return id
}

func (c *collection) InsertMany(_ context.Context, docs []store.Document) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, c.insertLocked(doc))
	}
	return ids, nil
}

func (c *collection) FindByID(_ context.Context, id string) (store.Document, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return store.Clone(doc), nil
}

func (c *collection) Find(_ context.Context, filter store.Filter, opts store.FindOptions) ([]store.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]store.Document, 0)
	for _, id := range c.order {
		doc, ok := c.docs[id]
		if !ok || !filter.Match(doc) {
			continue
		}
		out = append(out, store.Project(store.Clone(doc), opts.Fields))
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (c *collection) UpdateByID(_ context.Context, id string, fields store.Document) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[key]
	if !ok {
		return 0, nil
	}
	for k, v := range store.Clone(fields) {
		if k == store.IDField {
			continue
		}
		doc[k] = v
	}
	return 1, nil
}

func (c *collection) DeleteByID(_ context.Context, id string) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[key]; !ok {
		return 0, nil
	}
	delete(c.docs, key)
	for i, existing := range c.order {
		if existing == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (c *collection) Count(_ context.Context, filter store.Filter) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, doc := range c.docs {
		if filter.Match(doc) {
			n++
		}
	}
	return n, nil
}
