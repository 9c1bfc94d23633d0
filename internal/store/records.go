package store

import (
	"context"
	"fmt"
)

// Records is a typed view over a collection. T must carry an `id` json field.
type Records[T any] struct {
	coll Collection
	name string
}

// NewRecords binds a typed view to the named collection.
func NewRecords[T any](s Store, name string) *Records[T] {
	return &Records[T]{coll: s.Collection(name), name: name}
}

// Collection exposes the underlying collection for reporters.
func (r *Records[T]) Collection() Collection {
	return r.coll
}

// Create inserts the record and returns it as stored.
func (r *Records[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	doc, err := Encode(v)
	if err != nil {
		return zero, err
	}
	id, err := r.coll.Insert(ctx, doc)
	if err != nil {
		return zero, fmt.Errorf("%s: insert: %w", r.name, err)
	}
	doc[IDField] = id
	var out T
	if err := Decode(doc, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// CreateMany inserts records in one round trip and returns the identifiers.
func (r *Records[T]) CreateMany(ctx context.Context, items []T) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	docs := make([]Document, 0, len(items))
	for _, item := range items {
		doc, err := Encode(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	ids, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("%s: insert many: %w", r.name, err)
	}
	return ids, nil
}

// Get loads a record by identifier.
func (r *Records[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	doc, err := r.coll.FindByID(ctx, id)
	if err != nil {
		return out, fmt.Errorf("%s: get %s: %w", r.name, id, err)
	}
	if err := Decode(doc, &out); err != nil {
		return out, err
	}
	return out, nil
}

// List returns records matching the filter.
func (r *Records[T]) List(ctx context.Context, filter Filter, opts FindOptions) ([]T, error) {
	docs, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", r.name, err)
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := Decode(doc, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Patch merges the non-empty fields of patch into the stored record and
// returns the merged result. patch is encoded with its json tags, so pointer
// fields tagged omitempty act as optional updates.
func (r *Records[T]) Patch(ctx context.Context, id string, patch any) (T, error) {
	var zero T
	fields, err := Encode(patch)
	if err != nil {
		return zero, err
	}
	if len(fields) > 0 {
		matched, err := r.coll.UpdateByID(ctx, id, fields)
		if err != nil {
			return zero, fmt.Errorf("%s: update %s: %w", r.name, id, err)
		}
		if matched == 0 {
			return zero, fmt.Errorf("%s: update %s: %w", r.name, id, ErrNotFound)
		}
	}
	return r.Get(ctx, id)
}

// Delete removes the record.
func (r *Records[T]) Delete(ctx context.Context, id string) error {
	deleted, err := r.coll.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: delete %s: %w", r.name, id, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s: delete %s: %w", r.name, id, ErrNotFound)
	}
	return nil
}

// Count returns the number of records matching the filter.
func (r *Records[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	n, err := r.coll.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w", r.name, err)
	}
	return n, nil
}
