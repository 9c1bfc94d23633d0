// Package store defines the document store contract shared by every entity
// collection, plus helpers to move typed records in and out of documents.
package store

import (
	"context"
	"errors"
)

// Collection names used by the service.
const (
	Products       = "products"
	Suppliers      = "suppliers"
	PurchaseOrders = "purchase_orders"
	Warehouses     = "warehouses"
	StockTransfers = "stock_transfers"
	Shipments      = "shipments"
	Orders         = "orders"
	Deliveries     = "deliveries"

	// IDField carries the store-assigned identifier inside a Document.
	IDField = "id"
)

var (
	// ErrNotFound indicates no document matches the identifier.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidID indicates the identifier is not a valid reference for the backend.
	ErrInvalidID = errors.New("store: invalid identifier")
)

// Document is a JSON-shaped record. Values are limited to nil, bool, string,
// int64, float64, []any and map[string]any. The identifier travels under IDField.
type Document map[string]any

// ID returns the identifier carried by the document.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// FindOptions narrows a Find call.
type FindOptions struct {
	// Fields restricts the returned keys. The identifier is always returned.
	Fields []string
	// Limit caps the number of documents; zero means no limit.
	Limit int
}

// Collection is a single document collection.
type Collection interface {
	Insert(ctx context.Context, doc Document) (string, error)
	InsertMany(ctx context.Context, docs []Document) ([]string, error)
	FindByID(ctx context.Context, id string) (Document, error)
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]Document, error)
	UpdateByID(ctx context.Context, id string, fields Document) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Store hands out collections and owns the backend connection.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
