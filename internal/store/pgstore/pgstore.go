// Package pgstore keeps documents as JSONB rows in a single PostgreSQL table.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supplyline/supplyline/internal/store"
)

var _ store.Store = (*Store)(nil)

// ErrSchemaMissing indicates the documents table has not been created.
var ErrSchemaMissing = errors.New("pgstore: documents table missing")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	id         UUID        NOT NULL,
	body       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_created_idx ON documents (collection, created_at);
`

// Store maps every collection onto rows of the documents table.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps a pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the documents table when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("pgstore: ensure schema: %w", err)
	}
	return nil
}

// Collection returns the named collection.
func (s *Store) Collection(name string) store.Collection {
	return &collection{pool: s.pool, name: name}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close(context.Context) error {
	s.pool.Close()
	return nil
}

type collection struct {
	pool *pgxpool.Pool
	name string
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, store.ErrInvalidID
	}
	return parsed, nil
}

func body(doc store.Document) ([]byte, error) {
	clean := make(store.Document, len(doc))
	for k, v := range doc {
		if k == store.IDField {
			continue
		}
		clean[k] = v
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("pgstore: marshal: %w", err)
	}
	return raw, nil
}

func (c *collection) wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return fmt.Errorf("pgstore: %s %s: %w", op, c.name, ErrSchemaMissing)
	}
	return fmt.Errorf("pgstore: %s %s: %w", op, c.name, err)
}

const insertSQL = `INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3)`

func (c *collection) Insert(ctx context.Context, doc store.Document) (string, error) {
	raw, err := body(doc)
	if err != nil {
		return "", err
	}
	id := uuid.New()
	if _, err := c.pool.Exec(ctx, insertSQL, c.name, id, raw); err != nil {
		return "", c.wrap("insert", err)
	}
	return id.String(), nil
}

func (c *collection) InsertMany(ctx context.Context, docs []store.Document) ([]string, error) {
	ids := make([]string, 0, len(docs))
	err := pgx.BeginTxFunc(ctx, c.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		for _, doc := range docs {
			raw, err := body(doc)
			if err != nil {
				return err
			}
			id := uuid.New()
			if _, err := tx.Exec(ctx, insertSQL, c.name, id, raw); err != nil {
				return c.wrap("insert many", err)
			}
			ids = append(ids, id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *collection) FindByID(ctx context.Context, id string) (store.Document, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = c.pool.QueryRow(ctx, `SELECT body FROM documents WHERE collection = $1 AND id = $2`, c.name, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, c.wrap("find", err)
	}
	doc, err := store.DecodeJSON(raw)
	if err != nil {
		return nil, err
	}
	doc[store.IDField] = key.String()
	return doc, nil
}

func (c *collection) Find(ctx context.Context, filter store.Filter, opts store.FindOptions) ([]store.Document, error) {
	where, args := whereClause(c.name, filter)
	query := `SELECT id, body FROM documents WHERE ` + where + ` ORDER BY created_at, id`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, c.wrap("find", err)
	}
	defer rows.Close()

	out := make([]store.Document, 0)
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, c.wrap("scan", err)
		}
		doc, err := store.DecodeJSON(raw)
		if err != nil {
			return nil, err
		}
		doc[store.IDField] = id.String()
		out = append(out, store.Project(doc, opts.Fields))
	}
	if err := rows.Err(); err != nil {
		return nil, c.wrap("find", err)
	}
	return out, nil
}

func (c *collection) UpdateByID(ctx context.Context, id string, fields store.Document) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	raw, err := body(fields)
	if err != nil {
		return 0, err
	}
	tag, err := c.pool.Exec(ctx,
		`UPDATE documents SET body = body || $3::jsonb, updated_at = now() WHERE collection = $1 AND id = $2`,
		c.name, key, raw)
	if err != nil {
		return 0, c.wrap("update", err)
	}
	return tag.RowsAffected(), nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) (int64, error) {
	key, err := parseID(id)
	if err != nil {
		return 0, err
	}
	tag, err := c.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, c.name, key)
	if err != nil {
		return 0, c.wrap("delete", err)
	}
	return tag.RowsAffected(), nil
}

func (c *collection) Count(ctx context.Context, filter store.Filter) (int64, error) {
	where, args := whereClause(c.name, filter)
	var n int64
	if err := c.pool.QueryRow(ctx, `SELECT count(*) FROM documents WHERE `+where, args...).Scan(&n); err != nil {
		return 0, c.wrap("count", err)
	}
	return n, nil
}
