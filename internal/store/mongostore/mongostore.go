// Package mongostore backs the document store with MongoDB collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/supplyline/supplyline/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store maps collections onto a MongoDB database. Identifiers are ObjectID hex strings.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New wraps an established client.
func New(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// Collection returns the named collection.
func (s *Store) Collection(name string) store.Collection {
	return &collection{coll: s.db.Collection(name)}
}

// Ping checks the primary.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type collection struct {
	coll *mongo.Collection
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

func (c *collection) Insert(ctx context.Context, doc store.Document) (string, error) {
	res, err := c.coll.InsertOne(ctx, toBSON(doc))
	if err != nil {
		return "", fmt.Errorf("mongostore: insert %s: %w", c.coll.Name(), err)
	}
	return idString(res.InsertedID), nil
}

func (c *collection) InsertMany(ctx context.Context, docs []store.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, toBSON(doc))
	}
	res, err := c.coll.InsertMany(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("mongostore: insert many %s: %w", c.coll.Name(), err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, idString(id))
	}
	return ids, nil
}

func (c *collection) FindByID(ctx context.Context, id string) (store.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongostore: find %s: %w", c.coll.Name(), err)
	}
	return fromBSON(raw), nil
}

func (c *collection) Find(ctx context.Context, filter store.Filter, opts store.FindOptions) ([]store.Document, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if len(opts.Fields) > 0 {
		projection := bson.M{}
		for _, f := range opts.Fields {
			projection[f] = 1
		}
		findOpts.SetProjection(projection)
	}
	cursor, err := c.coll.Find(ctx, filterBSON(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: find %s: %w", c.coll.Name(), err)
	}
	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("mongostore: decode %s: %w", c.coll.Name(), err)
	}
	out := make([]store.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromBSON(row))
	}
	return out, nil
}

func (c *collection) UpdateByID(ctx context.Context, id string, fields store.Document) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	set := toBSON(fields)
	if len(set) == 0 {
		n, err := c.coll.CountDocuments(ctx, bson.M{"_id": oid})
		return n, err
	}
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("mongostore: update %s: %w", c.coll.Name(), err)
	}
	return res.MatchedCount, nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("mongostore: delete %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

func (c *collection) Count(ctx context.Context, filter store.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filterBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("mongostore: count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}

// filterBSON translates a store filter into a MongoDB query document.
func filterBSON(f store.Filter) bson.M {
	query := bson.M{}
	for _, field := range f.NotInFields() {
		query[field] = bson.M{"$nin": f.NotIn[field]}
	}
	for _, field := range f.NonEmpty {
		query[field] = bson.M{"$type": "array", "$ne": bson.A{}}
	}
	return query
}
