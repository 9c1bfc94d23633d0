package mongostore

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/supplyline/supplyline/internal/store"
)

func toBSON(doc store.Document) bson.M {
	out := bson.M{}
	for k, v := range doc {
		if k == store.IDField || k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}

func fromBSON(raw bson.M) store.Document {
	doc := store.Document{}
	for k, v := range raw {
		if k == "_id" {
			doc[store.IDField] = idString(v)
			continue
		}
		doc[k] = plain(v)
	}
	return doc
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

// plain rewrites driver types into the value set a store.Document allows.
func plain(v interface{}) any {
	switch t := v.(type) {
	case bson.M:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = plain(val)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		arr := make([]any, len(t))
		for i, val := range t {
			arr[i] = plain(val)
		}
		return arr
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return t.String()
		}
		return f
	default:
		return t
	}
}
