package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode converts a tagged record into a Document using its json tags. The
// identifier key is dropped; backends assign it.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}
	doc, err := DecodeJSON(raw)
	if err != nil {
		return nil, err
	}
	delete(doc, IDField)
	return doc, nil
}

// Decode fills a tagged record from a Document.
func Decode(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: decode: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("store: decode: %w", err)
	}
	return nil
}

// DecodeJSON parses a JSON object into a Document with normalized numbers.
func DecodeJSON(raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("store: decode json: %w", err)
	}
	return Document(Normalize(m).(map[string]any)), nil
}

// Normalize rewrites json.Number values into int64 or float64 so every
// backend stores numbers natively.
func Normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, val := range t {
			t[k] = Normalize(val)
		}
		return t
	case Document:
		for k, val := range t {
			t[k] = Normalize(val)
		}
		return map[string]any(t)
	case []any:
		for i, val := range t {
			t[i] = Normalize(val)
		}
		return t
	default:
		return v
	}
}

// Clone deep-copies a document through its JSON form.
func Clone(doc Document) Document {
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	out, err := DecodeJSON(raw)
	if err != nil {
		return nil
	}
	return out
}
