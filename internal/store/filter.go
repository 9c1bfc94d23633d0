package store

import "sort"

// Filter selects documents. An empty filter matches everything.
type Filter struct {
	// NotIn keeps documents whose field value is not one of the listed strings.
	// Documents missing the field match.
	NotIn map[string][]string
	// NonEmpty keeps documents whose field holds a non-empty array.
	NonEmpty []string
}

// StatusNotIn builds a filter excluding the given terminal statuses.
func StatusNotIn(statuses ...string) Filter {
	return Filter{NotIn: map[string][]string{"status": statuses}}
}

// HasEntries builds a filter keeping documents whose field is a non-empty array.
func HasEntries(field string) Filter {
	return Filter{NonEmpty: []string{field}}
}

// IsZero reports whether the filter matches every document.
func (f Filter) IsZero() bool {
	return len(f.NotIn) == 0 && len(f.NonEmpty) == 0
}

// NotInFields returns the NotIn keys in a stable order.
func (f Filter) NotInFields() []string {
	keys := make([]string, 0, len(f.NotIn))
	for k := range f.NotIn {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match evaluates the filter against a document in process. Backends that
// cannot push the filter down use it directly.
func (f Filter) Match(doc Document) bool {
	for field, values := range f.NotIn {
		raw, ok := doc[field]
		if !ok || raw == nil {
			continue
		}
		s, isString := raw.(string)
		if !isString {
			continue
		}
		for _, v := range values {
			if s == v {
				return false
			}
		}
	}
	for _, field := range f.NonEmpty {
		arr, ok := doc[field].([]any)
		if !ok || len(arr) == 0 {
			return false
		}
	}
	return true
}

// Project returns a copy of doc limited to fields plus the identifier.
func Project(doc Document, fields []string) Document {
	if len(fields) == 0 {
		return doc
	}
	out := make(Document, len(fields)+1)
	if id, ok := doc[IDField]; ok {
		out[IDField] = id
	}
	for _, f := range fields {
		if v, ok := doc[f]; ok {
			out[f] = v
		}
	}
	return out
}
