package pgstore

import (
	"fmt"
	"strings"

	"github.com/supplyline/supplyline/internal/store"
)

// whereClause renders the filter as SQL over the body column. Field names
// travel as parameters so they never reach the query text.
func whereClause(collection string, f store.Filter) (string, []any) {
	args := []any{collection}
	parts := []string{"collection = $1"}

	for _, field := range f.NotInFields() {
		args = append(args, field)
		keyPos := len(args)
		args = append(args, f.NotIn[field])
		parts = append(parts, fmt.Sprintf("COALESCE(body->>$%d, '') <> ALL($%d::text[])", keyPos, len(args)))
	}
	for _, field := range f.NonEmpty {
		args = append(args, field)
		pos := len(args)
		parts = append(parts, fmt.Sprintf(
			"COALESCE(jsonb_array_length(CASE WHEN jsonb_typeof(body->$%d) = 'array' THEN body->$%d END), 0) > 0",
			pos, pos))
	}
	return strings.Join(parts, " AND "), args
}
