// Package schema is the single registry of table and column names used by the
// PostgreSQL repositories. The layout is owned by data/migrations.
package schema

import (
	"fmt"
	"strings"
)

// Qualify prefixes every column with a table alias and joins them for a SELECT list.
//
//	schema.Qualify("v", "id", "name") // "v.id, v.name"
func Qualify(alias string, columns ...string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

// Placeholders returns "$from, $from+1, ..." for count bind parameters.
func Placeholders(from, count int) string {
	params := make([]string, count)
	for i := range params {
		params[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(params, ", ")
}

// Assignments returns "a = $from, b = $from+1, ..." for an UPDATE SET list.
func Assignments(from int, columns ...string) string {
	pairs := make([]string, len(columns))
	for i, column := range columns {
		pairs[i] = fmt.Sprintf("%s = $%d", column, from+i)
	}
	return strings.Join(pairs, ", ")
}
