// Package query holds helpers for building SQL match patterns from user input.
package query

import "strings"

// likeEscaper escapes the LIKE metacharacters with a backslash (the PostgreSQL default escape).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes a user-supplied term match literally inside a LIKE / ILIKE pattern.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// Contains builds a "%term%" pattern with the term escaped.
// The empty term yields "%%", which matches every non-null value.
func Contains(term string) string {
	return "%" + EscapeLike(term) + "%"
}
