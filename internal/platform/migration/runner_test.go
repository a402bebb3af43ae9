// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestConvertToPgx5DSN verifies the scheme rewrite expected by golang-migrate.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://postgres@localhost:5432/fyyur", "pgx5://postgres@localhost:5432/fyyur"},
		{"postgresql_scheme", "postgresql://u:p@db/fyyur?sslmode=disable", "pgx5://u:p@db/fyyur?sslmode=disable"},
		{"already_pgx5", "pgx5://db/fyyur", "pgx5://db/fyyur"},
		{"keyword_dsn_untouched", "host=localhost dbname=fyyur", "host=localhost dbname=fyyur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.dsn))
		})
	}
}
