package genre_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/postgres/postgrestest"
	"github.com/taibuivan/fyyur/pkg/slug"
)

/*
TestPostgresRepository_SeededCatalog verifies the seed migration and slug rule agree.
*/
func TestPostgresRepository_SeededCatalog(t *testing.T) {
	pool := postgrestest.Pool(t)
	repo := genre.NewPostgresRepository(pool)
	ctx := context.Background()

	genres, err := repo.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(genres), 20)

	for _, g := range genres {
		assert.Equal(t, slug.From(g.Name), g.Slug, g.Name)
	}

	ids := postgrestest.GenreIDs(t, pool, "jazz", "reggae")
	existing, err := repo.Existing(ctx, append(ids, 1<<30))
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, existing)

	_, err = repo.Get(ctx, 1<<30)
	assert.True(t, apperr.Is(err, "NOT_FOUND"))
}
