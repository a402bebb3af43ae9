package artist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
	"github.com/taibuivan/fyyur/pkg/query"
)

const resource = "Artist"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectArtist = fmt.Sprintf(`
	SELECT a.%s,
		COALESCE(a.%s, ''), COALESCE(a.%s, ''), COALESCE(a.%s, ''), COALESCE(a.%s, ''),
		COALESCE(a.%s, ''), COALESCE(a.%s, ''), COALESCE(a.%s, ''), COALESCE(a.%s, ''),
		COALESCE(a.%s, FALSE), COALESCE(a.%s, ''),
		%s
	FROM %s a`,
	schema.Artist.ID,
	schema.Artist.Name, schema.Artist.Slug, schema.Artist.City, schema.Artist.State,
	schema.Artist.Phone, schema.Artist.Website, schema.Artist.ImageLink, schema.Artist.FacebookLink,
	schema.Artist.SeekingVenues, schema.Artist.SeekingDescription,
	genre.AggregateSQL(schema.ArtistGenre, "a."+schema.Artist.ID),
	schema.Artist.Table,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Artist, error) {
	sql := fmt.Sprintf(`%s ORDER BY a.%s ASC`, selectArtist, schema.Artist.ID)
	return repository.list(context, "list_artists", sql)
}

func (repository *PostgresRepository) SearchByName(context context.Context, term string) ([]*Artist, error) {
	// An empty term matches every artist, including one stored without a name.
	if term == "" {
		sql := fmt.Sprintf(`%s ORDER BY a.%s ASC`, selectArtist, schema.Artist.ID)
		return repository.list(context, "search_artists", sql)
	}

	sql := fmt.Sprintf(`%s WHERE a.%s ILIKE $1 ORDER BY a.%s ASC`, selectArtist, schema.Artist.Name, schema.Artist.ID)
	return repository.list(context, "search_artists", sql, query.Contains(term))
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Artist, error) {
	sql := fmt.Sprintf(`%s WHERE a.%s = $1`, selectArtist, schema.Artist.ID)

	a, err := scanArtist(repository.db.QueryRow(context, sql, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_artist")
	}
	return a, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Artist) error {
	columns := schema.Artist.Mutable()
	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		schema.Artist.Table, strings.Join(columns, ", "), schema.Placeholders(1, len(columns)), schema.Artist.ID,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		if err := transaction.QueryRow(context, sql, mutableValues(a)...).Scan(&a.ID); err != nil {
			return err
		}
		return genre.InsertLinks(context, transaction, schema.ArtistGenre, a.ID, a.GenreIDs)
	})
	return dberr.Wrap(err, resource, "create_artist")
}

func (repository *PostgresRepository) Update(context context.Context, a *Artist) error {
	columns := schema.Artist.Mutable()
	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		schema.Artist.Table, schema.Assignments(1, columns...), schema.Artist.ID, len(columns)+1,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		tag, err := transaction.Exec(context, sql, append(mutableValues(a), a.ID)...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return genre.ReplaceLinks(context, transaction, schema.ArtistGenre, a.ID, a.GenreIDs)
	})
	return dberr.Wrap(err, resource, "update_artist")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Artist.Table, schema.Artist.ID)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		if err := genre.ClearLinks(context, transaction, schema.ArtistGenre, id); err != nil {
			return err
		}

		tag, err := transaction.Exec(context, sql, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return nil
	})
	return dberr.Wrap(err, resource, "delete_artist")
}

func (repository *PostgresRepository) list(context context.Context, action, sql string, args ...any) ([]*Artist, error) {
	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	artists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Artist, error) {
		return scanArtist(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	return artists, nil
}

// mutableValues returns the artist's column values in [schema.ArtistTable.Mutable] order.
func mutableValues(a *Artist) []any {
	return []any{
		a.Name, a.Slug, a.City, a.State, a.Phone, a.Website,
		a.ImageLink, a.FacebookLink, a.SeekingVenues, a.SeekingDescription,
	}
}

func scanArtist(row pgx.Row) (*Artist, error) {
	a := &Artist{}
	var genresJSON []byte

	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.City, &a.State,
		&a.Phone, &a.Website, &a.ImageLink, &a.FacebookLink,
		&a.SeekingVenues, &a.SeekingDescription,
		&genresJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genresJSON, &a.Genres); err != nil {
		return nil, fmt.Errorf("decode artist genres: %w", err)
	}
	a.GenreIDs = make([]int, len(a.Genres))
	for i, g := range a.Genres {
		a.GenreIDs[i] = g.ID
	}

	return a, nil
}
