package venue

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

const resource = "Venue"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectVenue reads a venue and its genre set. Optional columns may be NULL
// in rows written by other tools, so they are read through COALESCE.
var selectVenue = fmt.Sprintf(`
	SELECT v.%s,
		COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''),
		COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''), COALESCE(v.%s, ''),
		COALESCE(v.%s, ''), COALESCE(v.%s, FALSE), COALESCE(v.%s, ''),
		%s
	FROM %s v`,
	schema.Venue.ID,
	schema.Venue.Name, schema.Venue.Slug, schema.Venue.City, schema.Venue.State,
	schema.Venue.Address, schema.Venue.Phone, schema.Venue.Website, schema.Venue.ImageLink,
	schema.Venue.FacebookLink, schema.Venue.SeekingTalent, schema.Venue.SeekingDescription,
	genre.AggregateSQL(schema.VenueGenre, "v."+schema.Venue.ID),
	schema.Venue.Table,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Venue, error) {
	sql := fmt.Sprintf(`%s ORDER BY v.%s ASC`, selectVenue, schema.Venue.ID)
	return repository.list(context, "list_venues", sql)
}

func (repository *PostgresRepository) FilterByLocale(context context.Context, city, state string) ([]*Venue, error) {
	sql := fmt.Sprintf(`%s WHERE v.%s = $1 AND v.%s = $2 ORDER BY v.%s ASC`,
		selectVenue, schema.Venue.City, schema.Venue.State, schema.Venue.ID,
	)
	return repository.list(context, "filter_venues", sql, city, state)
}

func (repository *PostgresRepository) SearchByName(context context.Context, term string) ([]*Venue, error) {
	// An empty term matches every venue, including one stored without a name.
	if term == "" {
		sql := fmt.Sprintf(`%s ORDER BY v.%s ASC`, selectVenue, schema.Venue.ID)
		return repository.list(context, "search_venues", sql)
	}

	sql := fmt.Sprintf(`%s WHERE v.%s ILIKE $1 ORDER BY v.%s ASC`, selectVenue, schema.Venue.Name, schema.Venue.ID)
	return repository.list(context, "search_venues", sql, query.Contains(term))
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Venue, error) {
	sql := fmt.Sprintf(`%s WHERE v.%s = $1`, selectVenue, schema.Venue.ID)

	venue, err := scanVenue(repository.db.QueryRow(context, sql, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_venue")
	}
	return venue, nil
}

func (repository *PostgresRepository) Create(context context.Context, venue *Venue) error {
	columns := schema.Venue.Mutable()
	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		schema.Venue.Table, strings.Join(columns, ", "), schema.Placeholders(1, len(columns)), schema.Venue.ID,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		if err := transaction.QueryRow(context, sql, mutableValues(venue)...).Scan(&venue.ID); err != nil {
			return err
		}
		return genre.InsertLinks(context, transaction, schema.VenueGenre, venue.ID, venue.GenreIDs)
	})
	return dberr.Wrap(err, resource, "create_venue")
}

func (repository *PostgresRepository) Update(context context.Context, venue *Venue) error {
	columns := schema.Venue.Mutable()
	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		schema.Venue.Table, schema.Assignments(1, columns...), schema.Venue.ID, len(columns)+1,
	)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		tag, err := transaction.Exec(context, sql, append(mutableValues(venue), venue.ID)...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return genre.ReplaceLinks(context, transaction, schema.VenueGenre, venue.ID, venue.GenreIDs)
	})
	return dberr.Wrap(err, resource, "update_venue")
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Venue.Table, schema.Venue.ID)

	err := postgres.WithTx(context, repository.db, func(transaction pgx.Tx) error {
		if err := genre.ClearLinks(context, transaction, schema.VenueGenre, id); err != nil {
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
	return dberr.Wrap(err, resource, "delete_venue")
}

func (repository *PostgresRepository) list(context context.Context, action, sql string, args ...any) ([]*Venue, error) {
	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	venues, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Venue, error) {
		return scanVenue(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	return venues, nil
}

// mutableValues returns the venue's column values in [schema.VenueTable.Mutable] order.
func mutableValues(v *Venue) []any {
	return []any{
		v.Name, v.Slug, v.City, v.State, v.Address, v.Phone, v.Website,
		v.ImageLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription,
	}
}

func scanVenue(row pgx.Row) (*Venue, error) {
	v := &Venue{}
	var genresJSON []byte

	err := row.Scan(
		&v.ID, &v.Name, &v.Slug, &v.City, &v.State,
		&v.Address, &v.Phone, &v.Website, &v.ImageLink,
		&v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription,
		&genresJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genresJSON, &v.Genres); err != nil {
		return nil, fmt.Errorf("decode venue genres: %w", err)
	}
	v.GenreIDs = make([]int, len(v.Genres))
	for i, g := range v.Genres {
		v.GenreIDs[i] = g.ID
	}

	return v, nil
}
