package show

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

const resource = "Show"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectJoined reads shows with their artist and venue resolved.
var selectJoined = fmt.Sprintf(`
	SELECT s.%s, s.%s, s.%s, s.%s,
		COALESCE(a.%s, ''), COALESCE(a.%s, ''),
		COALESCE(v.%s, ''), COALESCE(v.%s, '')
	FROM %s s
	JOIN %s a ON a.%s = s.%s
	JOIN %s v ON v.%s = s.%s`,
	schema.Show.ID, schema.Show.StartTime, schema.Show.ArtistID, schema.Show.VenueID,
	schema.Artist.Name, schema.Artist.ImageLink,
	schema.Venue.Name, schema.Venue.ImageLink,
	schema.Show.Table,
	schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
	schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
)

func (repository *PostgresRepository) Create(context context.Context, show *Show) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Show.Table, schema.Show.StartTime, schema.Show.ArtistID, schema.Show.VenueID, schema.Show.ID,
	)

	err := repository.db.QueryRow(context, query, show.StartTime, show.ArtistID, show.VenueID).Scan(&show.ID)
	return dberr.Wrap(err, resource, "create_show")
}

func (repository *PostgresRepository) ListByVenue(context context.Context, venueID int) ([]*Show, error) {
	query := fmt.Sprintf(`%s WHERE s.%s = $1 ORDER BY s.%s ASC`, selectJoined, schema.Show.VenueID, schema.Show.ID)
	return repository.list(context, "list_venue_shows", query, venueID)
}

func (repository *PostgresRepository) ListByArtist(context context.Context, artistID int) ([]*Show, error) {
	query := fmt.Sprintf(`%s WHERE s.%s = $1 ORDER BY s.%s ASC`, selectJoined, schema.Show.ArtistID, schema.Show.ID)
	return repository.list(context, "list_artist_shows", query, artistID)
}

func (repository *PostgresRepository) ListUpcoming(context context.Context, since time.Time) ([]*Show, error) {
	query := fmt.Sprintf(`%s WHERE s.%s >= $1 ORDER BY s.%s ASC`, selectJoined, schema.Show.StartTime, schema.Show.ID)
	return repository.list(context, "list_upcoming_shows", query, since)
}

func (repository *PostgresRepository) list(context context.Context, action, query string, args ...any) ([]*Show, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	shows, err := pgx.CollectRows(rows, scanShow)
	if err != nil {
		return nil, dberr.Wrap(err, resource, action)
	}

	return shows, nil
}

func scanShow(row pgx.CollectableRow) (*Show, error) {
	s := &Show{}
	err := row.Scan(
		&s.ID, &s.StartTime, &s.ArtistID, &s.VenueID,
		&s.ArtistName, &s.ArtistImageLink,
		&s.VenueName, &s.VenueImageLink,
	)
	return s, err
}
