package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

const resource = "Genre"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Slug,
		schema.Genre.Table, schema.Genre.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "list_genres")
	}
	defer rows.Close()

	genres := make([]*Genre, 0)
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, dberr.Wrap(err, resource, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), resource, "list_genres")
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Slug,
		schema.Genre.Table, schema.Genre.ID,
	)

	g := &Genre{}
	if err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name, &g.Slug); err != nil {
		return nil, dberr.Wrap(err, resource, "get_genre")
	}

	return g, nil
}

func (repository *PostgresRepository) Existing(context context.Context, ids []int) ([]int, error) {
	existing := make([]int, 0, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		schema.Genre.ID, schema.Genre.Table, schema.Genre.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "existing_genres")
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, resource, "scan_genre_id")
		}
		existing = append(existing, id)
	}

	return existing, dberr.Wrap(rows.Err(), resource, "existing_genres")
}
