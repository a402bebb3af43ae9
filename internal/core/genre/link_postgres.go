package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
)

/*
AggregateSQL returns a scalar sub-select that collects the genres linked to
ownerColumn through the association table as a JSON array, in link order.

It lets venue and artist queries return their genre set in the same round
trip as the row itself. The result is never NULL: an owner without genres
yields '[]'.
*/
func AggregateSQL(link schema.GenreRelationshipTable, ownerColumn string) string {
	return fmt.Sprintf(`COALESCE((
		SELECT json_agg(json_build_object('id', g.%s, 'name', g.%s, 'slug', g.%s) ORDER BY l.%s)
		FROM %s l
		JOIN %s g ON g.%s = l.%s
		WHERE l.%s = %s
	), '[]')`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Slug, link.ID,
		link.Table,
		schema.Genre.Table, schema.Genre.ID, link.GenreID,
		link.OwnerID, ownerColumn,
	)
}

/*
ReplaceLinks makes genreIDs the complete genre set of ownerID.

It is a "clear and insert" replacement, not a diff: every existing link row
of the owner is deleted and the new set is inserted. It must run inside the
caller's transaction so a failed insert also restores the deleted rows.
*/
func ReplaceLinks(context context.Context, transaction pgx.Tx, link schema.GenreRelationshipTable, ownerID int, genreIDs []int) error {
	if err := ClearLinks(context, transaction, link, ownerID); err != nil {
		return err
	}
	return InsertLinks(context, transaction, link, ownerID, genreIDs)
}

// InsertLinks queues one association row per genre id on a single pgx.Batch.
func InsertLinks(context context.Context, transaction pgx.Tx, link schema.GenreRelationshipTable, ownerID int, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", link.Table, link.OwnerID, link.GenreID)
	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insertQuery, ownerID, genreID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", link.Table, err)
	}

	return nil
}

// ClearLinks deletes every association row of ownerID.
func ClearLinks(context context.Context, transaction pgx.Tx, link schema.GenreRelationshipTable, ownerID int) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", link.Table, link.OwnerID)
	if _, err := transaction.Exec(context, deleteQuery, ownerID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", link.Table, err)
	}
	return nil
}
