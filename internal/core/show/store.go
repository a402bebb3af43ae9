package show

import (
	"context"
	"time"
)

// Repository persists shows. Every read resolves the artist and venue of
// each show and returns rows in insertion order.
type Repository interface {
	Create(context context.Context, show *Show) error
	ListByVenue(context context.Context, venueID int) ([]*Show, error)
	ListByArtist(context context.Context, artistID int) ([]*Show, error)
	// ListUpcoming returns every show starting at or after since.
	ListUpcoming(context context.Context, since time.Time) ([]*Show, error)
}
