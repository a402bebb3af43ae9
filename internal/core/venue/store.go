package venue

import "context"

// Repository persists venues together with their genre links. Listings are
// in insertion order and carry the resolved genres of each venue.
type Repository interface {
	List(context context.Context) ([]*Venue, error)
	Get(context context.Context, id int) (*Venue, error)
	FilterByLocale(context context.Context, city, state string) ([]*Venue, error)
	// SearchByName matches term case-insensitively and literally anywhere in the name.
	SearchByName(context context.Context, term string) ([]*Venue, error)
	Create(context context.Context, venue *Venue) error
	Update(context context.Context, venue *Venue) error
	Delete(context context.Context, id int) error
}
