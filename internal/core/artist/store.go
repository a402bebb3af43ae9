package artist

import "context"

type Repository interface {
	List(context context.Context) ([]*Artist, error)
	Get(context context.Context, id int) (*Artist, error)
	SearchByName(context context.Context, term string) ([]*Artist, error)
	Create(context context.Context, artist *Artist) error
	Update(context context.Context, artist *Artist) error
	Delete(context context.Context, id int) error
}
