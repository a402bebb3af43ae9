package genre

import "context"

type Repository interface {
	List(context context.Context) ([]*Genre, error)
	Get(context context.Context, id int) (*Genre, error)
	// Existing returns the subset of ids that have a Genre row.
	Existing(context context.Context, ids []int) ([]int, error)
}
