package genre

import (
	"context"
	"log/slog"

	"github.com/taibuivan/fyyur/pkg/choice"
	"github.com/taibuivan/fyyur/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.List(context)
}

func (service *Service) GetGenre(context context.Context, id int) (*Genre, error) {
	return service.repo.Get(context, id)
}

// Choices loads the genre options for the venue and artist forms.
func (service *Service) Choices(context context.Context) ([]choice.Option, error) {
	genres, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	return slice.Map(genres, func(g *Genre) choice.Option {
		return choice.Option{Value: g.ID, Label: g.Name}
	}), nil
}

// Missing returns the ids in the request that do not name an existing genre.
func (service *Service) Missing(context context.Context, ids []int) ([]int, error) {
	existing, err := service.repo.Existing(context, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	return slice.Filter(ids, func(id int) bool {
		_, ok := found[id]
		return !ok
	}), nil
}
