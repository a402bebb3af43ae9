package artist

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/choice"
	"github.com/taibuivan/fyyur/pkg/slice"
	"github.com/taibuivan/fyyur/pkg/slug"
)

type GenreChecker interface {
	Missing(context context.Context, ids []int) ([]int, error)
}

type ShowLister interface {
	ListByArtist(context context.Context, artistID int) ([]*show.Show, error)
}

type Service struct {
	repo   Repository
	shows  ShowLister
	genres GenreChecker
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, shows ShowLister, genres GenreChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		shows:  shows,
		genres: genres,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

func (service *Service) ListArtists(context context.Context) ([]*Artist, error) {
	return service.repo.List(context)
}

func (service *Service) Search(context context.Context, term string) (*SearchResult, error) {
	artists, err := service.repo.SearchByName(context, term)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(artists), Data: artists}, nil
}

func (service *Service) GetArtist(context context.Context, id int) (*Artist, error) {
	return service.repo.Get(context, id)
}

func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	artist, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	shows, err := service.shows.ListByArtist(context, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Artist: artist, Schedule: show.ForArtist(shows, service.now())}, nil
}

func (service *Service) CreateArtist(context context.Context, input Input) (*Artist, error) {
	artist, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created", slog.Int("artist_id", artist.ID), slog.String("name", artist.Name))
	return service.reload(context, artist), nil
}

func (service *Service) UpdateArtist(context context.Context, id int, input Input) (*Artist, error) {
	artist, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}
	artist.ID = id

	if err := service.repo.Update(context, artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", id))
	return service.reload(context, artist), nil
}

// reload re-reads a written artist so the response carries its genre names.
// The write is already committed, so a failed read falls back to the record as written,
// with genre ids only.
func (service *Service) reload(context context.Context, written *Artist) *Artist {
	stored, err := service.repo.Get(context, written.ID)
	if err != nil {
		service.logger.Warn("artist_reload_failed", slog.Int("artist_id", written.ID), slog.Any("error", err))
		written.Genres = slice.Map(written.GenreIDs, func(id int) genre.Genre { return genre.Genre{ID: id} })
		return written
	}
	return stored
}

func (service *Service) DeleteArtist(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("artist_deleted", slog.Int("artist_id", id))
	return nil
}

func (service *Service) Exists(context context.Context, id int) (bool, error) {
	_, err := service.repo.Get(context, id)
	switch {
	case err == nil:
		return true, nil
	case apperr.Is(err, "NOT_FOUND"):
		return false, nil
	default:
		return false, err
	}
}

func (service *Service) Choices(context context.Context) ([]choice.Option, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	return slice.Map(artists, func(a *Artist) choice.Option {
		return choice.Option{Value: a.ID, Label: a.Name}
	}), nil
}

func (service *Service) prepare(context context.Context, input Input) (*Artist, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 120).
		Required(FieldCity, input.City).MaxLen(FieldCity, input.City, 120).
		OneOf(FieldState, input.State, constants.States...).
		Phone(FieldPhone, input.Phone).
		URL(FieldWebsite, input.Website).MaxLen(FieldWebsite, input.Website, 120).
		URL(FieldImageLink, input.ImageLink).MaxLen(FieldImageLink, input.ImageLink, 500).
		URL(FieldFacebookLink, input.FacebookLink).MaxLen(FieldFacebookLink, input.FacebookLink, 120).
		MaxLen(FieldSeekingDescription, input.SeekingDescription, 500).
		NotEmpty(genre.FieldGenres, len(input.Genres))

	if err := validator.Err(); err != nil {
		return nil, err
	}

	genreIDs := slice.Unique(input.Genres)
	missing, err := service.genres.Missing(context, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, validate.FieldError(genre.FieldGenres, "Not a valid choice")
	}

	return &Artist{
		Name:               input.Name,
		Slug:               slug.From(input.Name),
		City:               input.City,
		State:              input.State,
		Phone:              input.Phone,
		Website:            input.Website,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		SeekingVenues:      input.SeekingVenues,
		SeekingDescription: input.SeekingDescription,
		GenreIDs:           genreIDs,
	}, nil
}
