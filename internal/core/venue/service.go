package venue

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

// GenreChecker reports which of the requested genre ids do not exist.
type GenreChecker interface {
	Missing(context context.Context, ids []int) ([]int, error)
}

// ShowLister reads the shows booked at a venue.
type ShowLister interface {
	ListByVenue(context context.Context, venueID int) ([]*show.Show, error)
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

// WithClock replaces the clock used to classify shows.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// ListAreas loads every venue once and groups them by city and state.
func (service *Service) ListAreas(context context.Context) ([]Area, error) {
	venues, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return GroupByLocale(venues), nil
}

func (service *Service) ListByLocale(context context.Context, city, state string) ([]*Venue, error) {
	return service.repo.FilterByLocale(context, city, state)
}

func (service *Service) Search(context context.Context, term string) (*SearchResult, error) {
	venues, err := service.repo.SearchByName(context, term)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(venues), Data: venues}, nil
}

func (service *Service) GetVenue(context context.Context, id int) (*Venue, error) {
	return service.repo.Get(context, id)
}

// GetDetail loads a venue with its shows split into past and upcoming.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	venue, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	shows, err := service.shows.ListByVenue(context, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Venue: venue, Schedule: show.ForVenue(shows, service.now())}, nil
}

func (service *Service) CreateVenue(context context.Context, input Input) (*Venue, error) {
	venue, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created", slog.Int("venue_id", venue.ID), slog.String("name", venue.Name))
	return service.reload(context, venue), nil
}

func (service *Service) UpdateVenue(context context.Context, id int, input Input) (*Venue, error) {
	venue, err := service.prepare(context, input)
	if err != nil {
		return nil, err
	}
	venue.ID = id

	if err := service.repo.Update(context, venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", id))
	return service.reload(context, venue), nil
}

// reload re-reads a written venue so the response carries its genre names.
// The write is already committed, so a failed read falls back to the record as written,
// with genre ids only.
func (service *Service) reload(context context.Context, written *Venue) *Venue {
	stored, err := service.repo.Get(context, written.ID)
	if err != nil {
		service.logger.Warn("venue_reload_failed", slog.Int("venue_id", written.ID), slog.Any("error", err))
		written.Genres = slice.Map(written.GenreIDs, func(id int) genre.Genre { return genre.Genre{ID: id} })
		return written
	}
	return stored
}

func (service *Service) DeleteVenue(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.Int("venue_id", id))
	return nil
}

// Exists reports whether a venue with id is stored.
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

// Choices loads the venue options of the show form.
func (service *Service) Choices(context context.Context) ([]choice.Option, error) {
	venues, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	return slice.Map(venues, func(v *Venue) choice.Option {
		return choice.Option{Value: v.ID, Label: v.Name}
	}), nil
}

// prepare validates the form and builds the record to store.
func (service *Service) prepare(context context.Context, input Input) (*Venue, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 120).
		Required(FieldCity, input.City).MaxLen(FieldCity, input.City, 120).
		OneOf(FieldState, input.State, constants.States...).
		Required(FieldAddress, input.Address).MaxLen(FieldAddress, input.Address, 120).
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

	return &Venue{
		Name:               input.Name,
		Slug:               slug.From(input.Name),
		City:               input.City,
		State:              input.State,
		Address:            input.Address,
		Phone:              input.Phone,
		Website:            input.Website,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		SeekingTalent:      input.SeekingTalent,
		SeekingDescription: input.SeekingDescription,
		GenreIDs:           genreIDs,
	}, nil
}
