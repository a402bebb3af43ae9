package show

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/choice"
)

// Directory is the part of the venue and artist services a show needs:
// an existence check for the form and the choice list to offer.
type Directory interface {
	Exists(context context.Context, id int) (bool, error)
	Choices(context context.Context) ([]choice.Option, error)
}

// Choices is the show form's choice lists.
type Choices struct {
	Artists []choice.Option `json:"artists"`
	Venues  []choice.Option `json:"venues"`
}

type Service struct {
	repo    Repository
	artists Directory
	venues  Directory
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, artists, venues Directory, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		artists: artists,
		venues:  venues,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// ListUpcoming returns the listing of shows starting today or later.
func (service *Service) ListUpcoming(context context.Context) ([]Listing, error) {
	now := service.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	shows, err := service.repo.ListUpcoming(context, today)
	if err != nil {
		return nil, err
	}

	return ToListings(shows), nil
}

func (service *Service) VenueSchedule(context context.Context, venueID int) (Schedule[ArtistAppearance], error) {
	shows, err := service.repo.ListByVenue(context, venueID)
	if err != nil {
		return Schedule[ArtistAppearance]{}, err
	}
	return ForVenue(shows, service.now()), nil
}

func (service *Service) ArtistSchedule(context context.Context, artistID int) (Schedule[VenueAppearance], error) {
	shows, err := service.repo.ListByArtist(context, artistID)
	if err != nil {
		return Schedule[VenueAppearance]{}, err
	}
	return ForArtist(shows, service.now()), nil
}

// Choices loads the artist and venue options of the show form.
func (service *Service) Choices(context context.Context) (*Choices, error) {
	artists, err := service.artists.Choices(context)
	if err != nil {
		return nil, err
	}

	venues, err := service.venues.Choices(context)
	if err != nil {
		return nil, err
	}

	return &Choices{Artists: artists, Venues: venues}, nil
}

func (service *Service) CreateShow(context context.Context, input Input) (*Show, error) {
	validator := &validate.Validator{}
	validator.PositiveID(FieldArtistID, input.ArtistID).
		PositiveID(FieldVenueID, input.VenueID).
		Required(FieldStartTime, input.StartTime)

	startTime, parseErr := ParseStartTime(input.StartTime)
	validator.Custom(FieldStartTime, input.StartTime != "" && parseErr != nil, "Must be a date and time (YYYY-MM-DD HH:MM:SS)")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.mustExist(context, service.artists, FieldArtistID, input.ArtistID); err != nil {
		return nil, err
	}
	if err := service.mustExist(context, service.venues, FieldVenueID, input.VenueID); err != nil {
		return nil, err
	}

	show := &Show{
		StartTime: startTime,
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
	}
	if err := service.repo.Create(context, show); err != nil {
		return nil, err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", show.ID),
		slog.Int("artist_id", show.ArtistID),
		slog.Int("venue_id", show.VenueID),
	)
	return show, nil
}

func (service *Service) mustExist(context context.Context, directory Directory, field string, id int) error {
	exists, err := directory.Exists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return validate.FieldError(field, "Does not exist")
	}
	return nil
}

// startTimeLayouts are tried in order. Layouts without an offset are read as UTC.
var startTimeLayouts = []string{
	constants.ShowTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseStartTime accepts the form layout, the datetime-local forms or
// RFC 3339 and returns the instant in UTC.
func ParseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.ValidationError("Invalid start time")
}
