package show_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/pkg/choice"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, s *show.Show) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 42
	}
	return args.Error(0)
}

func (m *mockRepository) ListByVenue(ctx context.Context, venueID int) ([]*show.Show, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).([]*show.Show), args.Error(1)
}

func (m *mockRepository) ListByArtist(ctx context.Context, artistID int) ([]*show.Show, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]*show.Show), args.Error(1)
}

func (m *mockRepository) ListUpcoming(ctx context.Context, since time.Time) ([]*show.Show, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]*show.Show), args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockDirectory) Choices(ctx context.Context) ([]choice.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]choice.Option), args.Error(1)
}

type fixture struct {
	repo    *mockRepository
	artists *mockDirectory
	venues  *mockDirectory
	service *show.Service
}

func newFixture(clock time.Time) *fixture {
	f := &fixture{
		repo:    new(mockRepository),
		artists: new(mockDirectory),
		venues:  new(mockDirectory),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = show.NewService(f.repo, f.artists, f.venues, logger).
		WithClock(func() time.Time { return clock })
	return f
}

/*
TestService_CreateShow_Success verifies a valid form is stored with a UTC start time.
*/
func TestService_CreateShow_Success(t *testing.T) {
	f := newFixture(now)
	f.artists.On("Exists", mock.Anything, 4).Return(true, nil)
	f.venues.On("Exists", mock.Anything, 1).Return(true, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(s *show.Show) bool {
		return s.ArtistID == 4 && s.VenueID == 1 &&
			s.StartTime.Equal(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	})).Return(nil)

	created, err := f.service.CreateShow(context.Background(), show.Input{
		ArtistID:  4,
		VenueID:   1,
		StartTime: "2035-04-01 20:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	f.repo.AssertExpectations(t)
}

/*
TestService_CreateShow_Invalid covers form validation that happens before any lookup.
*/
func TestService_CreateShow_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input show.Input
		field string
	}{
		{name: "missing artist", input: show.Input{VenueID: 1, StartTime: "2035-04-01 20:00:00"}, field: show.FieldArtistID},
		{name: "missing venue", input: show.Input{ArtistID: 1, StartTime: "2035-04-01 20:00:00"}, field: show.FieldVenueID},
		{name: "missing start time", input: show.Input{ArtistID: 1, VenueID: 1}, field: show.FieldStartTime},
		{name: "garbled start time", input: show.Input{ArtistID: 1, VenueID: 1, StartTime: "next tuesday"}, field: show.FieldStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)

			_, err := f.service.CreateShow(context.Background(), tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

/*
TestService_CreateShow_UnknownVenue verifies a dangling venue id is rejected.
*/
func TestService_CreateShow_UnknownVenue(t *testing.T) {
	f := newFixture(now)
	f.artists.On("Exists", mock.Anything, 4).Return(true, nil)
	f.venues.On("Exists", mock.Anything, 99).Return(false, nil)

	_, err := f.service.CreateShow(context.Background(), show.Input{ArtistID: 4, VenueID: 99, StartTime: "2035-04-01T20:00:00Z"})

	assert.True(t, apperr.Is(err, "VALIDATION_ERROR"))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

/*
TestService_ListUpcoming verifies the listing starts at midnight of the current day.
*/
func TestService_ListUpcoming(t *testing.T) {
	f := newFixture(time.Date(2024, 6, 15, 18, 45, 0, 0, time.UTC))
	midnight := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	f.repo.On("ListUpcoming", mock.Anything, midnight).Return([]*show.Show{
		{ID: 1, StartTime: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), VenueName: "The Musical Hop"},
	}, nil)

	listings, err := f.service.ListUpcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "2024-06-15T09:00:00", listings[0].StartTime)
}

/*
TestService_VenueSchedule covers the end-to-end classification of a booked show.
*/
func TestService_VenueSchedule(t *testing.T) {
	f := newFixture(now)
	f.repo.On("ListByVenue", mock.Anything, 1).Return([]*show.Show{
		{ID: 1, ArtistID: 4, ArtistName: "Guns N Petals", VenueID: 1, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	}, nil)

	schedule, err := f.service.VenueSchedule(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, 1, schedule.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", schedule.UpcomingShows[0].ArtistName)
	assert.Empty(t, schedule.PastShows)
}

/*
TestService_Choices verifies a failing directory aborts the form load.
*/
func TestService_Choices(t *testing.T) {
	f := newFixture(now)
	f.artists.On("Choices", mock.Anything).Return([]choice.Option{{Value: 4, Label: "Guns N Petals"}}, nil)
	f.venues.On("Choices", mock.Anything).Return(nil, errors.New("boom"))

	choices, err := f.service.Choices(context.Background())

	assert.Error(t, err)
	assert.Nil(t, choices)
}

/*
TestParseStartTime covers the accepted start time formats.
*/
func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2035-04-01 20:00:00",
		"2035-04-01T20:00:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00Z",
		"2035-04-01T22:00:00+02:00",
	} {
		got, err := show.ParseStartTime(value)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), value)
		assert.Equal(t, time.UTC, got.Location(), value)
	}

	_, err := show.ParseStartTime("2035-04-01")
	assert.Error(t, err)
}
