package artist_test

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

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/pkg/choice"
	"github.com/taibuivan/fyyur/pkg/slug"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]*artist.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*artist.Artist), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, id int) (*artist.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artist.Artist), args.Error(1)
}

func (m *mockRepository) SearchByName(ctx context.Context, term string) ([]*artist.Artist, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]*artist.Artist), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, a *artist.Artist) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 4
	}
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, a *artist.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockShows struct {
	mock.Mock
}

func (m *mockShows) ListByArtist(ctx context.Context, artistID int) ([]*show.Show, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]*show.Show), args.Error(1)
}

type mockGenres struct {
	mock.Mock
}

func (m *mockGenres) Missing(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]int), args.Error(1)
}

type fixture struct {
	repo    *mockRepository
	shows   *mockShows
	genres  *mockGenres
	service *artist.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:   new(mockRepository),
		shows:  new(mockShows),
		genres: new(mockGenres),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = artist.NewService(f.repo, f.shows, f.genres, logger).
		WithClock(func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) })
	return f
}

func gunsNPetals() artist.Input {
	return artist.Input{
		Name:          "Guns N Petals",
		City:          "San Francisco",
		State:         "CA",
		Phone:         "326-123-5000",
		Website:       "https://www.gunsnpetalsband.com",
		ImageLink:     "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
		SeekingVenues: true,
		Genres:        []int{17},
	}
}

/*
TestService_CreateArtist verifies the slug and genre set handed to the store.
*/
func TestService_CreateArtist(t *testing.T) {
	f := newFixture()
	f.genres.On("Missing", mock.Anything, []int{17}).Return([]int{}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *artist.Artist) bool {
		return a.Slug == "guns_n_petals" && a.SeekingVenues && assert.ObjectsAreEqual([]int{17}, a.GenreIDs)
	})).Return(nil)
	f.repo.On("Get", mock.Anything, 4).Return(&artist.Artist{ID: 4, Name: "Guns N Petals", Genres: []genre.Genre{{ID: 17, Name: "Rock n Roll"}}}, nil)

	created, err := f.service.CreateArtist(context.Background(), gunsNPetals())

	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	f.repo.AssertExpectations(t)
}

/*
TestService_CreateArtist_Invalid covers the artist form rules.
*/
func TestService_CreateArtist_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*artist.Input)
		field  string
	}{
		{name: "missing name", mutate: func(in *artist.Input) { in.Name = "" }, field: artist.FieldName},
		{name: "missing state", mutate: func(in *artist.Input) { in.State = "" }, field: artist.FieldState},
		{name: "bad image link", mutate: func(in *artist.Input) { in.ImageLink = "not a url" }, field: artist.FieldImageLink},
		{name: "no genres", mutate: func(in *artist.Input) { in.Genres = []int{} }, field: genre.FieldGenres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			input := gunsNPetals()
			tt.mutate(&input)

			_, err := f.service.CreateArtist(context.Background(), input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

/*
TestService_GetDetail verifies the artist view projects venues.
*/
func TestService_GetDetail(t *testing.T) {
	f := newFixture()
	f.repo.On("Get", mock.Anything, 4).Return(&artist.Artist{ID: 4, Name: "Guns N Petals"}, nil)
	f.shows.On("ListByArtist", mock.Anything, 4).Return([]*show.Show{
		{ID: 1, ArtistID: 4, VenueID: 1, VenueName: "The Musical Hop", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	}, nil)

	detail, err := f.service.GetDetail(context.Background(), 4)

	require.NoError(t, err)
	require.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, "The Musical Hop", detail.PastShows[0].VenueName)
	assert.Equal(t, 0, detail.UpcomingShowsCount)
}

/*
TestService_GetDetail_NotFound verifies shows are not read for a missing artist.
*/
func TestService_GetDetail_NotFound(t *testing.T) {
	f := newFixture()
	f.repo.On("Get", mock.Anything, 9).Return(nil, apperr.NotFound("Artist"))

	_, err := f.service.GetDetail(context.Background(), 9)

	assert.True(t, apperr.Is(err, "NOT_FOUND"))
	f.shows.AssertNotCalled(t, "ListByArtist", mock.Anything, mock.Anything)
}

/*
TestService_Choices lists artists as show form options.
*/
func TestService_Choices(t *testing.T) {
	f := newFixture()
	f.repo.On("List", mock.Anything).Return([]*artist.Artist{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, nil)

	options, err := f.service.Choices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []choice.Option{{Value: 4, Label: "Guns N Petals"}, {Value: 5, Label: "Matt Quevedo"}}, options)
}

/*
TestService_DeleteArtist passes NOT_FOUND through.
*/
func TestService_DeleteArtist(t *testing.T) {
	f := newFixture()
	f.repo.On("Delete", mock.Anything, 9).Return(apperr.NotFound("Artist"))

	err := f.service.DeleteArtist(context.Background(), 9)

	assert.True(t, apperr.Is(err, "NOT_FOUND"))
}

/*
TestService_UpdateArtist verifies the slug follows the new name and the re-read record is returned.
*/
func TestService_UpdateArtist(t *testing.T) {
	f := newFixture()
	input := gunsNPetals()
	input.Name = "The Wild Sax Band"
	input.Genres = []int{8, 8, 17}

	f.genres.On("Missing", mock.Anything, []int{8, 17}).Return([]int{}, nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(a *artist.Artist) bool {
		return a.ID == 6 && a.Slug == slug.From("The Wild Sax Band") &&
			assert.ObjectsAreEqual([]int{8, 17}, a.GenreIDs)
	})).Return(nil)
	stored := &artist.Artist{ID: 6, Name: "The Wild Sax Band", Slug: "the_wild_sax_band"}
	f.repo.On("Get", mock.Anything, 6).Return(stored, nil)

	updated, err := f.service.UpdateArtist(context.Background(), 6, input)

	require.NoError(t, err)
	assert.Same(t, stored, updated)
	f.repo.AssertExpectations(t)
}

/*
TestService_CreateArtist_ReloadFails verifies a committed create is still reported as created.
*/
func TestService_CreateArtist_ReloadFails(t *testing.T) {
	f := newFixture()
	f.genres.On("Missing", mock.Anything, []int{17}).Return([]int{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("Get", mock.Anything, 4).Return(nil, apperr.Internal(errors.New("connection reset")))

	created, err := f.service.CreateArtist(context.Background(), gunsNPetals())

	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "guns_n_petals", created.Slug)
	assert.Equal(t, []genre.Genre{{ID: 17}}, created.Genres)
}
