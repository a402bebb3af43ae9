package genre_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/pkg/choice"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]*genre.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*genre.Genre), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, id int) (*genre.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *mockRepository) Existing(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func newService(repo genre.Repository) *genre.Service {
	return genre.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_Choices verifies that genres become form options in store order.
*/
func TestService_Choices(t *testing.T) {
	repo := new(mockRepository)
	repo.On("List", mock.Anything).Return([]*genre.Genre{
		{ID: 7, Name: "Jazz", Slug: "jazz"},
		{ID: 13, Name: "Reggae", Slug: "reggae"},
	}, nil)

	options, err := newService(repo).Choices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []choice.Option{{Value: 7, Label: "Jazz"}, {Value: 13, Label: "Reggae"}}, options)
	repo.AssertExpectations(t)
}

/*
TestService_Missing covers the genre existence check used by venue and artist forms.
*/
func TestService_Missing(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int
		existing []int
		want     []int
	}{
		{name: "all known", ids: []int{1, 2}, existing: []int{2, 1}, want: []int{}},
		{name: "one unknown", ids: []int{1, 99}, existing: []int{1}, want: []int{99}},
		{name: "empty request", ids: []int{}, existing: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			repo.On("Existing", mock.Anything, tt.ids).Return(tt.existing, nil)

			missing, err := newService(repo).Missing(context.Background(), tt.ids)

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, missing)
		})
	}
}

/*
TestService_Missing_StoreError verifies that lookup failures are not reported as missing ids.
*/
func TestService_Missing_StoreError(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Existing", mock.Anything, []int{1}).Return(nil, errors.New("boom"))

	missing, err := newService(repo).Missing(context.Background(), []int{1})

	assert.Error(t, err)
	assert.Nil(t, missing)
}
