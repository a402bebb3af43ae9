package artist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
)

func newHandler(t *testing.T, f *fixture) (http.Handler, *flash.Store) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	flashes := flash.NewStore(client)
	return artist.NewHandler(f.service, flashes).Routes(), flashes
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request = request.WithContext(ctxutil.WithSessionID(request.Context(), "session-artist"))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_CreateArtist verifies 201 and the success flash.
*/
func TestHandler_CreateArtist(t *testing.T) {
	f := newFixture()
	f.genres.On("Missing", mock.Anything, []int{17}).Return([]int{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.repo.On("Get", mock.Anything, 4).Return(&artist.Artist{ID: 4, Name: "Guns N Petals"}, nil)
	handler, flashes := newHandler(t, f)

	body, err := json.Marshal(gunsNPetals())
	require.NoError(t, err)

	recorder := serve(handler, http.MethodPost, "/", string(body))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	messages, err := flashes.Drain(context.Background(), "session-artist")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Artist Guns N Petals was successfully created!", messages[0].Text)
}

/*
TestHandler_SearchArtists accepts a form-encoded search term.
*/
func TestHandler_SearchArtists(t *testing.T) {
	f := newFixture()
	f.repo.On("SearchByName", mock.Anything, "A").Return([]*artist.Artist{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, nil)
	handler, _ := newHandler(t, f)

	request := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("search_term=A"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var envelope struct {
		Data artist.SearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.Count)
}

/*
TestHandler_UpdateArtist_BadID verifies a non-numeric id is rejected before decoding.
*/
func TestHandler_UpdateArtist_BadID(t *testing.T) {
	handler, _ := newHandler(t, newFixture())

	recorder := serve(handler, http.MethodPut, "/0", `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
