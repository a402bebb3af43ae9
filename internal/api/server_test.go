// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/api"
	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/flash"
)

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	redisServer := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	flashes := flash.NewStore(client)

	// Repositories are never reached by the requests below.
	genres := genre.NewService(nil, logger)
	venues := venue.NewService(nil, nil, genres, logger)
	artists := artist.NewService(nil, nil, genres, logger)
	shows := show.NewService(nil, artists, venues, logger)

	liveness, readiness := api.NewHealthHandlers(deps, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Genre:     genre.NewHandler(genres),
		Venue:     venue.NewHandler(venues, flashes),
		Artist:    artist.NewHandler(artists, flashes),
		Show:      show.NewHandler(shows, flashes),
		Flash:     api.NewFlashHandler(flashes),
	})
	return server.Handler()
}

/*
TestServer_Health verifies the liveness probe.
*/
func TestServer_Health(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
}

/*
TestServer_Readiness covers the healthy and degraded readiness states.
*/
func TestServer_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		database   error
		wantStatus int
		wantState  string
	}{
		{name: "all healthy", database: nil, wantStatus: http.StatusOK, wantState: "ready"},
		{name: "database down", database: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantState: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(t, api.HealthDependencies{
				CheckDatabase:   func(context.Context) error { return tt.database },
				CheckFlashStore: func(context.Context) error { return nil },
			})

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			var envelope struct {
				Data struct {
					Status string `json:"status"`
					Checks []struct {
						Name string `json:"name"`
						OK   bool   `json:"ok"`
					} `json:"checks"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantState, envelope.Data.Status)
			assert.Len(t, envelope.Data.Checks, 2)
		})
	}
}

/*
TestServer_FlashRoundTrip verifies a failed booking leaves a flash for the same
browser session, and that reading it clears it.
*/
func TestServer_FlashRoundTrip(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	// The first request issues the session cookie
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/shows", strings.NewReader(`{"start_time":"soon"}`)))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, constants.SessionCookieName, cookies[0].Name)

	drain := func() []flash.Message {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/flash", nil)
		request.AddCookie(cookies[0])
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data []flash.Message `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return envelope.Data
	}

	assert.Equal(t, []flash.Message{{Level: flash.LevelError, Text: "An error occurred. Show could not be listed."}}, drain())
	assert.Empty(t, drain())
}

/*
TestServer_UnknownRoute verifies unmatched paths are 404.
*/
func TestServer_UnknownRoute(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/comics", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
