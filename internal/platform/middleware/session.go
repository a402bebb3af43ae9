// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/pkg/uuidv7"
)

// # Browser Session

// Session makes sure every request carries a browser session id.
//
// The id lives in an HttpOnly cookie and only scopes flash messages; it is
// not an authentication token. A cookie that is not a UUID is replaced.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			sessionID := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuidv7.New()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(constants.SessionCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithSessionID(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
