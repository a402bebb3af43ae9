// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

// NewFlashHandler returns GET /api/v1/flash: the session's pending messages,
// which are removed by the read.
func NewFlashHandler(store *flash.Store) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		messages, err := store.Drain(request.Context(), ctxutil.GetSessionID(request.Context()))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, messages)
	}
}
