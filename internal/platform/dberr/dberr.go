// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// A missing row becomes NOT_FOUND for the given resource. Everything else
// (constraint violations, lost connections, scan failures) is collapsed into a
// single INTERNAL_ERROR; the pgx error is kept as the cause, tagged with action,
// so it shows up in logs but never in a response.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if apperr.As(err) != nil {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
