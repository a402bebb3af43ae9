// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID parses a named URL parameter as a positive integer primary key.

Returns:
  - int: the parsed id
  - error: a VALIDATION_ERROR naming the parameter when it is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || id <= 0 {
		return 0, validate.FieldError(name, "Must be a positive integer")
	}
	return id, nil
}

/*
SearchTerm reads "search_term" from a submitted form or the query string.
A missing term is the empty string, which matches everything.
*/
func SearchTerm(request *http.Request) string {
	return request.FormValue("search_term")
}
