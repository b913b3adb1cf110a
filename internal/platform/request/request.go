// Copyright (c) 2026 Chaldea. All rights reserved.

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

	"github.com/velkorra/chaldea/internal/platform/apperr"
	"github.com/velkorra/chaldea/internal/platform/constants"
	"github.com/velkorra/chaldea/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
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
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError when the segment is not a valid integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Parameter '" + name + "' must be an integer")
	}
	return value, nil
}

/*
IntQuery retrieves a query-string parameter and parses it as an integer.

Used by the endpoints that address composite keys through the query string
(e.g. GET /contracts?servant_id=1&master_id=2).
*/
func IntQuery(request *http.Request, name string) (int, error) {
	raw := request.URL.Query().Get(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Query parameter '" + name + "' must be an integer")
	}
	return value, nil
}

/*
ParseAnyForm parses the request body as either a multipart or url-encoded
form, so form endpoints work with both browser uploads and plain curl. The
multipart reader is capped at [constants.MaxUploadBytes] in memory.

Returns:
  - error: apperr.ValidationError when neither representation parses
*/
func ParseAnyForm(request *http.Request) error {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		if err := request.ParseForm(); err != nil {
			return apperr.ValidationError("Invalid form payload")
		}
	}
	return nil
}

/*
FormValue retrieves a multipart/urlencoded form field as a trimmed string.

An absent field returns "".
*/
func FormValue(request *http.Request, name string) string {
	return request.FormValue(name)
}

/*
FormInt retrieves a form field and parses it as an integer.

Returns:
  - int: The parsed value
  - error: apperr.ValidationError when the field is missing or malformed
*/
func FormInt(request *http.Request, name string) (int, error) {
	raw := request.FormValue(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Form field '" + name + "' must be an integer")
	}
	return value, nil
}
