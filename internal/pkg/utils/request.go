package utils

import (
	"net/http"
	"strconv"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseRequestBody decodes the JSON body into dst and runs tag validation.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return ValidateStruct(dst)
}

// ParsePageParams reads page/page_size query parameters with defaults.
func ParsePageParams(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = constvars.BookingsPageSize

	if raw := r.URL.Query().Get(constvars.URLQueryParamPage); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get(constvars.URLQueryParamPageSize); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}
