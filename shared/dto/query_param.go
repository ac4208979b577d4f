package dto

import (
	"net/http"
	"strconv"

	"visitpazar/shared/constant"
)

type QueryParams struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FromRequest populates QueryParams from the HTTP request.
// A missing, malformed or non-positive limit falls back to
// constant.DefaultValueLimit, larger values are clamped to constant.MaxValueLimit.
//
//	q := dto.QueryParams{}
//	q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) {
	q.Limit = constant.DefaultValueLimit

	if limit := r.URL.Query().Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = min(limitInt, constant.MaxValueLimit)
		}
	}
}

// DefaultQueryParams returns the parameters used when the caller gives none.
func DefaultQueryParams() QueryParams {
	return QueryParams{Limit: constant.DefaultValueLimit}
}
