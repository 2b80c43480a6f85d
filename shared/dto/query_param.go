package dto

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"hotelpos/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams is the paging and ordering part of a list request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positiveParam(values url.Values, name string) int {
	n, err := strconv.Atoi(values.Get(name))
	if err != nil || n <= 0 {
		return 0
	}

	return n
}

// FromRequest reads page, limit, sort_by and sort_dir. Malformed values are ignored and
// limit is capped at constant.MaxValueLimit. With paginate set, a missing page or limit
// gets its default.
func (q *QueryParams) FromRequest(r *http.Request, paginate bool) {
	values := r.URL.Query()

	q.Page = positiveParam(values, constant.RequestParamPage)
	q.Limit = min(positiveParam(values, constant.RequestParamLimit), constant.MaxValueLimit)
	q.SortBy = values.Get(constant.RequestParamSortBy)

	if dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !paginate {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// RestrictSortBy clears SortBy and SortDir unless SortBy is one of the allowed columns.
func (q *QueryParams) RestrictSortBy(allowed ...string) {
	if slices.Contains(allowed, q.SortBy) {
		return
	}

	q.SortBy = ""
	q.SortDir = ""
}

// QualifySortBy prefixes SortBy with table so it stays unambiguous in joined queries.
func (q *QueryParams) QualifySortBy(table string) {
	if q.SortBy == "" || strings.Contains(q.SortBy, ".") {
		return
	}

	q.SortBy = table + "." + q.SortBy
}
