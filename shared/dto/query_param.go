package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads paging and sorting from the query string. With withDefaults, an absent or
// non-positive page or limit falls back to the defaults. Limit is capped at MaxLimit.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	q.Page = positive(values.Get(constant.RequestParamPage))
	q.Limit = min(positive(values.Get(constant.RequestParamLimit)), MaxLimit)
	q.SortBy = values.Get(constant.RequestParamSortBy)

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	default:
		q.SortDir = constant.Empty
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Sorted returns a copy whose ORDER BY is safe to interpolate: SortBy must be one of sortable
// and is qualified with table, otherwise defaultBy is used. An empty direction becomes DESC.
func (q QueryParams) Sorted(table, defaultBy string, sortable ...string) QueryParams {
	if !slices.Contains(sortable, q.SortBy) {
		q.SortBy = defaultBy
	}

	if table != constant.Empty {
		q.SortBy = table + "." + q.SortBy
	}

	if q.SortDir == constant.Empty {
		q.SortDir = SortDirDesc
	}

	return q
}

func positive(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
