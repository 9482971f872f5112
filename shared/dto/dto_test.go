package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 14, 11, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 14, 11, 45, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "system",
		ModifiedBy: "staff-1",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "system", metadata.CreatedBy)
	assert.Equal(t, "staff-1", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "all parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "detected_at",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "detected_at", SortDir: "ASC"},
		},
		{
			name:           "defaults when empty",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "no defaults when disabled",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			queryParams:    map[string]string{"page": "-1", "limit": "abc"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "limit is capped",
			queryParams:    map[string]string{"limit": "5000"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: dto.MaxLimit,
			},
		},
		{
			name:           "unknown sort direction ignored",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.queryParams {
				values.Set(k, v)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestQueryParams_Sorted(t *testing.T) {
	sortable := []string{"detected_at", "severity"}

	got := dto.QueryParams{SortBy: "severity", SortDir: dto.SortDirAsc}.Sorted("overstay_incidents", "detected_at", sortable...)
	assert.Equal(t, "overstay_incidents.severity", got.SortBy)
	assert.Equal(t, dto.SortDirAsc, got.SortDir)

	got = dto.QueryParams{SortBy: "1; DROP TABLE rooms"}.Sorted("", "detected_at", sortable...)
	assert.Equal(t, "detected_at", got.SortBy)
	assert.Equal(t, dto.SortDirDesc, got.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantQuery string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "IN_HOUSE", Operator: dto.FilterOperatorEq, Table: "reservations"},
			wantQuery: "reservations.status = :status",
			wantArgs:  map[string]any{"status": "IN_HOUSE"},
		},
		{
			name:      "less with arg name",
			filter:    dto.Filter{ArgName: "new_departure", Field: "arrival_date", Value: "2025-01-17", Operator: dto.FilterOperatorLess},
			wantQuery: "arrival_date < :new_departure",
			wantArgs:  map[string]any{"new_departure": "2025-01-17"},
		},
		{
			name:      "greater",
			filter:    dto.Filter{ArgName: "old_departure", Field: "departure_date", Value: "2025-01-15", Operator: dto.FilterOperatorGreater},
			wantQuery: "departure_date > :old_departure",
			wantArgs:  map[string]any{"old_departure": "2025-01-15"},
		},
		{
			name:      "less or equal",
			filter:    dto.Filter{Field: "departure_date", Value: "2025-01-14", Operator: dto.FilterOperatorLessEq},
			wantQuery: "departure_date <= :departure_date",
			wantArgs:  map[string]any{"departure_date": "2025-01-14"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "status", Value: []string{"OPEN", "ACKED"}, Operator: dto.FilterOperatorIn},
			wantQuery: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "OPEN", "status_1": "ACKED"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantQuery: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "id", Value: "r-1", Operator: dto.FilterOperatorNotEq},
			wantQuery: "id != :id",
			wantArgs:  map[string]any{"id": "r-1"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "resolved_at", Operator: dto.FilterIsNull},
			wantQuery: "resolved_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "r-1", Operator: "between"},
			wantQuery: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "room-101", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "CONFIRMED", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "IN_HOUSE", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	query, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (status = :s1 OR status = :s2))", query)
	assert.Equal(t, map[string]any{"room_id": "room-101", "s1": "CONFIRMED", "s2": "IN_HOUSE"}, args)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	query, _ = empty.GetWhereClause()
	assert.Empty(t, query)

	skipped := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Operator: "between"},
			dto.Filter{Field: "checked_out_at", Operator: dto.FilterIsNull},
		},
	}
	query, _ = skipped.GetWhereClause()
	assert.Equal(t, "(checked_out_at IS NULL)", query)
}
