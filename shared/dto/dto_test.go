package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"recanto/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	checkIn := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "property_id", Operator: dto.FilterOperatorEq, Value: "p1", Table: "bookings"},
			wantWhere: "bookings.property_id = :property_id",
			wantArgs:  map[string]any{"property_id": "p1"},
		},
		{
			name:      "strict less for overlap check",
			filter:    dto.Filter{Field: "check_in", Operator: dto.FilterOperatorLess, Value: checkIn, Table: "bookings"},
			wantWhere: "bookings.check_in < :check_in",
			wantArgs:  map[string]any{"check_in": checkIn},
		},
		{
			name:      "strict greater for overlap check",
			filter:    dto.Filter{Field: "check_out", Operator: dto.FilterOperatorGreater, Value: checkIn, Table: "bookings"},
			wantWhere: "bookings.check_out > :check_out",
			wantArgs:  map[string]any{"check_out": checkIn},
		},
		{
			name:      "not_in with slice expands named args",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotIn, Value: []string{"cancelled_by_guest", "cancelled_by_owner"}, Table: "bookings"},
			wantWhere: "bookings.status NOT IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "cancelled_by_guest", "status_1": "cancelled_by_owner"},
		},
		{
			name:      "less_eq for max price filter",
			filter:    dto.Filter{Field: "price_per_night", Operator: dto.FilterOperatorLessEq, Value: 50000, Table: "properties"},
			wantWhere: "properties.price_per_night <= :price_per_night",
			wantArgs:  map[string]any{"price_per_night": 50000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "city", Operator: dto.FilterOperatorEq, Value: "Atibaia", Table: "properties"},
			dto.Filter{Field: "capacity", Operator: dto.FilterOperatorGreaterEq, Value: 8, Table: "properties"},
		},
	}

	where, args := group.GetWhereClause()
	assert.Equal(t, "(properties.city = :city AND properties.capacity >= :capacity)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/properties?page=2&limit=25&sort_by=price_per_night&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "price_per_night", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/properties", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
