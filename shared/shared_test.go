package shared_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hotelpos/shared"
	"hotelpos/shared/cache/mocks"
	"hotelpos/shared/constant"
	"hotelpos/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "1", input: "1", expected: boolPtr(true)},
		{name: "0", input: "0", expected: boolPtr(false)},
		{name: "upper case", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "occupied", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 24, limit: 8, expected: 3},
		{name: "division with remainder", total: 25, limit: 8, expected: 4},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type productUpdate struct {
		Name     string  `db:"name"`
		Category string  `db:"category"`
		Price    *int    `db:"price"`
		Note     *string `db:"note"`
		NoDBTag  string
	}

	price := 0

	tests := []struct {
		name     string
		data     productUpdate
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: productUpdate{Name: "Espresso", Category: "consumption", NoDBTag: "ignored"},
			expected: map[string]any{
				"name":     "Espresso",
				"category": "consumption",
			},
		},
		{
			name:     "all zero values",
			data:     productUpdate{},
			expected: map[string]any{},
		},
		{
			name: "pointer fields are dereferenced",
			data: productUpdate{Price: &price},
			expected: map[string]any{
				"price": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, "frontdesk")

			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
			assert.Equal(t, "frontdesk", result[constant.FieldModifiedBy])

			delete(result, constant.FieldModifiedAt)
			delete(result, constant.FieldModifiedBy)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	assert.Equal(t, expected, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room", shared.BuildCacheKey("room"))
	assert.Equal(t, "room:get:42", shared.BuildCacheKey("room", "get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "category", Value: "consumption", Operator: dto.FilterOperatorEq}},
	}

	first := shared.BuildCacheKeyWithQuery("product:list", params, filter)
	second := shared.BuildCacheKeyWithQuery("product:list", params, filter)
	other := shared.BuildCacheKeyWithQuery("product:list", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, "product:list:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "report")

	redisCache.EXPECT().Clear(gomock.Any(), "room:*").Return(errors.New("connection refused"))
	shared.InvalidateCaches(context.Background(), redisCache, "room")
}

func TestIsPqError(t *testing.T) {
	unique := &pq.Error{Code: constant.PqErrorCodeUniqueViolation}

	assert.True(t, shared.IsPqError(unique, constant.PqErrorCodeUniqueViolation))
	assert.True(t, shared.IsPqError(fmt.Errorf("failed to insert data (stay): %w", unique), constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqError(unique, constant.PqErrorCodeFkViolation))
	assert.False(t, shared.IsPqError(errors.New("boom"), constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqError(nil, constant.PqErrorCodeUniqueViolation))
}

func boolPtr(b bool) *bool {
	return &b
}

func TestParseDayParam(t *testing.T) {
	day, err := shared.ParseDayParam("start_date", "2024-03-01")
	assert.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 1, day.Day())

	day, err = shared.ParseDayParam("start_date", "")
	assert.NoError(t, err)
	assert.True(t, day.IsZero())

	_, err = shared.ParseDayParam("start_date", "01/03/2024")
	assert.ErrorContains(t, err, "start_date must be formatted as 2006-01-02")
}

func TestParseTimeParam(t *testing.T) {
	instant, err := shared.ParseTimeParam("as_of", "2024-03-02T10:30:00Z")
	assert.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2024, time.March, 2, 10, 30, 0, 0, time.UTC)))

	day, err := shared.ParseTimeParam("as_of", "2024-03-02")
	assert.NoError(t, err)
	assert.Equal(t, 2, day.Day())

	_, err = shared.ParseTimeParam("as_of", "yesterday")
	assert.Error(t, err)
}
