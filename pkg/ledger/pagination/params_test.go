package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
		want  Params
	}{
		{name: "defaults", page: "", limit: "", want: Params{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", want: Params{Page: 3, Limit: 25}},
		{name: "non numeric", page: "abc", limit: "x1", want: Params{Page: 1, Limit: 10}},
		{name: "zero", page: "0", limit: "0", want: Params{Page: 1, Limit: 10}},
		{name: "negative", page: "-2", limit: "-5", want: Params{Page: 1, Limit: 10}},
		{name: "fractional", page: "1.5", limit: "2.5", want: Params{Page: 1, Limit: 10}},
		{name: "padded", page: " 2 ", limit: " 5", want: Params{Page: 2, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParams(tt.page, tt.limit))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, NewParams(1, 10).Offset())
	assert.Equal(t, 20, NewParams(3, 10).Offset())
	assert.Equal(t, 4, NewParams(3, 2).Offset())
	assert.Equal(t, math.MaxInt, NewParams(math.MaxInt, 10).Offset())
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{total: 0, limit: 10, totalPages: 0},
		{total: 1, limit: 10, totalPages: 1},
		{total: 10, limit: 10, totalPages: 1},
		{total: 11, limit: 10, totalPages: 2},
		{total: 3, limit: 2, totalPages: 2},
	}

	for _, tt := range tests {
		meta := NewMeta(NewParams(1, tt.limit), tt.total)
		assert.Equal(t, tt.totalPages, meta.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, meta.Total)
		assert.Equal(t, tt.limit, meta.Limit)
		assert.Equal(t, 1, meta.Page)
	}
}
