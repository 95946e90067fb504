// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/pkg/pagination"
)

/*
TestPaginate verifies the window arithmetic for pages inside, at and past the end of a set.
*/
func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		wantOffset int
		wantPages  int
	}{
		{"second_page_of_ten", 10, 2, 3, 3, 4},
		{"empty_set_has_one_page", 0, 1, 5, 0, 1},
		{"page_past_end", 5, 99, 5, 490, 1},
		{"exact_fit", 6, 1, 3, 0, 2},
		{"single_item", 1, 1, 20, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := pagination.Paginate(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, window.Offset)
			assert.Equal(t, tt.wantPages, window.PagesCount)
		})
	}
}

/*
TestNewResult verifies that the requested page is echoed and data is never null.
*/
func TestNewResult(t *testing.T) {
	result := pagination.NewResult[string](nil, 99, 5, 5)

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 99, result.PagingInfo.PageNumber)
	assert.Equal(t, 1, result.PagingInfo.PagesCount)

	mapped := pagination.Map(pagination.NewResult([]int{1, 2}, 1, 2, 3), func(n int) int { return n * 10 })
	assert.Equal(t, []int{10, 20}, mapped.Data)
	assert.Equal(t, 2, mapped.PagingInfo.PagesCount)
}

/*
TestFromRequest checks defaults, clamping and pass-through of non-positive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/movies", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "/movies?page=3&limit=7", 3, 7},
		{"clamped_limit", "/movies?limit=1000", 1, pagination.MaxLimit},
		{"malformed", "/movies?page=x&limit=y", pagination.DefaultPage, pagination.DefaultLimit},
		{"zero_passes_through", "/movies?page=0&limit=0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}

	assert.Equal(t, 14, pagination.Params{Page: 3, Limit: 7}.Offset())
}
