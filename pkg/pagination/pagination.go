// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how a requested page maps onto a storage window, and how the resulting
// paging info is delivered in the API response envelope.
//
// # Page Model
//
// Pages are 1-indexed. A search over an empty set still has one (empty) page,
// and a page past the end is echoed back as requested with an empty data list.
package pagination

import (
	"net/http"

	"github.com/taibuivan/catalog/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the storage offset derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// # Paging Arithmetic

// Window is the slice of a result set a page covers.
type Window struct {
	// Offset is the number of items skipped before the page starts.
	Offset int
	// PagesCount is the number of pages the whole set spans, never less than 1.
	PagesCount int
}

/*
Paginate computes the window of page for a set of total items.

Parameters:
  - total: int (Size of the whole filtered set)
  - page: int (1-indexed requested page, must be >= 1)
  - limit: int (Items per page, must be >= 1)

Returns:
  - Window: Offset is (page-1)*limit; PagesCount is max(1, ceil(total/limit))
*/
func Paginate(total, page, limit int) Window {
	pages := 1
	if limit > 0 && total > limit {
		pages = (total + limit - 1) / limit
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	return Window{Offset: offset, PagesCount: pages}
}

// # Results

// PagingInfo is the paging block included in API list responses.
type PagingInfo struct {
	PageNumber int `json:"page_number"`
	PagesCount int `json:"pages_count"`
}

// Result is one page of data and its paging info.
type Result[T any] struct {
	Data       []T        `json:"data"`
	PagingInfo PagingInfo `json:"paging_info"`
}

// NewResult builds the page of data returned for the requested page of total items.
//
// The requested page is echoed even when it lies past the last page.
func NewResult[T any](data []T, page, limit, total int) Result[T] {
	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data: data,
		PagingInfo: PagingInfo{
			PageNumber: page,
			PagesCount: Paginate(total, page, limit).PagesCount,
		},
	}
}

// Map converts the data of a result while keeping its paging info.
func Map[T, R any](result Result[T], convert func(T) R) Result[R] {
	data := make([]R, 0, len(result.Data))
	for _, item := range result.Data {
		data = append(data, convert(item))
	}
	return Result[R]{Data: data, PagingInfo: result.PagingInfo}
}

// # Request Parsing

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Missing or unparsable values fall back to [DefaultPage] and [DefaultLimit];
// a limit above [MaxLimit] is clamped to it. Non-positive values are passed
// through so that the validation layer reports them.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()
	page := convert.ToIntD(query.Get("page"), DefaultPage)
	limit := convert.ToIntD(query.Get("limit"), DefaultLimit)

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
