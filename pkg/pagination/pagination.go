package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/load-planner/pkg/query"
)

// MaxSearchLength bounds the search term carried into ILIKE conditions.
const MaxSearchLength = 100

// PageRequest is a listing request: which page, how large, an optional
// free-text search and the ordering to apply.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps page and page size into the ranges allowed by cfg.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	switch {
	case r.PageSize < 1:
		r.PageSize = cfg.DefaultPageSize
	case r.PageSize > cfg.MaxPageSize:
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset is the number of rows skipped before this page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search and sort from the query
// string. Unparseable numbers fall back to defaults. The search term is
// trimmed and truncated to MaxSearchLength runes. A field named twice in sort
// keeps its first direction.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{
		Page:     atoi(values.Get("page")),
		PageSize: atoi(values.Get("page_size")),
		Search:   searchTerm(values.Get("search")),
		Sort:     uniqueSort(query.ParseSortFields(values.Get("sort"))),
	}
	req.Normalize(cfg)
	return req
}

// PageResult is one page of T plus the totals a client needs to page on.
type PageResult[T any] struct {
	Data        []T  `json:"data"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPageResult builds a PageResult. Data is never nil so it encodes as [].
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	pages := 1
	if pageSize > 0 && total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	return PageResult[T]{
		Data:        data,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  pages,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func searchTerm(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if r := []rune(s); len(r) > MaxSearchLength {
		s = string(r[:MaxSearchLength])
	}
	return &s
}

func uniqueSort(fields []query.SortField) []query.SortField {
	if len(fields) < 2 {
		return fields
	}
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if seen[f.Field] {
			continue
		}
		seen[f.Field] = true
		out = append(out, f)
	}
	return out
}
