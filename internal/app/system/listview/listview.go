// Package listview consolidates the list-state logic shared by every list
// page: a case-insensitive substring query over one or more text fields, an
// equality filter over a categorical field, and 1-based fixed-size pagination.
//
// The admin pages and the public event list all work the same way: fetch the
// whole collection, then derive the visible subset from (query, filter, page).
// This package is that derivation, done once instead of per page.
package listview

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
)

// FilterAll is the sentinel filter value meaning "no categorical filter".
const FilterAll = "Semua"

// Params are the user-controlled list inputs, parsed from the request.
type Params struct {
	Query  string
	Filter string
	Page   int
}

// ParseParams extracts q, filter, and page from the request. Changing the
// query or the filter always resets the page to 1: list forms echo the values
// they were rendered with as pq/pf, and a mismatch means the user changed one
// of them rather than paged.
func ParseParams(r *http.Request, defaultFilter string) Params {
	if defaultFilter == "" {
		defaultFilter = FilterAll
	}

	p := Params{
		Query:  query.Search(r, "q"),
		Filter: strings.TrimSpace(query.Get(r, "filter")),
		Page:   1,
	}
	if p.Filter == "" {
		p.Filter = defaultFilter
	}

	if n, err := strconv.Atoi(query.Get(r, "page")); err == nil && n > 1 {
		p.Page = n
	}

	prevQ := query.Search(r, "pq")
	prevF := strings.TrimSpace(query.Get(r, "pf"))
	if prevF == "" {
		prevF = defaultFilter
	}
	if p.Query != prevQ || p.Filter != prevF {
		p.Page = 1
	}

	return p
}

// Config describes how a record type participates in list views.
type Config[T any] struct {
	// PageSize is the fixed page size; it must be > 0.
	PageSize int

	// SearchText returns the text fields the substring query matches against.
	// Nil disables the query input.
	SearchText func(T) []string

	// FilterValue returns the categorical field compared against
	// Params.Filter. Nil disables the filter input.
	FilterValue func(T) string

	// FilterMatch overrides the equality comparison when set; it exists for
	// categories with legacy aliases that should match a canonical filter.
	FilterMatch func(item T, filter string) bool
}

// Page is one derived page of a filtered list.
type Page[T any] struct {
	Items      []T // the visible slice
	Filtered   int // records matching query+filter, before paging
	Page       int // clamped 1-based page index
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Start      int // 1-based display range; 0 when the page is empty
	End        int
}

// Apply derives the visible page from items and params. Filtering is
// deterministic and idempotent; input order is preserved (the store decides
// sort order). The page index is clamped to [1, TotalPages], or 1 when the
// filtered set is empty.
func (c Config[T]) Apply(items []T, p Params) Page[T] {
	filtered := c.Filter(items, p)

	n := len(filtered)
	total := (n + c.PageSize - 1) / c.PageSize
	if total < 1 {
		total = 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	lo := (page - 1) * c.PageSize
	hi := lo + c.PageSize
	if hi > n {
		hi = n
	}
	if lo > n {
		lo = n
	}

	out := Page[T]{
		Items:      filtered[lo:hi],
		Filtered:   n,
		Page:       page,
		TotalPages: total,
		HasPrev:    page > 1,
		HasNext:    page < total,
	}
	if hi > lo {
		out.Start = lo + 1
		out.End = hi
	}
	return out
}

// PrevPage and NextPage exist for pagination links in templates; callers
// should gate them behind HasPrev and HasNext.
func (p Page[T]) PrevPage() int { return p.Page - 1 }
func (p Page[T]) NextPage() int { return p.Page + 1 }

// Filter applies the query and categorical filter without paging.
func (c Config[T]) Filter(items []T, p Params) []T {
	q := text.Fold(strings.TrimSpace(p.Query))
	useQuery := q != "" && c.SearchText != nil
	useFilter := p.Filter != "" && p.Filter != FilterAll && (c.FilterValue != nil || c.FilterMatch != nil)

	if !useQuery && !useFilter {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if useQuery && !c.matchQuery(it, q) {
			continue
		}
		if useFilter && !c.matchFilter(it, p.Filter) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (c Config[T]) matchQuery(it T, folded string) bool {
	for _, f := range c.SearchText(it) {
		if strings.Contains(text.Fold(f), folded) {
			return true
		}
	}
	return false
}

func (c Config[T]) matchFilter(it T, filter string) bool {
	if c.FilterMatch != nil {
		return c.FilterMatch(it, filter)
	}
	return c.FilterValue(it) == filter
}
