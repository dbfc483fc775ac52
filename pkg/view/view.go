// Package view derives the visible slice of a catalog from a filter and a
// pagination window. Nothing here is persisted; a view is recomputed from
// the catalog on every change.
package view

import (
	"strings"

	"catalogo/pkg/catalog"
)

// Unbounded disables pagination: every filtered record on one page.
const Unbounded = 0

// Filter is a conjunction of match criteria over the catalog. Brand
// matches by case-insensitive equality, Name by case-insensitive
// substring. The zero Filter matches every record.
type Filter struct {
	Brand string
	Name  string
}

// Matches reports whether the record passes every active criterion.
func (f Filter) Matches(r catalog.ProductRecord) bool {
	if f.Brand != "" && !strings.EqualFold(f.Brand, r.Brand) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

// IsZero reports whether no criteria are active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// State is the transient view configuration. Page is 1-based; PerPage is
// a positive integer or Unbounded.
type State struct {
	Filter  Filter
	Page    int
	PerPage int
}

// View is one derived page of the filtered catalog.
type View struct {
	Records    []catalog.ProductRecord
	Page       int
	TotalPages int
	Total      int
}

// Compute filters the catalog preserving source order, clamps the
// requested page into [1, totalPages], and slices out the visible window.
// An empty result is still page 1 of 1.
func Compute(c *catalog.Catalog, f Filter, page, perPage int) View {
	filtered := make([]catalog.ProductRecord, 0, c.Len())
	for _, r := range c.Records() {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	totalPages := 1
	if perPage > Unbounded {
		totalPages = (total + perPage - 1) / perPage
		if totalPages < 1 {
			totalPages = 1
		}
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	records := filtered
	if perPage > Unbounded {
		start := clamp((page-1)*perPage, 0, total)
		end := clamp(start+perPage, start, total)
		records = filtered[start:end]
	}

	return View{Records: records, Page: page, TotalPages: totalPages, Total: total}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
