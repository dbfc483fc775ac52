package view

import (
	"testing"

	"catalogo/pkg/catalog"
)

func threeProducts() *catalog.Catalog {
	return catalog.New([]catalog.ProductRecord{
		{ID: 0, Name: "A", Brand: "ACME"},
		{ID: 1, Name: "B", Brand: "ACME"},
		{ID: 2, Name: "C", Brand: "OTHER"},
	})
}

func names(v View) []string {
	out := make([]string, 0, len(v.Records))
	for _, r := range v.Records {
		out = append(out, r.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPagination(t *testing.T) {
	cat := threeProducts()

	v := Compute(cat, Filter{}, 1, 2)
	if !equal(names(v), []string{"A", "B"}) {
		t.Fatalf("page 1: got %v", names(v))
	}
	if v.TotalPages != 2 || v.Total != 3 {
		t.Fatalf("expected 2 pages of 3 products, got %d pages of %d", v.TotalPages, v.Total)
	}

	v = Compute(cat, Filter{}, 2, 2)
	if !equal(names(v), []string{"C"}) {
		t.Fatalf("page 2: got %v", names(v))
	}
}

func TestPageClampsPastEnd(t *testing.T) {
	cat := threeProducts()

	last := Compute(cat, Filter{}, 2, 2)
	past := Compute(cat, Filter{}, 3, 2)
	if past.Page != 2 || !equal(names(past), names(last)) {
		t.Fatalf("page 3 must clamp to page 2, got page %d %v", past.Page, names(past))
	}

	far := Compute(cat, Filter{}, 7, 2)
	if far.Page != 2 || !equal(names(far), names(last)) {
		t.Fatalf("page totalPages+5 must clamp to the last page")
	}
}

func TestPageClampsBeforeStart(t *testing.T) {
	cat := threeProducts()

	first := Compute(cat, Filter{}, 1, 2)
	for _, page := range []int{0, -3} {
		v := Compute(cat, Filter{}, page, 2)
		if v.Page != 1 || !equal(names(v), names(first)) {
			t.Fatalf("page %d must clamp to page 1", page)
		}
	}
}

func TestUnboundedIsOnePage(t *testing.T) {
	cat := threeProducts()

	v := Compute(cat, Filter{}, 5, Unbounded)
	if v.Page != 1 || v.TotalPages != 1 {
		t.Fatalf("unbounded must be page 1 of 1, got %d of %d", v.Page, v.TotalPages)
	}
	if len(v.Records) != 3 {
		t.Fatalf("unbounded must show every record, got %d", len(v.Records))
	}
}

func TestEmptyResultIsPageOneOfOne(t *testing.T) {
	cat := threeProducts()

	v := Compute(cat, Filter{Brand: "NOBODY"}, 4, 2)
	if v.Page != 1 || v.TotalPages != 1 || v.Total != 0 {
		t.Fatalf("empty result must be page 1 of 1, got page %d of %d total %d", v.Page, v.TotalPages, v.Total)
	}
	if len(v.Records) != 0 {
		t.Fatalf("expected no records")
	}
}

func TestTotalPagesCeiling(t *testing.T) {
	records := make([]catalog.ProductRecord, 7)
	for i := range records {
		records[i] = catalog.ProductRecord{ID: i, Name: "P"}
	}
	cat := catalog.New(records)

	cases := []struct {
		perPage, want int
	}{
		{1, 7}, {2, 4}, {3, 3}, {7, 1}, {10, 1},
	}
	for _, c := range cases {
		v := Compute(cat, Filter{}, 1, c.perPage)
		if v.TotalPages != c.want {
			t.Fatalf("perPage %d: expected %d pages, got %d", c.perPage, c.want, v.TotalPages)
		}
	}
}

func TestFilterBrandEquality(t *testing.T) {
	cat := threeProducts()

	v := Compute(cat, Filter{Brand: "acme"}, 1, Unbounded)
	if !equal(names(v), []string{"A", "B"}) {
		t.Fatalf("brand filter must match case-insensitively, got %v", names(v))
	}

	v = Compute(cat, Filter{Brand: "ACM"}, 1, Unbounded)
	if v.Total != 0 {
		t.Fatalf("brand filter is equality, not substring; got %v", names(v))
	}
}

func TestFilterNameSubstring(t *testing.T) {
	cat := catalog.New([]catalog.ProductRecord{
		{ID: 0, Name: "AH NINA-3 N01", Brand: "X"},
		{ID: 1, Name: "AH MARI-7 D21", Brand: "X"},
	})

	v := Compute(cat, Filter{Name: "nina"}, 1, Unbounded)
	if !equal(names(v), []string{"AH NINA-3 N01"}) {
		t.Fatalf("name filter must match substrings case-insensitively, got %v", names(v))
	}
}

func TestFilterConjunction(t *testing.T) {
	cat := threeProducts()

	v := Compute(cat, Filter{Brand: "ACME", Name: "B"}, 1, Unbounded)
	if !equal(names(v), []string{"B"}) {
		t.Fatalf("criteria must be conjoined, got %v", names(v))
	}
}

func TestZeroFilterIsIdentity(t *testing.T) {
	cat := threeProducts()

	f := Filter{}
	if !f.IsZero() {
		t.Fatalf("zero filter must report IsZero")
	}
	v := Compute(cat, f, 1, Unbounded)
	if v.Total != cat.Len() {
		t.Fatalf("zero filter must pass every record, got %d of %d", v.Total, cat.Len())
	}
}

func TestNilCatalog(t *testing.T) {
	v := Compute(nil, Filter{}, 3, 2)
	if v.Page != 1 || v.TotalPages != 1 || v.Total != 0 {
		t.Fatalf("nil catalog must behave as empty, got %+v", v)
	}
}
