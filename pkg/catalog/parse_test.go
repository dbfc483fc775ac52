package catalog

import (
	"strings"
	"testing"
)

const header = "PRODUCT,BRAND,MODEL,IMGSRC\n"

func TestParseAssignsDenseIDs(t *testing.T) {
	raw := header +
		"A ONE,ACME,M1,http://img/1.jpg\n" +
		"bad row\n" +
		"A TWO,ACME,M2,http://img/2.jpg\n" +
		" ,ACME,M3,http://img/3.jpg\n" +
		"A THREE,OTHER,M4,\n"

	res := Parse(raw)
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}
	for i, r := range res.Records {
		if r.ID != i {
			t.Fatalf("expected dense ids, record %d has id %d", i, r.ID)
		}
		if r.Name == "" {
			t.Fatalf("record %d has empty name", i)
		}
	}
	if res.Records[2].Name != "A THREE" {
		t.Fatalf("source order not preserved: %q", res.Records[2].Name)
	}
}

func TestParseWarnsOnMalformedRows(t *testing.T) {
	raw := header +
		"A ONE,ACME,M1,http://img/1.jpg\n" +
		"too,few\n"

	res := Parse(raw)
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if res.Warnings[0].Line != 3 {
		t.Fatalf("expected warning for line 3, got %d", res.Warnings[0].Line)
	}
	if !strings.Contains(res.Warnings[0].String(), "too,few") {
		t.Fatalf("warning does not identify the line: %s", res.Warnings[0])
	}
}

func TestParseEmptyNameDroppedSilently(t *testing.T) {
	raw := header +
		"  ,ACME,M1,http://img/1.jpg\n"

	res := Parse(raw)
	if len(res.Records) != 0 {
		t.Fatalf("expected no records, got %d", len(res.Records))
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("empty name is not an error, got %d warnings", len(res.Warnings))
	}
}

func TestParseBlankAndTrailingLines(t *testing.T) {
	raw := header +
		"A ONE,ACME,M1,http://img/1.jpg\n" +
		"\n" +
		"   \n"

	res := Parse(raw)
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("blank lines are not malformed, got %d warnings", len(res.Warnings))
	}
}

func TestParseImageFieldAbsorbsDelimiters(t *testing.T) {
	raw := header +
		"A ONE,ACME,M1,http://img/1.jpg?a=1,b=2,c=3\n"

	res := Parse(raw)
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if got := res.Records[0].ImageURL; got != "http://img/1.jpg?a=1,b=2,c=3" {
		t.Fatalf("image field not rejoined: %q", got)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	res := Parse(header)
	if len(res.Records) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("expected empty result, got %d records %d warnings", len(res.Records), len(res.Warnings))
	}
}

func TestImagePlaceholder(t *testing.T) {
	r := ProductRecord{Name: "A", ImageURL: "  "}
	if r.Image() != PlaceholderImage {
		t.Fatalf("expected placeholder, got %q", r.Image())
	}
	r.ImageURL = "http://img/1.jpg"
	if r.Image() != "http://img/1.jpg" {
		t.Fatalf("expected real image, got %q", r.Image())
	}
}

func TestBrandsDistinctFirstSeen(t *testing.T) {
	raw := header +
		"A,ACME,M1,\n" +
		"B,OTHER,M2,\n" +
		"C,ACME,M3,\n"

	cat := New(Parse(raw).Records)
	brands := cat.Brands()
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %v", brands)
	}
	if brands[0] != "ACME" || brands[1] != "OTHER" {
		t.Fatalf("expected first-seen order, got %v", brands)
	}
}

func TestByID(t *testing.T) {
	cat := New([]ProductRecord{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}})
	if r, ok := cat.ByID(1); !ok || r.Name != "B" {
		t.Fatalf("ByID(1) = %v, %v", r, ok)
	}
	if _, ok := cat.ByID(2); ok {
		t.Fatalf("expected miss for id 2")
	}
	if _, ok := cat.ByID(-1); ok {
		t.Fatalf("expected miss for negative id")
	}
}
