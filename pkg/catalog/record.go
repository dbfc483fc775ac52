package catalog

import "strings"

// PlaceholderImage is substituted when a record carries no image location.
const PlaceholderImage = "placeholder.png"

// ProductRecord is one row of the loaded catalog. Records are immutable
// after parsing; ID is the zero-based position among emitted records and
// stays stable for the lifetime of a loaded catalog.
type ProductRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Model    string `json:"model,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Image returns the record's image location, or the placeholder when the
// field is absent or blank.
func (r ProductRecord) Image() string {
	if strings.TrimSpace(r.ImageURL) == "" {
		return PlaceholderImage
	}
	return r.ImageURL
}

// Catalog is the full ordered set of product records for a session. It is
// built once per load and read-only after that; a reload replaces it
// wholesale.
type Catalog struct {
	records []ProductRecord
}

// New builds a catalog over the given records.
func New(records []ProductRecord) *Catalog {
	return &Catalog{records: records}
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns the records in source order. Callers must not mutate
// the returned slice.
func (c *Catalog) Records() []ProductRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// ByID looks up a record by its id.
func (c *Catalog) ByID(id int) (ProductRecord, bool) {
	if c == nil || id < 0 || id >= len(c.records) {
		return ProductRecord{}, false
	}
	return c.records[id], true
}

// Brands returns the distinct brand names in first-seen order.
func (c *Catalog) Brands() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, len(c.records))
	brands := make([]string, 0)
	for _, r := range c.records {
		if r.Brand == "" || seen[r.Brand] {
			continue
		}
		seen[r.Brand] = true
		brands = append(brands, r.Brand)
	}
	return brands
}
