// Package export turns the current selection plus contact metadata into a
// positioned-text document and a plain-text message. Transforms only read
// state; validation and sink hand-off happen at the caller.
package export

import (
	"errors"
	"fmt"
	"time"

	"catalogo/pkg/catalog"
	"catalogo/pkg/selection"
)

const layoutUS = "January 2, 2006"

// ErrEmptySelection rejects an export with nothing selected.
var ErrEmptySelection = errors.New("export: no products selected")

// Composer renders the selection against a loaded catalog. Selected ids
// not present in the catalog are orphans and are skipped, never rendered.
type Composer struct {
	Catalog *catalog.Catalog

	// Now stamps the rendering date; defaults to time.Now.
	Now func() time.Time
}

func (cmp *Composer) now() time.Time {
	if cmp.Now != nil {
		return cmp.Now()
	}
	return time.Now()
}

// headerLines is the fixed header block templated with the contact.
func (cmp *Composer) headerLines(c Contact) []string {
	lines := []string{
		"Selected products",
		"",
		"Name: " + c.Name,
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	lines = append(lines, "WhatsApp: "+c.Address())
	if c.Business != "" {
		lines = append(lines, "Business: "+c.Business)
	}
	lines = append(lines, "Category: "+string(c.Category), "")
	return lines
}

// bodyLines renders one line per selected item in catalog order.
func (cmp *Composer) bodyLines(selected map[int]selection.Entry) []string {
	lines := make([]string, 0, len(selected))
	for _, r := range cmp.Catalog.Records() {
		e, ok := selected[r.ID]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (Quantity: %d)", r.Name, e.Quantity))
	}
	return lines
}

func (cmp *Composer) footerLines() []string {
	return []string{
		"",
		"Thank you for your preference.",
		cmp.now().Format(layoutUS),
	}
}
