package export

import (
	"strings"

	"catalogo/pkg/selection"
)

// Message renders the selection as a single newline-joined string with the
// same header/body/footer shape as the document, without wrapping or
// pagination. An empty selection is an error, not a silent empty message.
// The payload is returned unencoded; percent-encoding belongs to the sink
// boundary.
func (cmp *Composer) Message(selected map[int]selection.Entry, c Contact) (string, error) {
	if len(selected) == 0 {
		return "", ErrEmptySelection
	}
	lines := cmp.headerLines(c)
	lines = append(lines, cmp.bodyLines(selected)...)
	lines = append(lines, cmp.footerLines()...)
	return strings.Join(lines, "\n"), nil
}
