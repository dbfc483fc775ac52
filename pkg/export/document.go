package export

import (
	"strings"

	"catalogo/pkg/selection"
)

// Layout constants for the quote sheet: text starts at (MarginX, TopY),
// each line advances LineHeight, and a new page begins once the cursor
// passes PageBreakY. WrapWidth is the column width lines are wrapped to
// before placement.
const (
	MarginX    = 20.0
	TopY       = 20.0
	LineHeight = 10.0
	PageBreakY = 250.0
	WrapWidth  = 90
)

// DocumentSink accepts positioned text and page breaks, then saves. The
// concrete PDF library lives behind this interface.
type DocumentSink interface {
	Text(text string, x, y float64)
	AddPage()
	Save(path string) error
}

// Document renders the selection through sink as header, one line per
// selected item, and footer. Wrapping and page breaks are owned here, not
// by the sink. A selection-free document is a legal degenerate render;
// orphaned ids are skipped.
func (cmp *Composer) Document(selected map[int]selection.Entry, c Contact, sink DocumentSink) {
	y := TopY
	place := func(line string) {
		if line == "" {
			y += LineHeight
			return
		}
		for _, part := range strings.Split(Wrap(line, WrapWidth), "\n") {
			if y > PageBreakY {
				sink.AddPage()
				y = TopY
			}
			sink.Text(part, MarginX, y)
			y += LineHeight
		}
	}
	for _, line := range cmp.headerLines(c) {
		place(line)
	}
	for _, line := range cmp.bodyLines(selected) {
		place(line)
	}
	for _, line := range cmp.footerLines() {
		place(line)
	}
}
