package catalog

import (
	"fmt"
	"strings"
)

// Delimiter separates fields in the raw catalog text.
const Delimiter = ","

// minColumns is name, brand, model and at least one image column.
const minColumns = 4

// Warning describes a data line that was dropped during parsing.
type Warning struct {
	// Line is the 1-based line number in the raw input, counting the header.
	Line int
	Text string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: malformed row %q: expected at least %d fields", w.Line, w.Text, minColumns)
}

// Result holds the records that survived parsing plus one warning per
// dropped malformed line.
type Result struct {
	Records  []ProductRecord
	Warnings []Warning
}

// Parse turns raw delimited text into product records. The first line is a
// header and is discarded. A line with fewer than four fields is reported
// as a warning and dropped; a line whose name field is empty after
// trimming is dropped silently. The image field may itself contain the
// delimiter, so it greedily absorbs every remaining column. IDs are
// assigned by position among emitted records, not raw line index.
func Parse(raw string) Result {
	var res Result
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, Delimiter)
		if len(cols) < minColumns {
			res.Warnings = append(res.Warnings, Warning{Line: i + 2, Text: line})
			continue
		}
		name := strings.TrimSpace(cols[0])
		if name == "" {
			continue
		}
		res.Records = append(res.Records, ProductRecord{
			ID:       len(res.Records),
			Name:     name,
			Brand:    strings.TrimSpace(cols[1]),
			Model:    strings.TrimSpace(cols[2]),
			ImageURL: strings.TrimSpace(strings.Join(cols[3:], Delimiter)),
		})
	}
	return res
}
