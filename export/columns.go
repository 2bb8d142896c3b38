package export

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth counts terminal-style cells: East Asian wide and fullwidth
// characters take two, everything else one.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// PadColumns lays cells out in fixed-width columns measured in display
// cells, so a wide character counts twice. The last cell is never padded;
// a cell wider than its column is followed by a single space.
func PadColumns(widths []int, cells ...string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(cell)
		if i == len(cells)-1 {
			break
		}
		pad := 1
		if i < len(widths) {
			if w := widths[i] - DisplayWidth(cell); w > 0 {
				pad = w + 1
			}
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}
