package export

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Align is a paragraph's horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// defaultBodySize is used when a paragraph leaves Size at zero.
const defaultBodySize = 18

// Style describes the font and spacing of one paragraph.
type Style struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  string // ARGB, empty keeps the library default
	Align  Align

	// points above and below the paragraph
	SpaceBefore float64
	SpaceAfter  float64
}

// Para is one paragraph of text with its style.
type Para struct {
	Text string
	Style
}

// RGB builds an opaque ARGB color string.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("FF%02X%02X%02X", r, g, b)
}

// Strong returns a copy of s with bold set.
func (s Style) Strong() Style {
	s.Bold = true
	return s
}

// WithColor returns a copy of s with the given color.
func (s Style) WithColor(argb string) Style {
	s.Color = argb
	return s
}

// WithSize returns a copy of s with the given size.
func (s Style) WithSize(pt float64) Style {
	s.Size = pt
	return s
}

// Centered returns a copy of s aligned center.
func (s Style) Centered() Style {
	s.Align = AlignCenter
	return s
}

// Before returns a copy of s with pt points above the paragraph.
func (s Style) Before(pt float64) Style {
	s.SpaceBefore = pt
	return s
}

// After returns a copy of s with pt points below the paragraph.
func (s Style) After(pt float64) Style {
	s.SpaceAfter = pt
	return s
}

// P builds a paragraph.
func (s Style) P(text string) Para {
	return Para{Text: text, Style: s}
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func applyAlign(p *ppt.Paragraph, a Align) {
	switch a {
	case AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	default:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalLeft))
	}
}
