package export

import (
	"fmt"
	"math"
)

// スライド座標系
//
// All slide content is authored on a 4:3 design page (10 x 7.5 in) and mapped
// onto the output page at write time. The default output page is the design
// page itself.
const (
	emuPerInch = 914400

	DesignWidth  = 10.0
	DesignHeight = 7.5

	DefaultPageWidth  = DesignWidth
	DefaultPageHeight = DesignHeight

	// 16:9 page at the design width
	WidePageHeight = 5.625

	minFontSize = 6
)

// Grid maps design-page inches and points onto the output page.
type Grid struct {
	PageWidth  float64 // inches
	PageHeight float64 // inches
}

// DefaultGrid returns the design page unscaled.
func DefaultGrid() Grid {
	return Grid{PageWidth: DefaultPageWidth, PageHeight: DefaultPageHeight}
}

// Page returns the output page size in EMU.
func (g Grid) Page() (cx, cy int64) {
	return g.X(DesignWidth), g.Y(DesignHeight)
}

// Validate reports whether the page size is usable.
func (g Grid) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("invalid page size %.3fx%.3f in", g.PageWidth, g.PageHeight)
	}
	return nil
}

func (g Grid) scaleX() float64 { return g.PageWidth / DesignWidth }
func (g Grid) scaleY() float64 { return g.PageHeight / DesignHeight }

// X converts a horizontal design offset in inches to EMU.
func (g Grid) X(in float64) int64 {
	return int64(math.Round(in * g.scaleX() * emuPerInch))
}

// Y converts a vertical design offset in inches to EMU.
func (g Grid) Y(in float64) int64 {
	return int64(math.Round(in * g.scaleY() * emuPerInch))
}

// FontSize scales a design point size by the tighter of the two axes.
func (g Grid) FontSize(pt float64) int {
	size := int(math.Round(pt * g.textScale()))
	if size < minFontSize {
		size = minFontSize
	}
	return size
}

func (g Grid) textScale() float64 {
	return math.Min(g.scaleX(), g.scaleY())
}

// Spacing converts design points of paragraph spacing to hundredths of a
// point on the output page.
func (g Grid) Spacing(pt float64) int {
	if pt <= 0 {
		return 0
	}
	return int(math.Round(pt * g.textScale() * 100))
}

// Line converts a design line width in points to EMU.
func (g Grid) Line(pt float64) int {
	if pt <= 0 {
		return 0
	}
	return int(math.Round(PtToInch(pt) * g.textScale() * emuPerInch))
}

// Rect is a design-page rectangle in inches.
type Rect struct {
	Left, Top, Width, Height float64
}

// R is shorthand for a Rect literal.
func R(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Inset shrinks the rectangle by d inches on every side.
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{Left: r.Left + d, Top: r.Top + d, Width: w, Height: h}
}

// PtToInch converts a line width in points to inches.
func PtToInch(pt float64) float64 {
	return pt / 72.0
}
