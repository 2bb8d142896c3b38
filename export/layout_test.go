package export

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"
)

func TestDefaultGridIsDesignPage(t *testing.T) {
	g := DefaultGrid()
	if err := g.Validate(); err != nil {
		t.Fatalf("default grid invalid: %v", err)
	}

	cx, cy := g.Page()
	if cx != 9144000 || cy != 6858000 {
		t.Errorf("Page() = %dx%d, want 9144000x6858000", cx, cy)
	}
	if got := g.FontSize(40); got != 40 {
		t.Errorf("FontSize(40) = %d, want 40", got)
	}
}

func TestWideGridScalesDesignPage(t *testing.T) {
	g := Grid{PageWidth: DesignWidth, PageHeight: WidePageHeight}

	if got, want := g.X(DesignWidth), int64(DesignWidth*emuPerInch); got != want {
		t.Errorf("X(design width) = %d, want %d", got, want)
	}
	if got, want := g.Y(DesignHeight), int64(WidePageHeight*emuPerInch); got != want {
		t.Errorf("Y(design height) = %d, want %d", got, want)
	}

	// 40pt on the 4:3 page shrinks by 0.75 on the wide page
	if got := g.FontSize(40); got != 30 {
		t.Errorf("FontSize(40) = %d, want 30", got)
	}
	if got := g.FontSize(4); got != minFontSize {
		t.Errorf("FontSize(4) = %d, want floor %d", got, minFontSize)
	}

	// spacing and line widths shrink with the text
	if got := g.Spacing(8); got != 600 {
		t.Errorf("Spacing(8) = %d, want 600", got)
	}
	if got := g.Line(2); got != 19050 {
		t.Errorf("Line(2) = %d, want 19050", got)
	}
	if g.Spacing(0) != 0 || g.Line(-1) != 0 {
		t.Error("non-positive spacing or line width not dropped")
	}
}

func TestGridValidate(t *testing.T) {
	for _, g := range []Grid{{0, 5}, {10, 0}, {-1, 7.5}} {
		if err := g.Validate(); err == nil {
			t.Errorf("Validate(%v) = nil, want error", g)
		}
	}
	if err := (Grid{PageWidth: DesignWidth, PageHeight: DesignHeight}).Validate(); err != nil {
		t.Errorf("design-sized grid rejected: %v", err)
	}
}

func TestIdentityGridKeepsFontSizes(t *testing.T) {
	g := Grid{PageWidth: DesignWidth, PageHeight: DesignHeight}
	for _, pt := range []float64{12, 18, 40, 56} {
		if got := g.FontSize(pt); got != int(pt) {
			t.Errorf("FontSize(%v) = %d on identity grid", pt, got)
		}
	}
}

// Mapped rectangles stay inside the output page.
func TestProperty_GridKeepsShapesOnPage(t *testing.T) {
	cfg := &quick.Config{
		MaxCount: 200,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g := Grid{PageWidth: DesignWidth, PageHeight: WidePageHeight}
	pageW, pageH := g.Page()

	f := func(a, b uint16) bool {
		left := float64(a%1000) / 1000 * DesignWidth
		top := float64(b%1000) / 1000 * DesignHeight
		r := R(left, top, DesignWidth-left, DesignHeight-top)
		return g.X(r.Left)+g.X(r.Width) <= pageW+1 && g.Y(r.Top)+g.Y(r.Height) <= pageH+1
	}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

func TestRectInset(t *testing.T) {
	r := R(1, 1, 4, 2).Inset(0.5)
	if r != (Rect{Left: 1.5, Top: 1.5, Width: 3, Height: 1}) {
		t.Errorf("Inset = %+v", r)
	}

	r = R(0, 0, 0.2, 0.2).Inset(1)
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("over-inset not clamped: %+v", r)
	}
}

func TestPtToInch(t *testing.T) {
	if got := PtToInch(72); got != 1 {
		t.Errorf("PtToInch(72) = %v", got)
	}
}
