package export

import (
	ppt "github.com/VantageDataChat/GoPPT"
)

// Direction of a block arrow.
type Direction int

const (
	Right Direction = iota
	Down
)

// Canvas places shapes on one slide using design-page coordinates.
type Canvas struct {
	slide *ppt.Slide
	grid  Grid
	log   Logger
	index int
}

// Index is the slide's zero-based position in the document.
func (c *Canvas) Index() int {
	return c.index
}

// shape creates an empty rich text shape covering r.
func (c *Canvas) shape(r Rect) *ppt.RichTextShape {
	s := c.slide.CreateRichTextShape()
	s.SetOffsetX(c.grid.X(r.Left)).SetOffsetY(c.grid.Y(r.Top))
	s.SetWidth(c.grid.X(r.Width)).SetHeight(c.grid.Y(r.Height))
	return s
}

// writeParas appends paragraphs to s. The first paragraph reuses the
// shape's initial one.
func (c *Canvas) writeParas(s *ppt.RichTextShape, paras []Para) {
	for i, p := range paras {
		if i > 0 {
			s.CreateParagraph()
		}
		size := p.Size
		if size == 0 {
			size = defaultBodySize
		}

		// blank lines still need a run to keep their height
		text := p.Text
		if text == "" {
			text = " "
		}
		tr := s.CreateTextRun(text)
		f := tr.GetFont()
		f.SetSize(c.grid.FontSize(size)).SetBold(p.Bold)
		if p.Italic {
			f.Italic = true
		}
		if p.Color != "" {
			f.SetColor(ppt.NewColor(p.Color))
		}
		para := s.GetActiveParagraph()
		applyAlign(para, p.Align)
		para.SetSpaceBefore(c.grid.Spacing(p.SpaceBefore))
		para.SetSpaceAfter(c.grid.Spacing(p.SpaceAfter))
	}
}

// Text adds a transparent text box.
func (c *Canvas) Text(r Rect, paras ...Para) {
	s := c.shape(r)
	c.writeParas(s, paras)
}

// Fill adds a solid rectangle, optionally carrying text.
func (c *Canvas) Fill(r Rect, fill string, paras ...Para) {
	s := c.shape(r)
	s.SetFill(solidFill(fill))
	c.writeParas(s, paras)
}

// Background covers the whole design page with one color.
func (c *Canvas) Background(fill string) {
	c.Fill(R(0, 0, DesignWidth, DesignHeight), fill)
}

// autoShape adds a preset geometry covering r, filled unless fill is empty.
func (c *Canvas) autoShape(r Rect, kind ppt.AutoShapeType, fill string) *ppt.AutoShape {
	s := c.slide.CreateAutoShape()
	s.SetAutoShapeType(kind)
	s.SetPosition(c.grid.X(r.Left), c.grid.Y(r.Top))
	s.SetSize(c.grid.X(r.Width), c.grid.Y(r.Height))
	if fill != "" {
		s.SetSolidFill(ppt.NewColor(fill))
	}
	return s
}

// outline draws a solid border of linePt points; no line or width leaves
// the shape unframed.
func (c *Canvas) outline(b *ppt.BaseShape, line string, linePt float64) {
	if line == "" || linePt <= 0 {
		return
	}
	b.SetBorder(ppt.NewBorder().SetSolidFill(ppt.NewColor(line)).SetWidth(c.grid.Line(linePt)))
}

// Card adds a rounded, framed box. Text goes into a transparent box laid
// over it, inside the frame.
func (c *Canvas) Card(r Rect, fill, line string, linePt float64, paras ...Para) {
	s := c.autoShape(r, ppt.AutoShapeRoundedRect, fill)
	c.outline(&s.BaseShape, line, linePt)
	if len(paras) > 0 {
		c.Text(r.Inset(PtToInch(linePt)), paras...)
	}
}

// Box adds a square, framed box, used for table cells.
func (c *Canvas) Box(r Rect, fill, line string, linePt float64, paras ...Para) {
	s := c.shape(r)
	s.SetFill(solidFill(fill))
	c.outline(&s.BaseShape, line, linePt)
	c.writeParas(s, paras)
}

// Badge adds a filled circle with centered text, used for numbering.
func (c *Canvas) Badge(r Rect, fill, text string, st Style) {
	c.autoShape(r, ppt.AutoShapeEllipse, fill)

	st.Align = AlignCenter
	t := c.shape(r)
	t.SetTextAnchor(ppt.TextAnchorMiddle)
	c.writeParas(t, []Para{{Text: text, Style: st}})
}

// Arrow adds a block arrow filling r.
func (c *Canvas) Arrow(r Rect, dir Direction, color string) {
	kind := ppt.AutoShapeArrowRight
	if dir == Down {
		kind = ppt.AutoShapeArrowDown
	}
	c.autoShape(r, kind, color)
}

// タイトルと本文の領域
var (
	titleRect = R(0.5, 0.3, 9.0, 1.25)
	bodyRect  = R(0.5, 1.75, 9.0, 4.95)
)

// Title writes the slide heading where a "title and content" layout puts it.
func (c *Canvas) Title(text string) {
	c.Text(titleRect, Para{Text: text, Style: Style{Size: 40, Align: AlignCenter}})
}

// Body writes paragraphs into the content area below the title.
func (c *Canvas) Body(paras ...Para) {
	c.Text(bodyRect, paras...)
}
