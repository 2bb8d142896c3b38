package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultRenderWidth is the preview width in pixels when none is set.
const DefaultRenderWidth = 1280

// text frame insets PowerPoint applies when a shape sets none, in EMU
const (
	insetX = 91440
	insetY = 45720
)

// RenderOptions controls preview rendering.
type RenderOptions struct {
	Width    int      // pixels, height follows the page aspect
	FontDirs []string // searched before the system font directories
}

// ErrNothingToRender is returned for a document without slides.
var ErrNothingToRender = errors.New("document has no slides")

// RenderPreviews draws every slide into dir as slide_N.png and returns the
// written paths. Fills, frames, preset shapes, pictures and text are drawn;
// charts, tables and effects are not.
func (d *Document) RenderPreviews(dir string, opts RenderOptions) ([]string, error) {
	if d.SlideCount() == 0 {
		return nil, ErrNothingToRender
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultRenderWidth
	}
	page := d.PageSize()
	if page[0] <= 0 || page[1] <= 0 {
		page[0], page[1] = d.grid.Page()
	}
	scale := float64(width) / float64(page[0])
	height := int(math.Round(float64(page[1]) * scale))

	fonts := loadFonts(opts.FontDirs)
	if fonts.file == "" {
		d.log.Logf("[RENDER] no outline font found, text uses the built-in bitmap face")
	} else {
		d.log.Logf("[RENDER] font %s", fonts.file)
	}

	slides := d.pres.GetAllSlides()
	paths := make([]string, 0, len(slides))
	for i, slide := range slides {
		p := &painter{
			img:   image.NewRGBA(image.Rect(0, 0, width, height)),
			scale: scale,
			fonts: fonts,
			log:   d.log,
		}
		p.slide(slide)

		path := filepath.Join(dir, fmt.Sprintf("slide_%d.png", i+1))
		if err := savePNG(path, p.img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	d.log.Logf("[RENDER] %d previews (%dx%d) in %s", len(paths), width, height, dir)
	return paths, nil
}

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// painter rasterizes one slide.
type painter struct {
	img   *image.RGBA
	scale float64 // pixels per EMU
	fonts *fontSet
	log   Logger
}

// box is a shape's frame in pixels.
type box struct {
	x, y, w, h float32
}

func (p *painter) px(emu int64) float32 {
	return float32(float64(emu) * p.scale)
}

func (p *painter) frame(s ppt.Shape) box {
	return box{p.px(s.GetOffsetX()), p.px(s.GetOffsetY()), p.px(s.GetWidth()), p.px(s.GetHeight())}
}

func nrgba(c ppt.Color) color.NRGBA {
	return color.NRGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: c.GetAlpha()}
}

func (p *painter) slide(s *ppt.Slide) {
	var bg color.Color = color.White
	if f := s.GetBackground(); f != nil && f.Type != ppt.FillNone {
		bg = nrgba(f.Color)
	}
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, shape := range s.GetShapes() {
		switch sh := shape.(type) {
		case *ppt.AutoShape:
			p.autoShape(sh)
		case *ppt.RichTextShape:
			p.richText(sh)
		case *ppt.DrawingShape:
			p.picture(sh)
		}
	}
}

func (p *painter) autoShape(s *ppt.AutoShape) {
	p.geometry(s.GetAutoShapeType(), p.frame(s), s.GetFill(), s.GetBorder())
}

func (p *painter) richText(s *ppt.RichTextShape) {
	b := p.frame(s)
	p.geometry(ppt.AutoShapeRectangle, b, s.GetFill(), s.GetBorder())
	p.paragraphs(s.GetParagraphs(), b, s.GetTextAnchor())
}

// geometry fills a preset shape and its frame. The frame is centered on
// the outline: the line color fills the outline grown by half the line
// width, the fill color the outline shrunk by the same amount.
func (p *painter) geometry(kind ppt.AutoShapeType, b box, fill *ppt.Fill, border *ppt.Border) {
	filled := fill != nil && fill.Type != ppt.FillNone
	var lw float32
	if border != nil && border.Style != ppt.BorderNone {
		lw = p.px(int64(border.Width))
		if lw < 1 {
			lw = 1
		}
	}

	switch {
	case lw > 0 && filled:
		p.fillPath(kind, b.grow(lw/2), nrgba(border.Color))
		p.fillPath(kind, b.grow(-lw/2), nrgba(fill.Color))
	case lw > 0:
		p.strokeRect(b, lw, nrgba(border.Color))
	case filled:
		p.fillPath(kind, b, nrgba(fill.Color))
	}
}

func (b box) grow(d float32) box {
	w, h := b.w+2*d, b.h+2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return box{b.x - d, b.y - d, w, h}
}

// fillPath rasterizes only the shape's pixel bounds, clipped to the page;
// vector.Rasterizer.Draw does no clipping of its own.
func (p *painter) fillPath(kind ppt.AutoShapeType, b box, c color.Color) {
	if b.w <= 0 || b.h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(float64(b.x))), int(math.Floor(float64(b.y))),
		int(math.Ceil(float64(b.x+b.w))), int(math.Ceil(float64(b.y+b.h))),
	).Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	trace(z, kind, box{b.x - float32(r.Min.X), b.y - float32(r.Min.Y), b.w, b.h})
	z.Draw(p.img, r, image.NewUniform(c), image.Point{})
}

// strokeRect draws an unfilled rectangular frame.
func (p *painter) strokeRect(b box, lw float32, c color.Color) {
	x, y, w, h := b.x-lw/2, b.y-lw/2, b.w+lw, b.h+lw
	for _, edge := range []box{{x, y, w, lw}, {x, y + h - lw, w, lw}, {x, y, lw, h}, {x + w - lw, y, lw, h}} {
		p.fillPath(ppt.AutoShapeRectangle, edge, c)
	}
}

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5523

// trace adds the outline of a preset shape to z. Adjustments are the
// preset defaults; unknown presets draw as rectangles.
func trace(z *vector.Rasterizer, kind ppt.AutoShapeType, b box) {
	x, y, w, h := b.x, b.y, b.w, b.h
	short := w
	if h < short {
		short = h
	}

	switch kind {
	case ppt.AutoShapeRoundedRect:
		r := short / 6
		z.MoveTo(x+r, y)
		z.LineTo(x+w-r, y)
		z.QuadTo(x+w, y, x+w, y+r)
		z.LineTo(x+w, y+h-r)
		z.QuadTo(x+w, y+h, x+w-r, y+h)
		z.LineTo(x+r, y+h)
		z.QuadTo(x, y+h, x, y+h-r)
		z.LineTo(x, y+r)
		z.QuadTo(x, y, x+r, y)
	case ppt.AutoShapeEllipse:
		rx, ry := w/2, h/2
		cx, cy := x+rx, y+ry
		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	case ppt.AutoShapeArrowRight:
		head := x + w - short/2
		z.MoveTo(x, y+h/4)
		z.LineTo(head, y+h/4)
		z.LineTo(head, y)
		z.LineTo(x+w, y+h/2)
		z.LineTo(head, y+h)
		z.LineTo(head, y+h*3/4)
		z.LineTo(x, y+h*3/4)
	case ppt.AutoShapeArrowDown:
		head := y + h - short/2
		z.MoveTo(x+w/4, y)
		z.LineTo(x+w*3/4, y)
		z.LineTo(x+w*3/4, head)
		z.LineTo(x+w, head)
		z.LineTo(x+w/2, y+h)
		z.LineTo(x, head)
		z.LineTo(x+w/4, head)
	default:
		z.MoveTo(x, y)
		z.LineTo(x+w, y)
		z.LineTo(x+w, y+h)
		z.LineTo(x, y+h)
	}
	z.ClosePath()
}

func (p *painter) picture(s *ppt.DrawingShape) {
	data := s.GetImageData()
	if len(data) == 0 && s.GetPath() != "" {
		data, _ = os.ReadFile(s.GetPath())
	}
	if len(data) == 0 {
		return
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		p.log.Logf("[RENDER] picture %s skipped: %v", s.GetName(), err)
		return
	}
	b := p.frame(s)
	dst := image.Rect(int(b.x), int(b.y), int(b.x+b.w), int(b.y+b.h))
	draw.ApproxBiLinear.Scale(p.img, dst, src, src.Bounds(), draw.Over, nil)
}

// textLine is one wrapped line of a paragraph.
type textLine struct {
	text     string
	width    float32
	face     font.Face
	color    color.Color
	bold     bool
	ascent   float32
	height   float32
	before   float32 // extra space above, first line of a paragraph only
	after    float32 // extra space below, last line only
	centered bool
	right    bool
}

// paragraphs lays the text out inside b: wrapped at the frame width less
// the default insets, stacked top down and shifted as a block for middle or
// bottom anchoring.
func (p *painter) paragraphs(paras []*ppt.Paragraph, b box, anchor ppt.TextAnchorType) {
	left, top := b.x+p.px(insetX), b.y+p.px(insetY)
	width, height := b.w-2*p.px(insetX), b.h-2*p.px(insetY)
	if width <= 0 {
		return
	}

	var lines []textLine
	for _, para := range paras {
		lines = append(lines, p.wrap(para, width)...)
	}

	var total float32
	for _, l := range lines {
		total += l.before + l.height + l.after
	}
	switch anchor {
	case ppt.TextAnchorMiddle:
		top += (height - total) / 2
	case ppt.TextAnchorBottom:
		top += height - total
	}

	y := top
	for _, l := range lines {
		y += l.before
		x := left
		switch {
		case l.centered:
			x += (width - l.width) / 2
		case l.right:
			x += width - l.width
		}
		p.drawLine(l, x, y+l.ascent)
		y += l.height + l.after
	}
}

func (p *painter) wrap(para *ppt.Paragraph, width float32) []textLine {
	var (
		text string
		f    *ppt.Font
	)
	for _, e := range para.GetElements() {
		if tr, ok := e.(*ppt.TextRun); ok {
			text += tr.GetText()
			if f == nil {
				f = tr.GetFont()
			}
		}
	}
	if f == nil {
		f = ppt.NewFont()
	}

	sizePx := float64(f.Size) * 12700 * p.scale
	face := p.fonts.face(sizePx)
	m := face.Metrics()
	proto := textLine{
		face:   face,
		color:  nrgba(f.Color),
		bold:   f.Bold,
		ascent: fix(m.Ascent),
		height: fix(m.Height),
	}
	if a := para.GetAlignment(); a != nil {
		proto.centered = a.Horizontal == ppt.HorizontalCenter
		proto.right = a.Horizontal == ppt.HorizontalRight
	}

	var out []textLine
	start, w := 0, float32(0)
	runes := []rune(text)
	for i, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('?')
		}
		cw := fix(adv)
		if w+cw > width && i > start {
			l := proto
			l.text, l.width = string(runes[start:i]), w
			out = append(out, l)
			start, w = i, 0
		}
		w += cw
	}
	l := proto
	l.text, l.width = string(runes[start:]), w
	out = append(out, l)

	// points to pixels: hundredths of a point, 12700 EMU per point
	out[0].before = float32(float64(para.GetSpaceBefore()) / 100 * 12700 * p.scale)
	out[len(out)-1].after = float32(float64(para.GetSpaceAfter()) / 100 * 12700 * p.scale)
	return out
}

func (p *painter) drawLine(l textLine, x, baseline float32) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(l.color),
		Face: l.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)},
	}
	d.DrawString(l.text)
	if l.bold {
		// one faux-bold pass shifted by a pixel
		d.Dot = fixed.Point26_6{X: fixed.Int26_6((x + 1) * 64), Y: fixed.Int26_6(baseline * 64)}
		d.DrawString(l.text)
	}
}

func fix(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
