package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Logger receives diagnostic messages. *logger.Logger satisfies it.
type Logger interface {
	Logf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

// Options configures a Document.
type Options struct {
	Grid    Grid
	Logger  Logger
	Title   string
	Creator string
}

// Document is a presentation being assembled slide by slide.
type Document struct {
	pres *ppt.Presentation
	grid Grid
	log  Logger

	// a new presentation starts with one blank slide that the first
	// AddSlide reuses
	blankFirst bool
}

func (o Options) normalize() (Options, error) {
	if o.Grid == (Grid{}) {
		o.Grid = DefaultGrid()
	}
	if err := o.Grid.Validate(); err != nil {
		return o, err
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	return o, nil
}

// NewDocument starts an empty presentation.
func NewDocument(opts Options) (*Document, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	d := &Document{pres: ppt.New(), grid: opts.Grid, log: opts.Logger, blankFirst: true}
	d.setProperties(opts)
	cx, cy := opts.Grid.Page()
	if l := d.pres.GetLayout(); l.CX != cx || l.CY != cy {
		l.SetCustomLayout(cx, cy)
	}
	return d, nil
}

// OpenTemplate loads an existing .pptx so that new slides are appended after
// its slides. A missing template is an error.
func OpenTemplate(path string, opts Options) (*Document, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}

	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", filepath.Base(path), err)
	}

	d := &Document{pres: pres, grid: opts.Grid, log: opts.Logger}
	d.setProperties(opts)
	if cx, cy := opts.Grid.Page(); d.PageSize() != [2]int64{cx, cy} {
		opts.Logger.Logf("[DOC] template page %v EMU differs from configured page %dx%d", d.PageSize(), cx, cy)
	}
	opts.Logger.Logf("[DOC] template %s loaded with %d slides", path, d.SlideCount())
	return d, nil
}

func (d *Document) setProperties(opts Options) {
	props := d.pres.GetDocumentProperties()
	if opts.Title != "" {
		props.Title = opts.Title
	}
	if opts.Creator != "" {
		props.Creator = opts.Creator
	}
}

// AddSlide appends a blank slide and returns a canvas for it.
func (d *Document) AddSlide() *Canvas {
	var slide *ppt.Slide
	if d.blankFirst {
		slide = d.pres.GetActiveSlide()
		d.blankFirst = false
	} else {
		slide = d.pres.CreateSlide()
	}
	return &Canvas{slide: slide, grid: d.grid, log: d.log, index: d.SlideCount() - 1}
}

// PageSize returns the slide width and height in EMU.
func (d *Document) PageSize() [2]int64 {
	l := d.pres.GetLayout()
	if l == nil {
		return [2]int64{}
	}
	return [2]int64{l.CX, l.CY}
}

// SlideCount returns the number of slides built so far.
func (d *Document) SlideCount() int {
	if d.blankFirst {
		return 0
	}
	return len(d.pres.GetAllSlides())
}

// Bytes serializes the presentation as PowerPoint 2007+ (.pptx).
func (d *Document) Bytes() ([]byte, error) {
	w, err := ppt.NewWriter(d.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the presentation to path, creating parent directories.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	d.log.Logf("[DOC] wrote %s (%d slides, %d bytes)", path, d.SlideCount(), len(data))
	return nil
}
