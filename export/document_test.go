package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Logf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordLogger) contains(sub string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

// buildSample writes a small three-slide deck and returns its path.
func buildSample(t *testing.T, dir string) string {
	t.Helper()

	doc, err := NewDocument(Options{Title: "テスト資料", Creator: "deckgen"})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if doc.SlideCount() != 0 {
		t.Fatalf("new document has %d slides, want 0", doc.SlideCount())
	}

	c := doc.AddSlide()
	c.Title("物流システムソリューション提案書")
	c.Body(Style{Size: 16}.P("• 在庫削減"), Style{}.P(""), Style{Bold: true}.P("• 物流コスト削減"))

	c = doc.AddSlide()
	c.Background(RGB(26, 84, 144))
	c.Text(R(1, 3, 8, 1.5), Style{Size: 48, Bold: true, Color: RGB(255, 255, 255), Align: AlignCenter}.P("現状分析"))

	c = doc.AddSlide()
	c.Card(R(0.5, 1, 9, 2), RGB(245, 248, 252), RGB(26, 84, 144), 2, Style{Size: 16}.P("課題1：在庫管理"))
	c.Badge(R(0.7, 3.5, 0.5, 0.5), RGB(192, 57, 43), "1", Style{Size: 24, Bold: true})
	c.Arrow(R(4.75, 4.2, 0.5, 0.2), Down, RGB(26, 84, 144))
	if c.Index() != 2 {
		t.Errorf("third canvas index = %d", c.Index())
	}

	if doc.SlideCount() != 3 {
		t.Fatalf("SlideCount = %d, want 3", doc.SlideCount())
	}

	path := filepath.Join(dir, "out", "sample.pptx")
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestDocumentSaveAndReadOutline(t *testing.T) {
	path := buildSample(t, t.TempDir())

	outline, err := ReadOutline(path)
	if err != nil {
		t.Fatalf("ReadOutline: %v", err)
	}
	if len(outline.Slides) != 3 {
		t.Fatalf("outline has %d slides, want 3", len(outline.Slides))
	}

	first := outline.Slides[0]
	if first.Number != 1 || first.Title != "物流システムソリューション提案書" {
		t.Errorf("first slide = %+v", first)
	}
	if !first.Contains("物流コスト削減") {
		t.Errorf("body text missing: %v", first.Texts)
	}
	for _, text := range first.Texts {
		if text == "" {
			t.Errorf("blank paragraph kept in outline")
		}
	}
	if !outline.Slides[1].Contains("現状分析") {
		t.Errorf("divider text missing: %v", outline.Slides[1].Texts)
	}
	if !outline.Slides[2].Contains("課題1：在庫管理") || !outline.Slides[2].Contains("1") {
		t.Errorf("card slide texts = %v", outline.Slides[2].Texts)
	}
}

func TestSlideTextsAgreesWithOutline(t *testing.T) {
	path := buildSample(t, t.TempDir())

	texts, err := SlideTexts(path)
	if err != nil {
		t.Fatalf("SlideTexts: %v", err)
	}
	if len(texts) != 3 {
		t.Fatalf("got %d slides, want 3", len(texts))
	}
	if !strings.Contains(texts[0], "物流システムソリューション提案書") {
		t.Errorf("slide 1 text = %q", texts[0])
	}

	md, err := ExtractMarkdown(path)
	if err != nil {
		t.Fatalf("ExtractMarkdown: %v", err)
	}
	if !strings.Contains(md, "現状分析") {
		t.Errorf("markdown missing divider text")
	}
}

func TestOpenTemplateAppends(t *testing.T) {
	dir := t.TempDir()
	path := buildSample(t, dir)

	log := &recordLogger{}
	doc, err := OpenTemplate(path, Options{Logger: log})
	if err != nil {
		t.Fatalf("OpenTemplate: %v", err)
	}
	if doc.SlideCount() != 3 {
		t.Fatalf("template SlideCount = %d, want 3", doc.SlideCount())
	}

	c := doc.AddSlide()
	c.Title("追加スライド")
	if c.Index() != 3 {
		t.Errorf("appended canvas index = %d, want 3", c.Index())
	}

	out := filepath.Join(dir, "extended.pptx")
	if err := doc.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !log.contains("[DOC] template") || !log.contains("[DOC] wrote") {
		t.Errorf("log lines = %v", log.lines)
	}

	outline, err := ReadOutline(out)
	if err != nil {
		t.Fatalf("ReadOutline: %v", err)
	}
	if len(outline.Slides) != 4 {
		t.Fatalf("extended deck has %d slides, want 4", len(outline.Slides))
	}
	if outline.Slides[3].Title != "追加スライド" {
		t.Errorf("appended slide title = %q", outline.Slides[3].Title)
	}
}

func TestOpenTemplateMissing(t *testing.T) {
	_, err := OpenTemplate(filepath.Join(t.TempDir(), "none.pptx"), Options{})
	if err == nil {
		t.Fatal("expected error for missing template")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestInvalidGridRejected(t *testing.T) {
	if _, err := NewDocument(Options{Grid: Grid{PageWidth: -1, PageHeight: 5}}); err == nil {
		t.Error("negative page width accepted")
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 26, G: 84, B: 144, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestPicture(t *testing.T) {
	dir := t.TempDir()
	log := &recordLogger{}
	doc, err := NewDocument(Options{Logger: log})
	if err != nil {
		t.Fatal(err)
	}
	c := doc.AddSlide()

	if c.Picture(filepath.Join(dir, "missing.png"), 0.5, 1.5, 5) {
		t.Error("missing picture reported as placed")
	}
	if !log.contains("skipped") {
		t.Errorf("skip not logged: %v", log.lines)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c.Picture(bad, 0.5, 1.5, 5) {
		t.Error("undecodable picture reported as placed")
	}

	good := filepath.Join(dir, "figure.png")
	writePNG(t, good, 40, 20)
	if !c.Picture(good, 0.5, 1.5, 5) {
		t.Errorf("picture not placed: %v", log.lines)
	}

	if err := doc.Save(filepath.Join(dir, "picture.pptx")); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestLoadPicture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, path, 30, 10)

	data, mime, w, h, err := loadPicture(path)
	if err != nil {
		t.Fatalf("loadPicture: %v", err)
	}
	if mime != "image/png" || w != 30 || h != 10 || len(data) == 0 {
		t.Errorf("loadPicture = %s %dx%d (%d bytes)", mime, w, h, len(data))
	}
}

func TestPresetShapesSurviveSave(t *testing.T) {
	path := buildSample(t, t.TempDir())

	pres, err := (&ppt.PPTXReader{}).Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	slides := pres.GetAllSlides()
	if len(slides) != 3 {
		t.Fatalf("read %d slides, want 3", len(slides))
	}

	kinds := map[ppt.AutoShapeType]bool{}
	for _, shape := range slides[2].GetShapes() {
		if a, ok := shape.(*ppt.AutoShape); ok {
			kinds[a.GetAutoShapeType()] = true
		}
	}
	for _, want := range []ppt.AutoShapeType{ppt.AutoShapeRoundedRect, ppt.AutoShapeEllipse, ppt.AutoShapeArrowDown} {
		if !kinds[want] {
			t.Errorf("slide 3 has no %s shape (found %v)", want, kinds)
		}
	}
}

func TestCardFrameAndSpacingWritten(t *testing.T) {
	doc, err := NewDocument(Options{})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	c := doc.AddSlide()
	c.Card(R(1, 1, 4, 2), RGB(245, 248, 252), RGB(26, 84, 144), 2,
		Style{Size: 18, Bold: true}.After(8).P("在庫管理"),
		Style{Size: 14}.Before(3).P("発注点の自動計算"))

	var card *ppt.AutoShape
	for _, shape := range doc.pres.GetAllSlides()[0].GetShapes() {
		if a, ok := shape.(*ppt.AutoShape); ok {
			card = a
		}
	}
	if card == nil || card.GetAutoShapeType() != ppt.AutoShapeRoundedRect {
		t.Fatalf("card shape = %#v", card)
	}
	if b := card.GetBorder(); b == nil || b.Style != ppt.BorderSolid || b.Width != 25400 {
		t.Errorf("card border = %+v, want solid 25400 EMU", b)
	}

	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	body := slideXML(t, data, "ppt/slides/slide1.xml")
	for _, want := range []string{
		`<a:spcAft><a:spcPts val="800"/></a:spcAft>`,
		`<a:spcBef><a:spcPts val="300"/></a:spcBef>`,
		`prst="roundRect"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("slide XML lacks %s", want)
		}
	}
}

func slideXML(t *testing.T, pptx []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pptx), int64(len(pptx)))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("%s not in package", name)
	return ""
}

func TestPageSizeFollowsGrid(t *testing.T) {
	doc, err := NewDocument(Options{})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if got := doc.PageSize(); got != [2]int64{9144000, 6858000} {
		t.Errorf("default page = %v", got)
	}

	wide, err := NewDocument(Options{Grid: Grid{PageWidth: DesignWidth, PageHeight: WidePageHeight}})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	wide.AddSlide().Title("16:9")
	path := filepath.Join(t.TempDir(), "wide.pptx")
	if err := wide.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	pres, err := (&ppt.PPTXReader{}).Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if l := pres.GetLayout(); l.CX != 9144000 || l.CY != 5143500 {
		t.Errorf("saved page = %dx%d, want 9144000x5143500", l.CX, l.CY)
	}
}
