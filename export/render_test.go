package export

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open preview: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

// at returns the pixel under a design-page point on a 20 px/in preview.
func at(img image.Image, x, y float64) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(int(x*20), int(y*20))).(color.NRGBA)
}

func sameRGB(c color.NRGBA, r, g, b uint8) bool {
	return c.R == r && c.G == g && c.B == b
}

func TestRenderPreviews(t *testing.T) {
	log := &recordLogger{}
	doc, err := NewDocument(Options{Logger: log})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	c := doc.AddSlide()
	c.Background(RGB(26, 84, 144))
	c.Text(R(1, 3, 8, 1.5), Style{Size: 48, Bold: true, Color: RGB(255, 255, 255), Align: AlignCenter}.P("現状分析"))

	c = doc.AddSlide()
	c.Title("課題と解決策")
	c.Card(R(1, 2, 4, 3), RGB(245, 248, 252), RGB(192, 57, 43), 8)
	c.Arrow(R(6, 2, 3, 1), Right, RGB(26, 84, 144))
	c.Badge(R(6, 4, 1, 1), RGB(39, 174, 96), "1", Style{Size: 24, Bold: true})
	c.Box(R(7.5, 4, 1.5, 1), RGB(236, 240, 241), RGB(189, 195, 199), 1, Style{Size: 12}.Before(4).P("セル"))

	dir := filepath.Join(t.TempDir(), "preview")
	paths, err := doc.RenderPreviews(dir, RenderOptions{Width: 200})
	if err != nil {
		t.Fatalf("RenderPreviews: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d previews, want 2", len(paths))
	}
	if paths[0] != filepath.Join(dir, "slide_1.png") {
		t.Errorf("first preview = %s", paths[0])
	}
	if !log.contains("[RENDER] 2 previews (200x150)") {
		t.Errorf("render summary not logged: %v", log.lines)
	}

	first := decodePNG(t, paths[0])
	if b := first.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("preview size = %v, want 200x150", b)
	}
	if px := at(first, 0.2, 0.2); !sameRGB(px, 26, 84, 144) {
		t.Errorf("background pixel = %v", px)
	}

	second := decodePNG(t, paths[1])
	checks := []struct {
		name    string
		x, y    float64
		r, g, b uint8
	}{
		{"card inside", 3, 3.5, 245, 248, 252},
		{"card frame", 1, 3.5, 192, 57, 43},
		{"arrow shaft", 7, 2.5, 26, 84, 144},
		{"above arrow shaft", 7, 2.1, 255, 255, 255},
		{"badge above its digit", 6.5, 4.1, 39, 174, 96},
		{"badge corner", 6.05, 4.05, 255, 255, 255},
		{"page", 0.2, 6.5, 255, 255, 255},
	}
	for _, tc := range checks {
		if px := at(second, tc.x, tc.y); !sameRGB(px, tc.r, tc.g, tc.b) {
			t.Errorf("%s: pixel = %v, want %d,%d,%d", tc.name, px, tc.r, tc.g, tc.b)
		}
	}
}

func TestRenderPreviewsEmptyDocument(t *testing.T) {
	doc, err := NewDocument(Options{})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	_, err = doc.RenderPreviews(t.TempDir(), RenderOptions{})
	if !errors.Is(err, ErrNothingToRender) {
		t.Errorf("err = %v, want ErrNothingToRender", err)
	}
}

func TestRankFontsPrefersJapaneseFaces(t *testing.T) {
	got := rankFonts([]string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/misc/unrelated.ttf",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	})
	if len(got) != 2 {
		t.Fatalf("ranked = %v", got)
	}
	if filepath.Base(got[0]) != "NotoSansCJK-Regular.ttc" {
		t.Errorf("first choice = %s", got[0])
	}
}

func TestFontSetFallsBackToBitmapFace(t *testing.T) {
	set := &fontSet{}
	face := set.face(24)
	if face == nil {
		t.Fatal("nil face")
	}
	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Error("fallback face has no glyph for A")
	}
}
