package export

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/cases"
)

// preferredFonts ranks font file names, Japanese-capable faces first.
var preferredFonts = []string{
	"notosanscjk",
	"notosansjp",
	"ipaexg",
	"ipag",
	"yugoth",
	"meiryo",
	"msgothic",
	"hiragino",
	"droidsansfallback",
	"wqy",
	"dejavusans",
}

func systemFontDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
	}
	switch runtime.GOOS {
	case "windows":
		dirs = append(dirs, `C:\Windows\Fonts`)
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
	}
	return dirs
}

// fontSet hands out faces of one outline font by pixel size. Without an
// outline font every size gets the 7x13 bitmap face.
type fontSet struct {
	file string
	font *opentype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

func loadFonts(extra []string) *fontSet {
	set := &fontSet{faces: make(map[int]font.Face)}
	dirs := append(append([]string{}, extra...), systemFontDirs()...)
	for _, path := range rankFonts(findFonts(dirs)) {
		f, err := parseFont(path)
		if err != nil {
			continue
		}
		set.file, set.font = path, f
		break
	}
	return set
}

func findFonts(dirs []string) []string {
	var found []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".ttc":
				found = append(found, path)
			}
			return nil
		})
	}
	return found
}

// rankFonts keeps the files matching a preferred name, best first.
func rankFonts(paths []string) []string {
	fold := cases.Fold()
	var ranked []string
	for _, want := range preferredFonts {
		for _, p := range paths {
			name := fold.String(filepath.Base(p))
			name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
			if strings.Contains(name, want) {
				ranked = append(ranked, p)
			}
		}
	}
	return ranked
}

func parseFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return c.Font(0)
	}
	return opentype.Parse(data)
}

func (s *fontSet) face(px float64) font.Face {
	if s.font == nil {
		return basicfont.Face7x13
	}
	size := int(math.Round(px))
	if size < 4 {
		size = 4
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	s.faces[size] = f
	return f
}
