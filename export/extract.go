package export

import (
	"fmt"

	"github.com/tsawler/tabula/pptx"
)

// ExtractMarkdown renders the text of a .pptx as Markdown, one section per
// slide.
func ExtractMarkdown(path string) (string, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	md, err := r.Markdown()
	if err != nil {
		return "", fmt.Errorf("failed to extract markdown: %w", err)
	}
	return md, nil
}

// SlideTexts returns the plain text of every slide, independent of the
// writer's own reader.
func SlideTexts(path string) ([]string, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	texts := make([]string, 0, r.SlideCount())
	for i := 0; i < r.SlideCount(); i++ {
		s, err := r.Slide(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %d: %w", i+1, err)
		}
		texts = append(texts, s.GetText())
	}
	return texts, nil
}
