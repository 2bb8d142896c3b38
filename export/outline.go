package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideOutline is the text found on one slide, in shape order.
type SlideOutline struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Texts  []string `json:"texts"`
}

// Outline is the read-back text of a whole presentation.
type Outline struct {
	File   string         `json:"file"`
	Slides []SlideOutline `json:"slides"`
}

// Contains reports whether any paragraph on the slide contains s.
func (s SlideOutline) Contains(sub string) bool {
	for _, t := range s.Texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// ReadOutline opens a .pptx and collects the non-blank paragraphs of every
// slide. The first paragraph found on a slide is taken as its title.
func ReadOutline(path string) (*Outline, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	out := &Outline{File: path}
	for i, slide := range pres.GetAllSlides() {
		so := SlideOutline{Number: i + 1}
		for _, shape := range slide.GetShapes() {
			var rts *ppt.RichTextShape
			switch s := shape.(type) {
			case *ppt.RichTextShape:
				rts = s
			case *ppt.PlaceholderShape:
				rts = &s.RichTextShape
			default:
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if so.Title == "" {
					so.Title = text
				}
				so.Texts = append(so.Texts, text)
			}
		}
		out.Slides = append(out.Slides, so)
	}
	return out, nil
}
