// Package decks holds the literal content of the logistics proposal decks.
// Each slide is one function that draws onto a fresh canvas; a deck is the
// ordered list of those functions.
package decks

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/kasuya3/INT-YAMAE/export"
)

// Env carries the inputs a build may read.
type Env struct {
	Options  export.Options
	AssetDir string // base directory of optional pictures
	Template string // template .pptx for decks that extend another deck
}

func (e Env) asset(rel string) string {
	if e.AssetDir == "" {
		return rel
	}
	return filepath.Join(e.AssetDir, rel)
}

// ErrNoTemplate is returned when a deck that extends another deck is built
// without a template path.
var ErrNoTemplate = errors.New("no template path")

type slide struct {
	// title is the heading text the slide must carry
	title string
	draw  func(c *export.Canvas, env Env)
}

// Deck is one generated presentation.
type Deck struct {
	Name     string
	FileName string
	Title    string
	Message  string // printed after the file is saved

	// Extends names the deck whose output is loaded as the template.
	Extends string
	// Series is the deck's place in the series. Names lists decks by it.
	Series int

	slides []slide
}

// SlideTitles returns the heading of each slide this deck adds, in order.
func (d *Deck) SlideTitles() []string {
	titles := make([]string, len(d.slides))
	for i, s := range d.slides {
		titles[i] = s.title
	}
	return titles
}

// Build assembles the deck in memory.
func (d *Deck) Build(env Env) (*export.Document, error) {
	opts := env.Options
	if opts.Title == "" {
		opts.Title = d.Title
	}

	var (
		doc *export.Document
		err error
	)
	if d.Extends != "" {
		if env.Template == "" {
			return nil, WrapBuildError(d.Name, "open document", WrapOperationError("locate the "+d.Extends+" deck", ErrNoTemplate))
		}
		doc, err = export.OpenTemplate(env.Template, opts)
	} else {
		doc, err = export.NewDocument(opts)
	}
	if err != nil {
		return nil, WrapBuildError(d.Name, "open document", err)
	}

	log := opts.Logger
	for i, s := range d.slides {
		c := doc.AddSlide()
		s.draw(c, env)
		if log != nil {
			log.Logf("[BUILD] %s: slide %d/%d %s", d.Name, i+1, len(d.slides), s.title)
		}
	}
	return doc, nil
}

// Write builds the deck and saves it under dir. It returns the output path
// and the total slide count.
func (d *Deck) Write(env Env, dir string) (string, int, error) {
	doc, err := d.Build(env)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, d.FileName)
	if err := doc.Save(path); err != nil {
		return "", 0, WrapBuildError(d.Name, "save", err)
	}
	return path, doc.SlideCount(), nil
}

var registry = map[string]*Deck{}

func register(d *Deck) *Deck {
	registry[d.Name] = d
	return d
}

// Lookup returns the deck with the given name.
func Lookup(name string) (*Deck, error) {
	d, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown deck %q (available: %v)", name, Names())
	}
	return d, nil
}

// Names lists the registered decks in series order, which is also a valid
// build order: a deck's Series is always above the Series of the deck it
// extends.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := registry[names[i]], registry[names[j]]
		if a.Series != b.Series {
			return a.Series < b.Series
		}
		return a.Name < b.Name
	})
	return names
}
