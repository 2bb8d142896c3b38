package decks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuya3/INT-YAMAE/export"
)

type buildResult struct {
	path  string
	count int
}

// buildChain writes the proposal deck and then the named deck into dir.
func buildChain(t *testing.T, dir string, name string) buildResult {
	t.Helper()

	d, err := Lookup(name)
	require.NoError(t, err)

	env := Env{AssetDir: dir}
	if d.Extends != "" {
		base := buildChain(t, dir, d.Extends)
		env.Template = base.path
	}
	path, count, err := d.Write(env, dir)
	require.NoError(t, err)
	return buildResult{path: path, count: count}
}

func TestSlideCounts(t *testing.T) {
	cases := []struct {
		deck   string
		slides int
		total  int
	}{
		{"proposal", 25, 25},
		{"collaboration", 12, 37},
		{"improved", 25, 25},
	}
	for _, c := range cases {
		t.Run(c.deck, func(t *testing.T) {
			d, err := Lookup(c.deck)
			require.NoError(t, err)
			assert.Len(t, d.SlideTitles(), c.slides)

			res := buildChain(t, t.TempDir(), c.deck)
			assert.Equal(t, c.total, res.count)
			assert.Equal(t, d.FileName, filepath.Base(res.path))

			outline, err := export.ReadOutline(res.path)
			require.NoError(t, err)
			assert.Len(t, outline.Slides, c.total)
		})
	}
}

func TestImprovedDeckDrawsPresetShapes(t *testing.T) {
	res := buildChain(t, t.TempDir(), Improved.Name)

	pres, err := (&ppt.PPTXReader{}).Read(res.path)
	require.NoError(t, err)

	kinds := map[ppt.AutoShapeType]int{}
	for _, slide := range pres.GetAllSlides() {
		for _, shape := range slide.GetShapes() {
			if a, ok := shape.(*ppt.AutoShape); ok {
				kinds[a.GetAutoShapeType()]++
			}
		}
	}
	assert.Positive(t, kinds[ppt.AutoShapeRoundedRect], "cards")
	assert.Positive(t, kinds[ppt.AutoShapeEllipse], "numbered circles")
	assert.Positive(t, kinds[ppt.AutoShapeArrowRight], "flow arrows")
	assert.Positive(t, kinds[ppt.AutoShapeArrowDown], "step arrows")
}

func TestEverySlideCarriesItsTitle(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			d, err := Lookup(name)
			require.NoError(t, err)

			res := buildChain(t, t.TempDir(), name)
			outline, err := export.ReadOutline(res.path)
			require.NoError(t, err)

			titles := d.SlideTitles()
			offset := len(outline.Slides) - len(titles)
			require.GreaterOrEqual(t, offset, 0)
			for i, title := range titles {
				s := outline.Slides[offset+i]
				assert.True(t, s.Contains(title), "slide %d missing %q: %v", s.Number, title, s.Texts)
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := buildChain(t, t.TempDir(), "improved")
	second := buildChain(t, t.TempDir(), "improved")
	assert.Equal(t, first.count, second.count)

	a, err := export.ReadOutline(first.path)
	require.NoError(t, err)
	b, err := export.ReadOutline(second.path)
	require.NoError(t, err)
	require.Len(t, b.Slides, len(a.Slides))
	for i := range a.Slides {
		assert.Equal(t, a.Slides[i].Texts, b.Slides[i].Texts, "slide %d", i+1)
	}
}

func TestCashFlowSlideWithoutFigure(t *testing.T) {
	dir := t.TempDir()
	_, err := os.Stat(filepath.Join(dir, cashFlowFigure))
	require.True(t, os.IsNotExist(err))

	res := buildChain(t, dir, "proposal")
	outline, err := export.ReadOutline(res.path)
	require.NoError(t, err)

	cf := outline.Slides[3]
	assert.True(t, cf.Contains("現状分析1：キャッシュフロー悪化"), "texts: %v", cf.Texts)
}

func TestCollaborationNeedsTemplate(t *testing.T) {
	_, _, err := Collaboration.Write(Env{Template: filepath.Join(t.TempDir(), "missing.pptx")}, t.TempDir())
	require.Error(t, err)

	var be *BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "collaboration", be.Deck)
	assert.Equal(t, "open document", be.Step)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCollaborationWithoutTemplatePath(t *testing.T) {
	_, err := Collaboration.Build(Env{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTemplate)
	assert.Equal(t, "[collaboration.open document] failed to locate the proposal deck: no template path", err.Error())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("brochure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brochure")
}

func TestNamesFollowDependencies(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"proposal", "collaboration", "improved"}, names)

	for _, n := range names {
		d, err := Lookup(n)
		require.NoError(t, err)
		if d.Extends == "" {
			continue
		}
		base, err := Lookup(d.Extends)
		require.NoError(t, err)
		assert.Less(t, base.Series, d.Series, "%s must build after %s", n, d.Extends)
	}
}

func TestBuildErrorFormat(t *testing.T) {
	assert.NoError(t, WrapBuildError("proposal", "save", nil))
	assert.NoError(t, WrapOperationError("save", nil))

	base := errors.New("disk full")
	err := WrapBuildError("proposal", "save", WrapOperationError("write file", base))
	assert.Equal(t, "[proposal.save] failed to write file: disk full", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestAppendixTables(t *testing.T) {
	tables := AppendixTables()
	require.Len(t, tables, 4)
	for _, tbl := range tables {
		assert.NotEmpty(t, tbl.Name)
		assert.LessOrEqual(t, len([]rune(tbl.Name)), 31)
		for _, row := range tbl.Rows {
			if len(row) > 0 {
				assert.Len(t, row, len(tbl.Header), "table %s", tbl.Name)
			}
		}
	}
}

func TestRowsByName(t *testing.T) {
	rows := rowsByName(simulationTable, "営業CF", "", "物流コスト")
	require.Len(t, rows, 3)
	assert.Equal(t, "4,653百万円", rows[0][1])
	assert.Empty(t, rows[1])
	assert.Equal(t, "△3,000-4,000", rows[2][3])
}
