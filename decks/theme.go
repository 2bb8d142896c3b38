package decks

import (
	"strings"

	"github.com/kasuya3/INT-YAMAE/export"
)

// 配色
var (
	colorPrimary = export.RGB(26, 84, 144)
	colorRed     = export.RGB(192, 57, 43)
	colorText    = export.RGB(52, 73, 94)
	colorGray    = export.RGB(127, 140, 141)
	colorAccent  = export.RGB(40, 116, 166)
	colorBgLight = export.RGB(245, 248, 252)
	colorBgPink  = export.RGB(252, 245, 245)
	colorGreen   = export.RGB(39, 174, 96)
	colorOrange  = export.RGB(230, 126, 34)
	colorWhite   = export.RGB(255, 255, 255)
)

func size(pt float64) export.Style {
	return export.Style{Size: pt}
}

func bold(pt float64, color string) export.Style {
	return export.Style{Size: pt, Bold: true, Color: color}
}

func para(text string, st export.Style) export.Para {
	return export.Para{Text: text, Style: st}
}

// styled turns literal lines into paragraphs: lines matched by isHead get
// head, the others get body.
func styled(body, head export.Style, isHead func(string) bool, lines ...string) []export.Para {
	out := make([]export.Para, 0, len(lines))
	for _, l := range lines {
		st := body
		if isHead(l) {
			st = head
		}
		out = append(out, para(l, st))
	}
	return out
}

func oneOf(set ...string) func(string) bool {
	return func(s string) bool {
		for _, v := range set {
			if s == v {
				return true
			}
		}
		return false
	}
}

func prefixed(prefixes ...string) func(string) bool {
	return func(s string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

func plain(st export.Style, lines ...string) []export.Para {
	return styled(st, st, func(string) bool { return false }, lines...)
}

func concat(groups ...[]export.Para) []export.Para {
	var out []export.Para
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// spaced puts pt points above every paragraph.
func spaced(pt float64, paras ...export.Para) []export.Para {
	out := make([]export.Para, len(paras))
	for i, p := range paras {
		p.SpaceBefore = pt
		out[i] = p
	}
	return out
}
