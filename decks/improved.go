package decks

import (
	"fmt"
	"strings"

	"github.com/kasuya3/INT-YAMAE/export"
)

// Improved is the redesigned visual deck: rounded cards, numbered circles,
// arrows and cell grids instead of bullet text.
var Improved = register(&Deck{
	Name:     "improved",
	FileName: "物流ソリューション提案書_ヤマエ久野_完全版v2.pptx",
	Title:    "物流システムソリューション提案書（完全版v2）",
	Message:  "PowerPointプレゼンテーション（改善版）を作成しました",
	Series:   3,
	slides: []slide{
		{"物流システムソリューション提案書", improvedTitle},
		{"目次", improvedAgenda},
		{"エグゼクティブサマリー", improvedSummary},
		dividerSlide("現状分析", 56),
		{"現状分析：財務指標から見た経営課題", improvedFinancials},
		{"根本原因：4つの物流課題", improvedIssues},
		dividerSlide("提案ソリューション", 56),
		{"提案ソリューション全体像", improvedSolutions},
		{"3つのソリューション詳細", improvedSolutionDetail},
		{"全体投資対効果サマリー", improvedROI},
		{"財務指標改善シミュレーション（3年後）", improvedSimulation},
		dividerSlide("実行計画", 56),
		{"実行ロードマップ（36ヶ月）", improvedRoadmap},
		{"期待効果まとめ", improvedBenefits},
		dividerSlide("協業プロジェクト計画", 56),
		{"協業アプローチ：テーマ別段階的実現", improvedApproach},
		themeCardSlide("10の重点テーマ（1/2）", 0),
		themeCardSlide("10の重点テーマ（2/2）", 5),
		{"プロジェクト全体タイムライン（36ヶ月）", improvedTimeline},
		{"標準活動プロセス（8ステップ）", improvedProcess},
		{"プロジェクト推進体制", improvedStructure},
		{"累積効果の推移", improvedEffects},
		{"成功の5つの鍵", improvedSuccess},
		{"次のステップ：プロジェクト開始まで", improvedNextSteps},
		{"ご清聴ありがとうございました", improvedThanks},
	},
})

var (
	colorPurple   = export.RGB(142, 68, 173)
	colorCellLine = export.RGB(200, 200, 200)
	colorBand     = export.RGB(240, 245, 250)
)

// cellLine is the default outline width of a table cell.
const cellLine = 0.75

// header writes the bold slide heading at the top left.
func header(c *export.Canvas, text string, pt float64) {
	c.Text(export.R(0.5, 0.3, 9, 0.5), para(text, bold(pt, colorPrimary)))
}

// bullets prefixes each line with a bullet point.
func bullets(st export.Style, lines ...string) []export.Para {
	out := make([]export.Para, 0, len(lines))
	for _, l := range lines {
		out = append(out, para("• "+l, st))
	}
	return out
}

// cells draws one table row starting at left. st picks the style of column i.
func cells(c *export.Canvas, left, top, height float64, widths []float64, row []string,
	fill, line string, linePt float64, st func(i int) export.Style) {
	for i, text := range row {
		c.Box(export.R(left, top, widths[i], height), fill, line, linePt, para(text, st(i).Centered()))
		left += widths[i]
	}
}

func same(st export.Style) func(int) export.Style {
	return func(int) export.Style { return st }
}

func improvedTitle(c *export.Canvas, _ Env) {
	c.Fill(export.R(0, 2, 10, 3.5), colorBand)
	c.Text(export.R(1, 2.5, 8, 1.2), para("物流システムソリューション提案書", bold(40, colorPrimary).Centered()))
	c.Text(export.R(1, 3.9, 8, 0.7), para("株式会社ヤマエ久野 御中", size(28).WithColor(colorText).Centered()))
	c.Text(export.R(1, 6.2, 8, 0.4), para("2026年2月", size(18).WithColor(colorGray).Centered()))
}

func improvedAgenda(c *export.Canvas, _ Env) {
	c.Text(export.R(0.5, 0.4, 9, 0.6), para("目次", bold(36, colorPrimary)))

	items := []string{
		"エグゼクティブサマリー",
		"現状分析：財務指標から見た経営課題",
		"提案ソリューション全体像",
		"投資対効果・財務改善シミュレーション",
		"実行ロードマップ",
		"協業プロジェクト計画",
		"期待効果まとめ",
	}
	top := 1.5
	for i, item := range items {
		c.Badge(export.R(1.0, top-0.05, 0.35, 0.35), colorPrimary, fmt.Sprint(i+1), bold(16, colorWhite))
		c.Text(export.R(1.5, top, 7, 0.4), para(item, size(18).WithColor(colorText)))
		top += 0.7
	}
}

func improvedSummary(c *export.Canvas, _ Env) {
	header(c, "エグゼクティブサマリー", 32)

	c.Card(export.R(0.5, 1.0, 4.5, 2.3), export.RGB(252, 240, 240), colorRed, 2, concat(
		[]export.Para{para("■ 経営課題", bold(18, colorRed).After(8))},
		plain(size(13).Before(3),
			"• CFマージン -3.12%",
			"• 経常利益率 1.73%（低い）",
			"• 流動比率 91.06%（低い）",
			"• 在庫14,000百万円（過剰）",
			"• 物流コスト推定35,000百万円",
		),
	)...)

	c.Card(export.R(5.2, 1.0, 4.5, 2.3), export.RGB(240, 248, 255), colorPrimary, 2,
		para("■ 提案ソリューション", bold(18, colorPrimary).After(8)),
		para("① 高度在庫管理システム", size(13).Strong().Before(3)),
		para("② 統合物流プラットフォーム", size(13).Strong().Before(3)),
		para("③ 物流自動化・最適化", size(13).Strong().Before(3)),
		para("", size(13).Before(3)),
		para("3つの統合ソリューション", size(13).Before(3)),
	)

	c.Card(export.R(0.5, 3.5, 9, 3.5), export.RGB(245, 252, 245), colorGreen, 2, concat(
		[]export.Para{para("■ 投資対効果", bold(20, colorGreen).After(12))},
		styled(size(14).Before(4), size(16).Strong().Before(8), prefixed("【"),
			"【投資額】             【年間効果】           【投資回収期間】",
			"970-1,260百万円      870-1,240百万円       約1.1-1.4年",
			"",
			"【財務改善目標】",
			"• 営業CFマージン：-3.12% → 3.5-4.0%（+6.5-7.0pt）",
			"• 経常利益率：1.73% → 3.0-3.5%（+1.3-1.8pt）",
			"• 総利益率：7.38% → 9.0-10.0%（+1.6-2.6pt）",
			"• 流動比率：91.06% → 120-130%（+29-39pt）",
		),
	)...)
}

// figure reports whether a line carries a figure worth highlighting.
func figure(s string) bool {
	if strings.ContainsAny(s, "-△%→") {
		return true
	}
	return strings.ContainsAny(s, "0123456789")
}

func improvedFinancials(c *export.Canvas, _ Env) {
	header(c, "現状分析：財務指標から見た経営課題", 30)

	boxes := []struct {
		title      string
		fill, line string
		lines      []string
	}{
		{"キャッシュフロー悪化", export.RGB(252, 240, 240), colorRed, []string{
			"現金残高", "5,811→2,767百万円", "", "営業CFマージン", "-3.12%", "", "棚卸資産増減", "△1,429百万円",
		}},
		{"収益性の低迷", export.RGB(255, 245, 235), colorOrange, []string{
			"総利益率", "7.38%（低い）", "", "経常利益率", "1.73%（低い）", "", "物流コスト", "推定7-9%",
		}},
		{"財務健全性の問題", export.RGB(245, 240, 252), colorPurple, []string{
			"流動比率", "91.06%（低い）", "", "在庫", "14,000百万円", "", "回転日数", "業界+7-10日長い",
		}},
	}
	for i, b := range boxes {
		paras := []export.Para{para(b.title, bold(16, b.line).Centered().After(15))}
		paras = append(paras, ruled(func(l string) export.Style {
			switch {
			case l == "":
				return size(13).Before(4)
			case figure(l):
				return bold(15, colorRed).Centered().Before(4)
			default:
				return size(13).Strong().Centered().Before(4)
			}
		}, b.lines...)...)
		c.Card(export.R(0.5+float64(i)*3.15, 1.2, 3, 5.5), b.fill, b.line, 2, paras...)
	}
}

func improvedIssues(c *export.Canvas, _ Env) {
	header(c, "根本原因：4つの物流課題", 32)

	issues := []struct {
		left, top             float64
		title, detail, effect string
	}{
		{0.5, 1.2, "在庫管理の非効率", "在庫14,000百万円、回転日数+7-10日、予測システム未導入", "運転資金圧迫、CF悪化"},
		{5.2, 1.2, "物流コストの増大", "推定35,000百万円（7-9%）、配送非効率、積載率65-70%", "経常利益率1.73%を圧迫"},
		{0.5, 4.2, "オペレーション非効率", "紙伝票、ミス率1-2%、生産性70-80%、属人化", "固定費高止まり、品質問題"},
		{5.2, 4.2, "収益性・財務健全性", "総利益率7.38%、流動比率91.06%、調達コスト高", "競争力低下、財務リスク"},
	}
	for i, is := range issues {
		c.Card(export.R(is.left, is.top, 4.3, 2.6), colorBgLight, colorRed, 2,
			para(fmt.Sprintf("課題%d：%s", i+1, is.title), bold(15, colorRed).After(8)),
			para(is.detail, size(12).Before(4)),
			para("→ "+is.effect, bold(12, colorPrimary).Before(8)),
		)
	}
}

// solution is one of the three proposed systems.
type solution struct {
	name, subtitle      string
	invest, effect, roi string
	target              string
	short, functions    string
	results             string
}

var solutions = []solution{
	{
		name: "① 高度在庫管理システム", subtitle: "AI需要予測 × IMS × VMI",
		invest: "220-280百万円", effect: "330-470百万円/年", roi: "0.5-0.8年",
		target:  "CFマージン・流動比率改善",
		short:   "① 高度在庫管理", functions: "AI需要予測、IMS、VMI、適正在庫算出",
		results: "在庫削減1,000-2,000百万円、回転日数7-10日短縮",
	},
	{
		name: "② 統合物流プラットフォーム", subtitle: "TMS × SCM × リアルタイム可視化",
		invest: "350-430百万円", effect: "330-450百万円/年", roi: "0.8-1.3年",
		target:  "物流コスト削減・経常利益率改善",
		short:   "② 統合物流PF", functions: "TMS配送最適化、SCM可視化、IoT追跡",
		results: "配送コスト15-20%削減、積載率80-85%",
	},
	{
		name: "③ 物流自動化・最適化", subtitle: "次世代WMS × 倉庫自動化 × モーダルシフト",
		invest: "400-550百万円", effect: "210-320百万円/年", roi: "1.3-2.6年",
		target:  "固定費削減・生産性向上",
		short:   "③ 物流自動化", functions: "次世代WMS、AGV、デジタルピッキング",
		results: "生産性30-40%向上、人件費20-30%削減",
	},
}

func improvedSolutions(c *export.Canvas, _ Env) {
	header(c, "提案ソリューション全体像", 32)
	c.Text(export.R(0.8, 1.0, 8.4, 0.5),
		para("3つの統合ソリューションで、在庫・物流コスト・オペレーション効率を抜本的に改善", bold(16, colorAccent).Centered()))

	top := 1.8
	for _, s := range solutions {
		c.Card(export.R(0.5, top, 9, 1.6), colorBgLight, colorPrimary, 2,
			para(s.name, bold(18, colorRed).After(4)),
			para(s.subtitle, export.Style{Size: 13, Italic: true, SpaceBefore: 2}),
			para(fmt.Sprintf("投資：%s  |  効果：%s  |  ROI：%s", s.invest, s.effect, s.roi), bold(13, colorGreen).Before(8)),
			para("→ "+s.target, size(13).WithColor(colorPrimary).Before(4)),
		)
		top += 1.75
	}
}

func improvedSolutionDetail(c *export.Canvas, _ Env) {
	c.Text(export.R(0.5, 0.3, 9, 0.4), para("3つのソリューション詳細", bold(28, colorPrimary)))

	top := 0.9
	for _, s := range solutions {
		c.Card(export.R(0.5, top, 9, 1.9), colorBgLight, colorPrimary, 1.5,
			para(s.short, bold(16, colorRed).After(6)),
			para("機能："+s.functions, size(13).Before(3)),
			para("効果："+s.results, bold(13, colorGreen).Before(5)),
		)
		top += 2.05
	}
}

func improvedROI(c *export.Canvas, _ Env) {
	header(c, "全体投資対効果サマリー", 32)

	widths := []float64{2.5, 2, 2, 1.5}
	top := 1.5
	cells(c, 0.8, top, 0.5, widths, roiTable.Header, colorPrimary, colorWhite, cellLine, same(bold(14, colorWhite)))
	top += 0.5
	for _, row := range roiTable.Rows {
		switch {
		case len(row) == 0:
			continue
		case row[0] == "合計":
			cells(c, 0.8, top, 0.5, widths, row, export.RGB(255, 250, 230), colorRed, 2, same(bold(14, colorRed)))
		default:
			cells(c, 0.8, top, 0.5, widths, row, colorBgLight, colorCellLine, cellLine, same(size(13)))
		}
		top += 0.5
	}

	c.Text(export.R(1, 4.5, 8, 2), concat(
		[]export.Para{para("■ 投資回収のポイント", bold(20, colorGreen).After(10))},
		plain(size(16).Strong().Before(6),
			"✓ Year 2後半には投資回収完了",
			"✓ Year 3以降はフルベネフィット創出",
			"✓ 早期のクイックウィンで投資の正当性を実証",
			"✓ 段階的投資でリスクを最小化",
		),
	)...)
}

// rowsByName picks rows of t by their first cell; an empty name yields a
// spacer row.
func rowsByName(t export.Table, names ...string) [][]string {
	index := make(map[string][]string, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) > 0 {
			index[row[0]] = row
		}
	}
	out := make([][]string, 0, len(names))
	for _, n := range names {
		out = append(out, index[n])
	}
	return out
}

func improvedSimulation(c *export.Canvas, _ Env) {
	header(c, "財務指標改善シミュレーション（3年後）", 30)

	widths := []float64{2.2, 1.8, 1.8, 1.8}
	top := 1.3
	cells(c, 1.2, top, 0.45, widths, simulationTable.Header, colorPrimary, colorWhite, cellLine, same(bold(13, colorWhite)))
	top += 0.45

	rows := rowsByName(simulationTable, "営業CF", "CFマージン", "", "総利益率", "経常利益率", "流動比率", "", "物流コスト")
	for _, row := range rows {
		if len(row) == 0 {
			top += 0.15
			continue
		}
		cells(c, 1.2, top, 0.42, widths, row, colorBgLight, colorCellLine, cellLine, func(i int) export.Style {
			if i == 3 {
				return bold(12, colorRed)
			}
			return size(12)
		})
		top += 0.42
	}
}

// phase is one stage of the 36-month plan.
type phase struct {
	title, period string
	lines         []string
	effect        string
	fill          string
}

func improvedRoadmap(c *export.Canvas, _ Env) {
	header(c, "実行ロードマップ（36ヶ月）", 32)

	phases := []phase{
		{"Phase 1：基盤構築・クイックウィン", "Month 0-6",
			[]string{"在庫可視化、倉庫改善（1拠点）", "物流コスト可視化", "早期成果創出"},
			"150-300百万円/年", export.RGB(255, 240, 240)},
		{"Phase 2：コアシステム導入・展開", "Month 6-18",
			[]string{"需要予測、適正在庫基準", "配送最適化、VMI/IoTパイロット", "システム選定・要件定義"},
			"500-700百万円/年", export.RGB(255, 250, 230)},
		{"Phase 3：全社展開・定着化", "Month 18-36",
			[]string{"システム本格稼働（WMS/TMS）", "全拠点展開、VMI/IoT拡大", "自走体制確立"},
			"870-1,240百万円/年", export.RGB(240, 255, 240)},
	}
	top := 1.2
	for _, p := range phases {
		c.Card(export.R(0.5, top, 9, 1.9), p.fill, colorPrimary, 2, concat(
			[]export.Para{para(fmt.Sprintf("%s　（%s）", p.title, p.period), bold(17, colorPrimary).After(8))},
			bullets(size(13).Before(4), p.lines...),
			[]export.Para{para("期待効果："+p.effect, bold(14, colorRed).Before(10))},
		)...)
		top += 2.05
	}
}

func improvedBenefits(c *export.Canvas, _ Env) {
	header(c, "期待効果まとめ", 36)

	columns := []struct {
		title string
		fill  string
		items []string
	}{
		{"財務指標の改善", export.RGB(240, 255, 240), []string{
			"CFマージン：-3.12% → 3.5-4.0%",
			"経常利益率：1.73% → 3.0-3.5%",
			"総利益率：7.38% → 9.0-10.0%",
			"流動比率：91.06% → 120-130%",
		}},
		{"業務改善効果", export.RGB(240, 248, 255), []string{
			"在庫削減：1,000-2,000百万円",
			"物流コスト削減：3,000-4,000百万円/年",
			"運転資金解放：5-7億円",
			"倉庫生産性向上：30-40%",
		}},
		{"経営基盤の強化", export.RGB(255, 250, 240), []string{
			"データドリブン経営の実現",
			"SCMの可視化・最適化",
			"競争力強化",
			"事業成長の基盤構築",
		}},
	}
	for i, col := range columns {
		c.Card(export.R(0.5+float64(i)*3.15, 1.2, 3, 5.8), col.fill, colorPrimary, 2, concat(
			[]export.Para{para(col.title, bold(16, colorPrimary).Centered().After(12))},
			bullets(size(12).Before(8), col.items...),
		)...)
	}
}

func improvedApproach(c *export.Canvas, _ Env) {
	header(c, "協業アプローチ：テーマ別段階的実現", 30)

	lead := bold(15, colorPrimary).Centered()
	c.Card(export.R(0.5, 0.95, 9, 0.65), export.RGB(230, 240, 250), colorPrimary, 2,
		para("現場実務に深く入り込み、テーマ別に段階的に成果を創出。", lead),
		para("クイックウィンで早期効果を実証し、確実に物流改革を実現します。", lead),
	)

	c.Card(export.R(0.5, 1.85, 4.3, 4.9), colorBgLight, colorPrimary, 1.5, concat(
		[]export.Para{para("■ 基本方針", bold(18, colorPrimary).After(8))},
		plain(bold(13, colorRed).Before(10),
			"✓ テーマ別プロジェクトで段階的に成果創出",
			"✓ 現場実務に深く入り込み、実態を理解",
			"✓ クイックウィンで早期効果を実証",
			"✓ パイロット→検証→横展開",
			"✓ 貴社メンバーと協働、ノウハウ移転",
		),
	)...)

	years := [][3]string{
		{"Year 1（Month 1-6）", "現状可視化、クイックウィン", "150-300百万円/年"},
		{"Year 2（Month 7-18）", "基盤構築、パイロット実施", "500-700百万円/年"},
		{"Year 3（Month 19-36）", "全社展開、自走体制確立", "870-1,240百万円/年"},
	}
	paras := []export.Para{para("■ プロジェクト期間：36ヶ月", bold(18, colorRed).After(10))}
	for _, y := range years {
		paras = append(paras,
			para(y[0], bold(15, colorPrimary).Before(10)),
			para(y[1], size(12).Before(3)),
			para("効果："+y[2], bold(12, colorRed).Before(3)),
		)
	}
	c.Card(export.R(5.2, 1.85, 4.3, 4.9), colorBgPink, colorRed, 1.5, paras...)
}

var themes = [][2]string{
	{"在庫可視化", "滞留在庫特定、即時削減200-500百万円"},
	{"需要予測向上", "誤差±15%→±5-8%、在庫削減300-600百万円"},
	{"適正在庫基準", "回転日数7-10日短縮、在庫削減800-1,500百万円"},
	{"配送最適化", "配送コスト15-20%削減、500-800百万円/年"},
	{"倉庫改善", "生産性20-30%向上、人件費50-100百万円削減"},
	{"物流コスト可視化", "コスト構造把握、改善ターゲット特定"},
	{"VMIパイロット", "在庫20-30%削減、欠品率50%削減"},
	{"IoT・デジタル化", "リアルタイム可視化、配送効率化"},
	{"人材育成", "スキル向上、多能工化、属人化解消"},
	{"KPIダッシュボード", "経営可視化、データドリブン経営実現"},
}

// themeCardSlide shows five themes starting at first.
func themeCardSlide(title string, first int) slide {
	return slide{title: title, draw: func(c *export.Canvas, _ Env) {
		header(c, title, 30)
		top := 1.1
		for i := first; i < first+5 && i < len(themes); i++ {
			c.Card(export.R(0.5, top, 9, 1.15), colorBgLight, colorPrimary, 1.5,
				para(fmt.Sprintf("テーマ%d：%s", i+1, themes[i][0]), bold(16, colorRed).After(6)),
				para("効果："+themes[i][1], size(13).Before(3)),
			)
			top += 1.25
		}
	}}
}

func improvedTimeline(c *export.Canvas, _ Env) {
	header(c, "プロジェクト全体タイムライン（36ヶ月）", 28)

	phases := []phase{
		{"Phase 1：現状分析・クイックウィン", "Month 0-6",
			[]string{"在庫可視化、倉庫改善、早期成果創出"}, "150-300百万円/年", export.RGB(255, 235, 235)},
		{"Phase 2：基盤構築・パイロット", "Month 6-18",
			[]string{"需要予測、配送最適化、VMI/IoT、システム選定"}, "500-700百万円/年", export.RGB(255, 248, 220)},
		{"Phase 3：全社展開・定着化", "Month 18-36",
			[]string{"システム導入、全拠点展開、自走体制確立"}, "870-1,240百万円/年", export.RGB(235, 255, 235)},
	}
	top := 1.2
	for _, p := range phases {
		c.Card(export.R(0.5, top, 9, 1.8), p.fill, colorPrimary, 2, concat(
			[]export.Para{para(fmt.Sprintf("%s　（%s）", p.title, p.period), bold(16, colorPrimary).After(8))},
			plain(size(13).Before(4), p.lines...),
			[]export.Para{para("累計効果："+p.effect, bold(14, colorRed).Before(8))},
		)...)
		top += 1.95
	}
}

func improvedProcess(c *export.Canvas, _ Env) {
	header(c, "標準活動プロセス（8ステップ）", 30)

	steps := []string{
		"1. キックオフ・計画",
		"2. 現状調査・データ収集",
		"3. 分析・課題整理",
		"4. 改善案設計",
		"5. 【意思決定】承認",
		"6. パイロット実施",
		"7. 【Go/No Go】判断",
		"8. 横展開・定着化",
	}
	xs := []float64{0.6, 2.75, 4.9, 7.05}
	ys := []float64{1.2, 4.0}
	for i, step := range steps {
		x, y := xs[i%4], ys[i/4]

		fill, line, linePt, color := colorBgLight, colorPrimary, 1.5, colorPrimary
		if strings.Contains(step, "【") {
			fill, line, linePt, color = export.RGB(255, 240, 240), colorRed, 3, colorRed
		}
		c.Card(export.R(x, y, 1.9, 2.5), fill, line, linePt)
		c.Text(export.R(x, y+0.8, 1.9, 1.7), para(step, bold(13, color).Centered()))

		if i%4 < 3 {
			c.Arrow(export.R(x+1.9, y+1.25-0.15, 0.25, 0.3), export.Right, colorPrimary)
		}
	}
}

func improvedStructure(c *export.Canvas, _ Env) {
	header(c, "プロジェクト推進体制", 32)

	layers := []struct {
		title, role, members string
		fill                 string
		height               float64
	}{
		{"ステアリングコミッティ（月1回）", "重要意思決定、進捗確認", "社長、役員、PMO",
			export.RGB(255, 230, 230), 1.3},
		{"プロジェクトマネジメントオフィス（週1回）", "全体統括、進捗管理、課題管理", "プロジェクトリーダー、各テーマリーダー",
			export.RGB(255, 245, 220), 1.5},
		{"テーマ別ワーキンググループ（週1-2回）", "テーマ別の詳細検討・実行（10チーム）", "現場責任者・実務担当者、コンサルタント",
			export.RGB(240, 255, 240), 1.8},
	}
	top := 1.2
	for _, l := range layers {
		c.Card(export.R(1, top, 8, l.height), l.fill, colorPrimary, 2,
			para(l.title, bold(16, colorPrimary).Centered().After(6)),
			para("役割："+l.role, size(13).Before(4)),
			para("メンバー："+l.members, size(13).Before(4)),
		)
		top += l.height + 0.2
		if top < 6.5 {
			c.Arrow(export.R(4.75, top-0.15, 0.5, 0.2), export.Down, colorPrimary)
		}
	}
}

func improvedEffects(c *export.Canvas, _ Env) {
	header(c, "累積効果の推移", 32)

	years := []struct {
		year, phase string
		effects     []string
		total, cf   string
		fill        string
	}{
		{"Year 1", "クイックウィン創出期", []string{
			"在庫削減：200-500百万円",
			"倉庫改善：30-50百万円/年",
			"配送改善：50-100百万円/年",
		}, "150-300百万円/年", "CF：△50-100百万円", export.RGB(255, 240, 240)},
		{"Year 2", "本格展開開始期", []string{
			"需要予測・適正在庫：+400-700百万円",
			"配送最適化：+200-300百万円/年",
			"VMI/倉庫展開：+150-250百万円/年",
		}, "500-700百万円/年", "CF：+50-200百万円（回収開始）", export.RGB(255, 248, 220)},
		{"Year 3", "フル効果達成期", []string{
			"システム稼働：+200-300百万円/年",
			"全拠点展開：+100-150百万円/年",
			"VMI/IoT拡大：+70-150百万円/年",
		}, "870-1,240百万円/年", "CF：+720-1,090百万円", export.RGB(235, 255, 235)},
	}
	top := 1.1
	for _, y := range years {
		c.Card(export.R(0.5, top, 9, 1.9), y.fill, colorPrimary, 2, concat(
			[]export.Para{para(y.year+"："+y.phase, bold(16, colorPrimary).After(6))},
			bullets(size(12).Before(2), y.effects...),
			[]export.Para{para(fmt.Sprintf("累計効果：%s　%s", y.total, y.cf), bold(13, colorRed).Before(8))},
		)...)
		top += 2.05
	}
}

func improvedSuccess(c *export.Canvas, _ Env) {
	header(c, "成功の5つの鍵", 36)

	factors := [][2]string{
		{"経営層の強いコミットメント", "トップダウン推進、明確な目標、リソース確保"},
		{"現場を巻き込んだ推進", "現場の声を反映、早期成果で実感創出"},
		{"データドリブンの徹底", "事実に基づく課題把握、定量効果測定"},
		{"クイックウィンの創出", "早期成果実証、組織の信頼獲得"},
		{"人材育成とノウハウ移転", "貴社メンバー成長、内製化、自走体制"},
	}
	top := 1.2
	for i, f := range factors {
		c.Badge(export.R(0.7, top+0.25, 0.5, 0.5), colorRed, fmt.Sprint(i+1), bold(24, colorWhite))
		c.Card(export.R(1.4, top, 8.1, 1.0), colorBgLight, colorPrimary, 1.5,
			para(f[0], bold(16, colorPrimary).After(4)),
			para(f[1], size(13).Before(2)),
		)
		top += 1.15
	}
}

func improvedNextSteps(c *export.Canvas, _ Env) {
	header(c, "次のステップ：プロジェクト開始まで", 28)

	steps := []struct {
		num, title, period string
		details            []string
		output             string
	}{
		{"Step 1", "詳細ヒアリング・現地視察", "2-3週間",
			[]string{"経営層・物流部門ヒアリング", "拠点視察（2-3拠点）", "データ確認・収集"},
			"詳細現状分析、優先テーマ案、詳細計画"},
		{"Step 2", "提案プレゼンテーション", "1週間",
			[]string{"詳細計画のご説明", "期待効果の精緻化", "体制・役割分担の確認"},
			"最終提案書、契約条件合意"},
		{"Step 3", "キックオフ", "1週間",
			[]string{"キックオフミーティング", "プロジェクト体制発足", "活動開始"},
			"プロジェクト始動"},
	}
	top := 1.2
	for _, s := range steps {
		c.Card(export.R(0.5, top, 9, 1.85), colorBgLight, colorPrimary, 2, concat(
			[]export.Para{para(fmt.Sprintf("%s：%s　（%s）", s.num, s.title, s.period), bold(16, colorPrimary).After(6))},
			bullets(size(13).Before(3), s.details...),
			[]export.Para{para("成果物："+s.output, bold(13, colorRed).Before(8))},
		)...)
		top += 2.0
	}
}

func improvedThanks(c *export.Canvas, _ Env) {
	c.Fill(export.R(0, 2.5, 10, 2.5), colorBand)
	c.Text(export.R(1, 3, 8, 1.2), para("ご清聴ありがとうございました", bold(40, colorPrimary).Centered()))
	c.Text(export.R(1, 4.4, 8, 0.6), para("ご質問・ご相談はお気軽にお申し付けください", size(20).WithColor(colorText).Centered()))
}
