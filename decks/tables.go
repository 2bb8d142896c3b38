package decks

import "github.com/kasuya3/INT-YAMAE/export"

// Figures shared by the slides and the workbook appendix. An empty row is a
// visual spacer.

var profitabilityTable = export.Table{
	Name:   "収益性指標",
	Header: []string{"指標", "現状", "業界標準", "評価"},
	Rows: [][]string{
		{"売上高総利益率", "7.38%", "10-15%", "❌ 著しく低い"},
		{"売上高経常利益率", "1.73%", "3-5%", "❌ 大幅に低い"},
		{"流動比率", "91.06%", "150%以上", "❌ 低水準"},
	},
}

var roiTable = export.Table{
	Name:   "投資対効果",
	Header: []string{"ソリューション", "初期投資", "年間効果", "ROI"},
	Rows: [][]string{
		{"① 高度在庫管理", "220-280百万円", "330-470百万円", "0.5-0.8年"},
		{"② 統合物流PF", "350-430百万円", "330-450百万円", "0.8-1.3年"},
		{"③ 物流自動化", "400-550百万円", "210-320百万円", "1.3-2.6年"},
		{},
		{"合計", "970-1,260百万円", "870-1,240百万円", "1.1-1.4年"},
	},
}

var simulationTable = export.Table{
	Name:   "財務改善シミュレーション",
	Header: []string{"財務指標", "現状", "改善後", "改善幅"},
	Rows: [][]string{
		{"営業CF", "4,653百万円", "18,000-20,000", "+13,000-15,000"},
		{"CFマージン", "-3.12%", "3.5-4.0%", "+6.5-7.0pt"},
		{"物流コスト", "35,000百万円", "31,000-32,000", "△3,000-4,000"},
		{},
		{"総利益率", "7.38%", "9.0-10.0%", "+1.6-2.6pt"},
		{"経常利益率", "1.73%", "3.0-3.5%", "+1.3-1.8pt"},
		{"流動比率", "91.06%", "120-130%", "+29-39pt"},
	},
}

var investmentTable = export.Table{
	Name:   "段階的投資計画",
	Header: []string{"期間", "投資額", "効果創出", "ネットCF"},
	Rows: [][]string{
		{"1年目", "△500-600百万円", "+150-250百万円", "△300-400百万円"},
		{"2年目", "△400-500百万円", "+500-700百万円", "+50-200百万円"},
		{"3年目", "△100-150百万円", "+870-1,240百万円", "+720-1,090百万円"},
		{},
		{"累計", "△1,000-1,250", "+1,520-2,190", "+470-940百万円"},
	},
}

// AppendixTables lists the tables written to the workbook appendix.
func AppendixTables() []export.Table {
	return []export.Table{profitabilityTable, roiTable, simulationTable, investmentTable}
}

// tableLines renders a table as aligned text paragraphs. Rows whose first
// cell is in strong get the heading style; the header always does.
func tableLines(t export.Table, widths []int, head, body export.Style, strong ...string) []export.Para {
	isStrong := oneOf(strong...)
	out := []export.Para{para(export.PadColumns(widths, t.Header...), head)}
	for _, row := range t.Rows {
		if len(row) == 0 {
			out = append(out, para("", body))
			continue
		}
		st := body
		if isStrong(row[0]) {
			st = head
		}
		out = append(out, para(export.PadColumns(widths, row...), st))
	}
	return out
}
