package decks

import "github.com/kasuya3/INT-YAMAE/export"

// TDB report figure shown on the cash-flow slide when present.
const cashFlowFigure = "企業情報/tdb_page-43.png"

// Proposal is the basic 25-slide proposal deck.
var Proposal = register(&Deck{
	Name:     "proposal",
	FileName: "物流ソリューション提案書_ヤマエ久野.pptx",
	Title:    "物流システムソリューション提案書",
	Message:  "PowerPointプレゼンテーションを作成しました: 物流ソリューション提案書_ヤマエ久野.pptx",
	Series:   1,
	slides: []slide{
		{"物流システムソリューション提案書", proposalTitle},
		contentSlide("目次", proposalAgenda()...),
		contentSlide("エグゼクティブサマリー", proposalSummary()...),
		{"現状分析1：キャッシュフロー悪化", proposalCashFlow},
		contentSlide("現状分析2：収益性指標の著しい低迷", proposalProfitability()...),
		contentSlide("現状分析3：物流起因の財務悪化構造", proposalStructure()...),
		contentSlide("課題1：在庫管理の非効率", proposalIssue1()...),
		contentSlide("課題2：物流コストの増大", proposalIssue2()...),
		contentSlide("課題3：倉庫・配送オペレーション非効率", proposalIssue3()...),
		contentSlide("課題4：収益性・財務健全性の低迷", proposalIssue4()...),
		contentSlide("提案ソリューション全体像", proposalSolutions()...),
		contentSlide("ソリューション① 高度在庫管理システム", solutionDetail("主要機能",
			"主要機能",
			"• AI需要予測システム（機械学習・需要変動分析）",
			"• IMS統合在庫管理（リアルタイム可視化）",
			"• VMI（ベンダー管理在庫）導入",
			"• 適正在庫自動算出",
			"",
			"導入効果",
			"• 在庫削減：1,000-2,000百万円",
			"• 在庫回転日数：7-10日短縮",
			"• 欠品率：50%削減",
			"• 予測精度：±15% → ±5%",
			"",
			"投資対効果",
			"• 初期投資：220-280百万円",
			"• 年間効果：330-470百万円",
			"• ROI：0.5-0.8年",
		)...),
		contentSlide("ソリューション② 統合物流プラットフォーム", solutionDetail("主要機能",
			"主要機能",
			"• TMS（配送ルート最適化・動的配車）",
			"• SCM可視化（サプライチェーン全体）",
			"• IoT活用（車両・貨物追跡）",
			"• KPI自動集計・分析",
			"",
			"導入効果",
			"• 配送コスト：15-20%削減",
			"• 積載効率：65-70% → 80-85%",
			"• リードタイム：20-30%短縮",
			"• 配車計画時間：80%削減",
			"",
			"投資対効果",
			"• 初期投資：350-430百万円",
			"• 年間効果：330-450百万円",
			"• ROI：0.8-1.3年",
		)...),
		contentSlide("ソリューション③ 物流自動化・最適化", solutionDetail("主要機能・設備",
			"主要機能・設備",
			"• 次世代WMS（ピッキング最適化）",
			"• AGV（無人搬送車）・自動仕分け機",
			"• デジタルピッキングシステム",
			"• 共同物流・モーダルシフト",
			"",
			"導入効果",
			"• ピッキング生産性：30-40%向上",
			"• 倉庫人件費：20-30%削減（80-120百万円）",
			"• 作業ミス率：1-2% → 0.2%以下",
			"• 長距離輸送コスト：10-15%削減",
			"",
			"投資対効果",
			"• 初期投資：400-550百万円",
			"• 年間効果：210-320百万円",
			"• ROI：1.3-2.6年",
		)...),
		contentSlide("全体投資対効果サマリー", proposalROI()...),
		contentSlide("財務指標改善シミュレーション", proposalSimulation()...),
		contentSlide("収益性改善の内訳①：総利益率", proposalGrossMargin()...),
		contentSlide("収益性改善の内訳②：経常利益率・流動比率", proposalOrdinaryMargin()...),
		contentSlide("段階的投資計画とCF影響", proposalInvestment()...),
		contentSlide("実行ロードマップ：フェーズ1（0-6ヶ月）", roadmapPhase("目標：基盤構築とクイックウィン",
			"実施内容",
			"1. 物流実態調査（現場ヒアリング・データ分析）",
			"2. 在庫分析システム導入（AI需要予測準備）",
			"3. TMS基本機能導入開始（配送最適化）",
			"4. パイロット拠点選定（1-2拠点）",
			"",
			"投資額：150-200百万円",
			"期待効果：年間100-150百万円",
			"",
			"主要KPI",
			"• 在庫精度向上：誤差率 3% → 1%以下",
			"• 配送コスト削減：5%削減",
		)...),
		contentSlide("実行ロードマップ：フェーズ2（6-18ヶ月）", roadmapPhase("目標：コアシステム導入と展開",
			"実施内容",
			"1. AI需要予測システム本格稼働",
			"2. 統合物流プラットフォーム導入",
			"3. WMS高度化と倉庫自動化設備導入",
			"4. サプライチェーン可視化の実現",
			"",
			"投資額：600-750百万円（累計750-950百万円）",
			"期待効果：年間500-700百万円",
			"",
			"主要KPI",
			"• 在庫回転日数：7日短縮",
			"• 物流コスト率：1.5%削減",
			"• 倉庫生産性：20%向上",
		)...),
		contentSlide("実行ロードマップ：フェーズ3（18-36ヶ月）", roadmapPhase("目標：全社展開と最適化",
			"実施内容",
			"1. 全拠点へのシステム展開完了",
			"2. 倉庫自動化の拡大展開",
			"3. 継続的改善活動（PDCA）",
			"4. 新技術導入検討（AI高度化等）",
			"",
			"投資額：200-250百万円（累計950-1,200百万円）",
			"期待効果：年間870-1,240百万円（フル効果）",
			"",
			"主要KPI",
			"• 在庫回転日数：さらに3-5日短縮",
			"• 物流コスト率：売上比6%以下",
			"• 倉庫生産性：業界トップ水準達成",
			"• 経常利益率：3.0-3.5%達成",
		)...),
		contentSlide("期待効果まとめ", proposalBenefits()...),
		contentSlide("次のステップ", proposalNextSteps()...),
		{"ご清聴ありがとうございました", proposalThanks},
	},
})

// contentSlide is a title-and-content slide.
func contentSlide(title string, body ...export.Para) slide {
	return slide{title: title, draw: func(c *export.Canvas, _ Env) {
		c.Title(title)
		c.Body(body...)
	}}
}

func proposalTitle(c *export.Canvas, _ Env) {
	c.Text(export.R(1, 2.5, 8, 1.5), para("物流システムソリューション提案書", bold(44, colorPrimary).Centered()))
	c.Text(export.R(1, 4, 8, 0.8), para("株式会社ヤマエ久野 御中", export.Style{Size: 28, Color: colorText, Align: export.AlignCenter}))
	c.Text(export.R(1, 6, 8, 0.5), para("2026年2月", export.Style{Size: 18, Color: colorGray, Align: export.AlignCenter}))
}

func proposalAgenda() []export.Para {
	return plain(size(20),
		"1. エグゼクティブサマリー",
		"2. 現状分析：財務指標から見た経営課題",
		"3. 根本原因：物流課題の詳細分析",
		"4. 提案ソリューション全体像",
		"5. 各ソリューション詳細",
		"6. 投資対効果・財務改善シミュレーション",
		"7. 実行ロードマップ",
		"8. 期待効果まとめ",
	)
}

func proposalSummary() []export.Para {
	return concat(
		[]export.Para{para("経営課題と提案", bold(24, colorRed))},
		plain(size(16),
			"キャッシュフロー悪化：営業CFマージン -3.12%",
			"収益性の低迷：経常利益率 1.73%、総利益率 7.38%",
			"財務健全性の問題：流動比率 91.06%",
			"根本原因：在庫14,000百万円、物流コスト推定35,000百万円",
			"",
			"提案：3つの物流システムソリューション",
			"投資額：970-1,260百万円",
			"年間効果：870-1,240百万円",
			"投資回収：約1.1-1.4年",
			"経常利益率改善：1.73% → 3.0-3.5%",
		),
	)
}

func proposalCashFlow(c *export.Canvas, env Env) {
	c.Title("現状分析1：キャッシュフロー悪化")

	// the figure is optional, the commentary stands on its own
	c.Picture(env.asset(cashFlowFigure), 0.5, 1.8, 4.5)

	c.Text(export.R(6, 1.8, 3.5, 4.5), concat(
		[]export.Para{para("重要な示唆", bold(18, colorRed))},
		plain(size(14),
			"期首現金残高の減少",
			"5,811→2,767百万円",
			"",
			"営業CFの激しい変動",
			"150億円レベルの変動",
			"",
			"営業CFマージン",
			"-3.12%（マイナス）",
			"",
			"主因：棚卸資産増減",
			"△1,429百万円",
		),
	)...)
}

func proposalProfitability() []export.Para {
	return concat(
		[]export.Para{para("業界標準との比較", bold(20, ""))},
		tableLines(profitabilityTable, []int{18, 10, 12}, bold(16, ""), size(15)),
		[]export.Para{
			para("", size(15)),
			para("根本原因：", bold(18, colorRed)),
		},
		plain(size(16),
			"調達・物流コストの高さ → 総利益率7.38%",
			"物流コスト推定7-9% → 経常利益率1.73%",
			"在庫14,000百万円 → 流動比率91.06%",
		),
	)
}

func proposalStructure() []export.Para {
	return styled(size(15), bold(18, colorRed), prefixed("①", "②", "③"),
		"物流課題",
		"  ↓",
		"① 在庫管理の非効率",
		"  → 在庫14,000百万円（過剰・長期滞留）",
		"  → 棚卸資産増減 △1,429百万円",
		"  → 営業CFマージン -3.12%",
		"  → 流動比率 91.06%",
		"",
		"② 物流コストの増大",
		"  → 推定35,000百万円（売上比7-9%）",
		"  → 経常利益率 1.73%",
		"",
		"③ 調達・在庫ロスの発生",
		"  → FIFO管理不徹底、品質劣化",
		"  → 総利益率 7.38%",
	)
}

var problemsHeading = para("現状の問題点", bold(22, colorRed))

func proposalIssue1() []export.Para {
	return concat(
		[]export.Para{problemsHeading},
		styled(size(15), bold(20, ""), prefixed("財務インパクト"),
			"在庫水準：約14,000百万円（運転資金の圧迫）",
			"棚卸資産増減：△1,429百万円（令和7年度）",
			"需要予測精度：属人的な発注、予測システム未導入",
			"在庫回転：業界標準より7-10日長い",
			"適正在庫不明：SKU別の需要変動分析なし",
			"",
			"財務インパクト",
			"• 営業CFマージン -3.12%の主因",
			"• 運転資金14,000百万円の固定化",
			"• 在庫ロス・陳腐化による損失発生",
			"• 保管コスト・管理コストの増大",
		),
	)
}

func proposalIssue2() []export.Para {
	return concat(
		[]export.Para{problemsHeading},
		styled(size(15), bold(19, ""), prefixed("非効率の要因", "財務インパクト"),
			"推定物流コスト：35,000百万円（売上比7-9%）",
			"※効率的企業は売上比5-6%程度",
			"",
			"非効率の要因",
			"• 配送ルート最適化なし（手作業配車）",
			"• 積載効率：推定65-70%（最適80-85%）",
			"• 配送頻度・リードタイム最適化なし",
			"• 共同配送・モーダルシフト未実施",
			"",
			"財務インパクト",
			"• 経常利益率1.73%を圧迫",
			"• 年間3,000-4,000百万円の削減余地",
			"• 固定費（倉庫・人件費）の高止まり",
		),
	)
}

func proposalIssue3() []export.Para {
	return concat(
		[]export.Para{problemsHeading},
		styled(size(15), bold(19, ""), oneOf("倉庫作業", "配送業務", "財務インパクト"),
			"倉庫作業",
			"• 紙伝票による入出荷管理",
			"• ピッキングミス率：1-2%",
			"• 作業生産性：業界標準の70-80%",
			"• ロケーション管理の不徹底",
			"",
			"配送業務",
			"• ドライバー不足・残業時間の増加",
			"• 配送計画の属人化",
			"• リアルタイム進捗管理なし",
			"",
			"財務インパクト",
			"• 人件費・固定費の高止まり",
			"• 作業ミスによる追加コスト",
			"• 生産性低下による機会損失",
		),
	)
}

func proposalIssue4() []export.Para {
	return concat(
		[]export.Para{para("物流起因の収益性問題", bold(22, colorRed))},
		styled(size(14), bold(17, colorRed), prefixed("総利益率", "経常利益率", "流動比率", "改善ポテンシャル"),
			"総利益率 7.38%（業界10-15%）",
			"  原因1：調達物流コスト高（VMI未導入）",
			"  原因2：在庫ロス・品質劣化による値引き",
			"",
			"経常利益率 1.73%（業界3-5%）",
			"  原因：物流コスト推定35,000百万円",
			"  売上比7-9%（効率的企業は5-6%）",
			"",
			"流動比率 91.06%（健全水準150%以上）",
			"  原因：在庫14,000百万円の固定化",
			"  運転資金の圧迫",
			"",
			"改善ポテンシャル",
			"• 総利益率：7.38% → 9.0-10.0%（+1.6-2.6pt）",
			"• 経常利益率：1.73% → 3.0-3.5%（+1.3-1.8pt）",
			"• 流動比率：91.06% → 120-130%（+29-39pt）",
		),
	)
}

func proposalSolutions() []export.Para {
	return concat(
		[]export.Para{para("3つの統合ソリューション", bold(24, colorPrimary))},
		styled(size(14), bold(20, colorRed), prefixed("①", "②", "③"),
			"① 高度在庫管理システム",
			"   AI需要予測 × IMS × VMI",
			"   投資：220-280百万円 / 効果：330-470百万円/年",
			"   → CFマージン・流動比率改善",
			"",
			"② 統合物流プラットフォーム",
			"   TMS × SCM × リアルタイム可視化",
			"   投資：350-430百万円 / 効果：330-450百万円/年",
			"   → 物流コスト削減・経常利益率改善",
			"",
			"③ 物流自動化・最適化",
			"   次世代WMS × 倉庫自動化 × モーダルシフト",
			"   投資：400-550百万円 / 効果：210-320百万円/年",
			"   → 固定費削減・生産性向上",
		),
	)
}

// solutionDetail styles the three section headings of a solution slide.
func solutionDetail(firstHeading string, lines ...string) []export.Para {
	return styled(size(16), bold(20, colorPrimary), oneOf(firstHeading, "導入効果", "投資対効果"), lines...)
}

func proposalROI() []export.Para {
	return concat(
		[]export.Para{para("ソリューション別投資計画", bold(22, ""))},
		tableLines(roiTable, []int{16, 16, 16}, bold(16, ""), size(15), "合計"),
		[]export.Para{
			para("", size(15)),
			para("投資回収：2年目後半には完全回収", bold(18, colorRed)),
		},
	)
}

func proposalSimulation() []export.Para {
	return concat(
		[]export.Para{para("システム導入後3年目（フル効果）", bold(20, ""))},
		tableLines(simulationTable, []int{12, 14, 16}, bold(15, ""), size(14)),
	)
}

func proposalGrossMargin() []export.Para {
	return concat(
		[]export.Para{para("総利益率：7.38% → 9.0-10.0%", bold(24, colorRed))},
		styled(size(15), bold(18, ""), prefixed("改善要因", "合計"),
			"改善要因1：調達物流最適化",
			"  VMI・共同調達によるコスト削減",
			"  効果：+0.8-1.2ポイント",
			"",
			"改善要因2：在庫ロス削減",
			"  FIFO徹底・品質管理による値引き・廃棄削減",
			"  効果：+0.5-0.8ポイント",
			"",
			"改善要因3：物流効率化",
			"  欠品削減、配送品質向上による付加価値向上",
			"  効果：+0.3-0.6ポイント",
			"",
			"合計改善幅：+1.6-2.6ポイント",
		),
	)
}

func proposalOrdinaryMargin() []export.Para {
	total := prefixed("合計")
	return concat(
		[]export.Para{para("経常利益率：1.73% → 3.0-3.5%", bold(20, colorRed))},
		styled(size(15), bold(17, ""), total,
			"• 物流コスト削減：+0.6-0.8pt",
			"• 総利益率改善効果：+0.4-0.6pt",
			"• オペレーション効率化：+0.3-0.4pt",
			"合計：+1.3-1.8ポイント",
		),
		[]export.Para{
			para("", size(15)),
			para("流動比率：91.06% → 120-130%", bold(20, colorRed)),
		},
		styled(size(15), bold(17, ""), total,
			"• 在庫最適化：14,000 → 12,000-13,000百万円",
			"• 過剰在庫削減：1,000-2,000百万円",
			"• 運転資金サイクル改善",
			"• 営業CF改善による手元流動性向上",
			"合計：+29-39ポイント",
		),
	)
}

func proposalInvestment() []export.Para {
	return concat(
		[]export.Para{para("3年間の投資・効果計画", bold(22, ""))},
		tableLines(investmentTable, []int{8, 18, 18}, bold(16, ""), size(15), "累計"),
		[]export.Para{
			para("", size(15)),
			para("投資回収：2年目後半に完了", bold(20, colorRed)),
			para("3年目以降：フルベネフィット創出", bold(18, "")),
		},
	)
}

// roadmapPhase styles a roadmap slide body under its goal line.
func roadmapPhase(goal string, lines ...string) []export.Para {
	out := []export.Para{para(goal, bold(22, colorPrimary))}
	sections := oneOf("実施内容", "主要KPI")
	figures := prefixed("投資額", "期待効果")
	for _, l := range lines {
		switch {
		case sections(l):
			out = append(out, para(l, bold(19, "")))
		case figures(l):
			out = append(out, para(l, bold(17, "")))
		default:
			out = append(out, para(l, size(15)))
		}
	}
	return out
}

func proposalBenefits() []export.Para {
	return concat(
		[]export.Para{para("財務指標の改善", bold(24, colorRed))},
		styled(size(16), bold(20, colorPrimary), prefixed("業務改善効果", "経営基盤"),
			"CFマージン：-3.12% → 3.5-4.0%",
			"経常利益率：1.73% → 3.0-3.5%",
			"総利益率：7.38% → 9.0-10.0%",
			"流動比率：91.06% → 120-130%",
			"",
			"業務改善効果",
			"• 在庫削減：1,000-2,000百万円",
			"• 物流コスト削減：3,000-4,000百万円/年",
			"• 運転資金解放：5-7億円",
			"• 倉庫生産性向上：30-40%",
			"• 配送効率向上：積載率80-85%",
			"",
			"経営基盤の強化",
			"• データドリブン経営の実現",
			"• サプライチェーンの可視化・最適化",
			"• 競争力強化・事業成長の基盤構築",
		),
	)
}

func proposalNextSteps() []export.Para {
	return concat(
		[]export.Para{para("提案実現に向けて", bold(24, colorPrimary))},
		styled(size(15), bold(20, colorRed), prefixed("ステップ"),
			"ステップ1：詳細ヒアリング・現地調査",
			"  • 物流拠点視察",
			"  • 現場担当者ヒアリング",
			"  • データ収集・分析",
			"  期間：2-3週間",
			"",
			"ステップ2：詳細提案書作成",
			"  • システム詳細仕様",
			"  • 投資計画詳細",
			"  • 実行計画詳細",
			"  期間：3-4週間",
			"",
			"ステップ3：プロジェクト開始",
			"  • キックオフミーティング",
			"  • プロジェクト体制構築",
			"  • フェーズ1実行開始",
		),
	)
}

func proposalThanks(c *export.Canvas, _ Env) {
	c.Text(export.R(1, 3, 8, 1.5), para("ご清聴ありがとうございました", bold(40, colorPrimary).Centered()))
	c.Text(export.R(1, 4.5, 8, 0.8), para("ご質問・ご相談はお気軽にお申し付けください", export.Style{Size: 20, Color: colorText, Align: export.AlignCenter}))
}
