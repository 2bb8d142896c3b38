package decks

import (
	"strings"

	"github.com/kasuya3/INT-YAMAE/export"
)

const ruleLine = "━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Collaboration appends the 12-slide collaboration plan to the proposal.
var Collaboration = register(&Deck{
	Name:     "collaboration",
	FileName: "物流ソリューション提案書_ヤマエ久野_完全版.pptx",
	Title:    "物流システムソリューション提案書（完全版）",
	Message:  "協業プロジェクト計画スライドを追加しました",
	Series:   2,
	Extends:  "proposal",
	slides: []slide{
		dividerSlide("協業プロジェクト計画", 48),
		{"協業アプローチ：テーマ別段階的実現", collabApproach},
		contentSlide("10の重点テーマ", spaced(4, themeLines(16, 14,
			"1. 在庫可視化・実態把握（2-3ヶ月）",
			"   → 滞留在庫特定、即時削減200-500百万円",
			"",
			"2. 需要予測精度向上（3-4ヶ月）",
			"   → 予測誤差±15%→±5-8%、在庫削減300-600百万円",
			"",
			"3. 適正在庫基準策定（2-3ヶ月）",
			"   → 在庫削減800-1,500百万円、回転日数7-10日短縮",
			"",
			"4. 配送ルート最適化（3-4ヶ月）",
			"   → 配送コスト削減500-800百万円/年",
			"",
			"5. 倉庫オペレーション改善（3-4ヶ月/拠点）",
			"   → 生産性20-30%向上、人件費50-100百万円削減",
		)...)...),
		contentSlide("10の重点テーマ（続き）", spaced(6, themeLines(17, 15,
			"6. 物流コスト可視化（2-3ヶ月）",
			"   → コスト構造把握、改善ターゲット特定",
			"",
			"7. VMI導入パイロット（6-9ヶ月）",
			"   → 在庫20-30%削減、欠品率50%削減",
			"",
			"8. IoT・デジタル化パイロット（4-6ヶ月）",
			"   → リアルタイム可視化、配送効率化",
			"",
			"9. 物流人材育成（継続）",
			"   → スキル向上、多能工化、属人化解消",
			"",
			"10. KPIダッシュボード構築（3-4ヶ月）",
			"    → 経営可視化、データドリブン経営",
		)...)...),
		contentSlide("テーマ実施タイミング", collabTiming()...),
		contentSlide("標準活動プロセス（8ステップ）", collabSteps()...),
		contentSlide("プロジェクト全体タイムライン（36ヶ月）", spaced(4, collabTimeline()...)...),
		contentSlide("プロジェクト推進体制", spaced(4, collabStructure()...)...),
		contentSlide("活動プロセスの流れ", spaced(2, collabFlow()...)...),
		contentSlide("累積効果の推移", spaced(3, collabEffects()...)...),
		contentSlide("成功の5つの鍵", spaced(10, themeLines(20, 16,
			"1. 経営層の強いコミットメント",
			"   トップダウン推進、明確な目標、リソース確保",
			"",
			"2. 現場を巻き込んだ推進",
			"   現場の声を反映、早期成果で実感創出",
			"",
			"3. データドリブンの徹底",
			"   事実に基づく課題把握、定量効果測定",
			"",
			"4. クイックウィンの創出",
			"   早期成果実証、組織の信頼獲得",
			"",
			"5. 人材育成とノウハウ移転",
			"   貴社メンバー成長、内製化、自走体制",
		)...)...),
		contentSlide("次のステップ：プロジェクト開始まで", spaced(4, collabNextSteps()...)...),
	},
})

// ruled styles each line with the style classify picks for it.
func ruled(classify func(string) export.Style, lines ...string) []export.Para {
	out := make([]export.Para, 0, len(lines))
	for _, l := range lines {
		out = append(out, para(l, classify(l)))
	}
	return out
}

// dividerSlide is a full-bleed section title in the primary color.
func dividerSlide(title string, pt float64) slide {
	return slide{title: title, draw: func(c *export.Canvas, _ Env) {
		c.Background(colorPrimary)
		c.Text(export.R(1, 3, 8, 1.5), para(title, bold(pt, colorWhite).Centered()))
	}}
}

// themeLines highlights numbered headings in red.
func themeLines(headSize, bodySize float64, lines ...string) []export.Para {
	numbered := func(s string) bool {
		return s != "" && s[0] >= '0' && s[0] <= '9'
	}
	return styled(size(bodySize), bold(headSize, colorRed), numbered, lines...)
}

func collabApproach(c *export.Canvas, _ Env) {
	c.Text(export.R(0.5, 0.3, 9, 0.6), para("協業アプローチ：テーマ別段階的実現", bold(32, colorPrimary)))

	c.Card(export.R(0.5, 1.0, 9, 0.7), export.RGB(230, 240, 250), colorPrimary, 2,
		para("現場実務に深く入り込み、テーマ別に段階的に成果を創出。", bold(16, colorPrimary).Centered()),
		para("クイックウィンで早期効果を実証し、確実に物流改革を実現します。", bold(16, colorPrimary).Centered()),
	)

	c.Box(export.R(0.5, 2.0, 4.3, 4.8), colorBgLight, colorPrimary, 1.5, concat(
		[]export.Para{para("■ 基本方針", bold(20, colorPrimary).After(10))},
		styled(size(13).Before(2), bold(14, colorRed).Before(2), prefixed("✓"),
			"✓ テーマ別プロジェクトで",
			"  段階的に成果創出",
			"",
			"✓ 現場実務に深く入り込み、",
			"  実態を理解",
			"",
			"✓ クイックウィンで",
			"  早期効果を実証",
			"",
			"✓ パイロット→検証→横展開",
			"  の確実な進め方",
			"",
			"✓ 貴社メンバーと協働、",
			"  ノウハウ移転",
		),
	)...)

	year := bold(16, colorPrimary).Before(12)
	desc := size(13).Before(2)
	effect := bold(13, colorRed).Before(2)
	c.Box(export.R(5.2, 2.0, 4.3, 4.8), colorBgPink, colorRed, 1.5,
		para("■ プロジェクト期間：36ヶ月", bold(20, colorRed).After(12)),
		para("Year 1（Month 1-6）", year.Before(8)),
		para("現状可視化、クイックウィン", desc),
		para("効果：150-300百万円/年", effect),
		para("Year 2（Month 7-18）", year),
		para("基盤構築、パイロット実施", desc),
		para("効果：500-700百万円/年", effect),
		para("Year 3（Month 19-36）", year),
		para("全社展開、自走体制確立", desc),
		para("効果：870-1,240百万円/年", effect),
	)
}

func collabTiming() []export.Para {
	phase := bold(18, colorRed).After(8)
	items := func(lines ...string) []export.Para {
		return spaced(4, styled(size(15), bold(15, ""), prefixed("効果"), lines...)...)
	}
	return concat(
		[]export.Para{para("Phase 1：現状分析・クイックウィン（Month 1-6）", phase)},
		items(
			"• テーマ1：在庫可視化",
			"• テーマ6：物流コスト可視化",
			"• テーマ5：倉庫改善（1拠点）",
			"効果：150-300百万円/年",
		),
		[]export.Para{
			para("", size(15)),
			para("Phase 2：基盤構築・パイロット（Month 6-18）", phase.Before(12)),
		},
		items(
			"• テーマ2：需要予測、テーマ3：適正在庫",
			"• テーマ4：配送最適化",
			"• テーマ7：VMI、テーマ8：IoT",
			"• テーマ10：KPIダッシュボード",
			"効果：500-700百万円/年（累計）",
		),
		[]export.Para{
			para("", size(15)),
			para("Phase 3：全社展開（Month 18-36）", phase.Before(12)),
		},
		items(
			"• システム導入（WMS, TMS）",
			"• 全拠点展開、定着化",
			"効果：870-1,240百万円/年（フル効果）",
		),
	)
}

func collabSteps() []export.Para {
	// approval and go/no-go are the decision points
	decision := oneOf("Step 5：承認・意思決定（Week 15）", "Step 7：効果検証・横展開判断（Week 25-26）")
	return concat(
		styled(size(16).Before(8), bold(16, colorRed).Before(8), decision,
			"Step 1：キックオフ・計画策定（Week 1-2）",
			"Step 2：現状調査・データ収集（Week 3-6）",
			"Step 3：分析・課題整理（Week 7-10）",
			"Step 4：改善案設計（Week 11-14）",
			"Step 5：承認・意思決定（Week 15）",
			"Step 6：パイロット実施（Week 16-24）",
			"Step 7：効果検証・横展開判断（Week 25-26）",
			"Step 8：横展開・定着化（Week 27-52）",
		),
		[]export.Para{
			para("", size(16)),
			para("各テーマでこの標準プロセスを実施", bold(16, colorPrimary).Before(20)),
		},
	)
}

func collabTimeline() []export.Para {
	return ruled(func(l string) export.Style {
		switch {
		case strings.HasPrefix(l, "Month"):
			return bold(18, colorRed)
		case strings.HasPrefix(l, "効果"):
			return bold(15, colorPrimary)
		default:
			return size(14)
		}
	},
		"Month 0-1：準備・キックオフ",
		ruleLine,
		"体制構築、詳細計画、データ収集環境整備",
		"",
		"Month 1-6：現状分析・クイックウィン",
		ruleLine,
		"在庫可視化、倉庫改善、早期成果創出",
		"効果：150-300百万円/年",
		"",
		"Month 6-18：基盤構築・パイロット",
		ruleLine,
		"需要予測、配送最適化、VMI/IoTパイロット",
		"システム選定・要件定義",
		"効果：500-700百万円/年（累計）",
		"",
		"Month 18-36：全社展開・定着化",
		ruleLine,
		"システム導入、全拠点展開、自走体制確立",
		"効果：870-1,240百万円/年（フル効果）",
	)
}

func collabStructure() []export.Para {
	meeting := func(s string) bool { return strings.HasSuffix(s, "回）") }
	return styled(size(14), bold(18, colorPrimary), meeting,
		"ステアリングコミッティ（月1回）",
		ruleLine,
		"役割：重要意思決定、進捗確認",
		"メンバー：社長、役員、PMO",
		"",
		"プロジェクトマネジメントオフィス（週1回）",
		ruleLine,
		"役割：全体統括、進捗管理、課題管理",
		"メンバー：プロジェクトリーダー、各テーマリーダー",
		"",
		"テーマ別ワーキンググループ（週1-2回）",
		ruleLine,
		"役割：テーマ別の詳細検討・実行",
		"構成：10チーム",
		"メンバー：現場責任者・実務担当者（3-5名）",
		"        コンサルタント（1-2名）",
	)
}

func collabFlow() []export.Para {
	return ruled(func(l string) export.Style {
		switch {
		case strings.HasPrefix(l, "【"):
			return bold(18, colorRed)
		case l == "  ↓":
			return size(20).Centered()
		default:
			return size(16)
		}
	},
		"現状調査・データ収集",
		"  ↓",
		"分析・課題整理（根本原因分析）",
		"  ↓",
		"改善案設計（To-Be、効果試算）",
		"  ↓",
		"【意思決定】承認・予算確保",
		"  ↓",
		"パイロット実施（小規模で検証）",
		"  ↓",
		"効果検証・改善調整",
		"  ↓",
		"【Go/No Go判断】横展開判断",
		"  ↓",
		"全社展開・定着化",
		"  ↓",
		"PDCAサイクル・継続改善",
	)
}

func collabEffects() []export.Para {
	return ruled(func(l string) export.Style {
		switch {
		case strings.HasPrefix(l, "Year"):
			return bold(17, colorRed)
		case strings.HasPrefix(l, "累計効果"), strings.Contains(l, "CF："):
			return bold(15, colorPrimary)
		default:
			return size(14)
		}
	},
		"Year 1（Month 1-12）クイックウィン創出期",
		ruleLine,
		"• 在庫削減：200-500百万円",
		"• 倉庫改善：30-50百万円/年",
		"• 配送初期改善：50-100百万円/年",
		"累計効果：150-300百万円/年（目標の15-25%）",
		"Year 1 CF：△50-100百万円",
		"",
		"Year 2（Month 13-24）本格展開開始期",
		ruleLine,
		"• 需要予測・適正在庫：+400-700百万円",
		"• 配送最適化：+200-300百万円/年",
		"• VMI/倉庫展開：+150-250百万円/年",
		"累計効果：500-700百万円/年（目標の50-60%）",
		"Year 2 CF：+50-200百万円（回収開始）",
		"",
		"Year 3（Month 25-36）フル効果達成期",
		ruleLine,
		"• システム稼働：+200-300百万円/年",
		"• 全拠点展開：+100-150百万円/年",
		"• VMI/IoT拡大：+70-150百万円/年",
		"累計効果：870-1,240百万円/年（目標100%）",
		"Year 3 CF：+720-1,090百万円",
	)
}

func collabNextSteps() []export.Para {
	return ruled(func(l string) export.Style {
		switch {
		case strings.HasPrefix(l, "Step"):
			return bold(18, colorRed)
		case strings.HasPrefix(l, "成果物"):
			return bold(15, colorPrimary)
		case strings.HasPrefix(l, "━"):
			return size(14)
		default:
			return size(15)
		}
	},
		"Step 1：詳細ヒアリング・現地視察（2-3週間）",
		ruleLine,
		"• 経営層・物流部門ヒアリング",
		"• 拠点視察（2-3拠点）",
		"• データ確認・収集",
		"成果物：詳細現状分析、優先テーマ案、詳細計画",
		"",
		"Step 2：提案プレゼンテーション（1週間）",
		ruleLine,
		"• 詳細計画のご説明",
		"• 期待効果の精緻化",
		"• 体制・役割分担の確認",
		"",
		"Step 3：キックオフ（1週間）",
		ruleLine,
		"• キックオフミーティング",
		"• プロジェクト体制発足",
		"• 活動開始",
	)
}
