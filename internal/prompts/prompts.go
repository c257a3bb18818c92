package prompts

import (
	"fmt"
	"strings"
)

// SystemBase is the coach persona shared by every training module.
const SystemBase = `あなたは人物評価試験（面接・討論・模擬授業・願書・小論文）の訓練コーチです。
受講者の主体性（根拠・責任・接続・再現性）を最優先に見て、過度に模範解答化しない。
必要なら深掘り質問を出し、空虚語（熱意・貢献・成長 など）のみで終わる文章を具体化させる。
出力は日本語。敬体で丁寧に。`

// ModuleNames is the fixed set of training modules, in menu order.
var ModuleNames = []string{"面接", "討論", "模擬授業", "願書", "小論文"}

var modulePrompts = map[string]string{
	"面接": `【面接訓練】
あなたは採用面接官です。受講者に質問→回答→深掘り質問を3往復行い、
最後にルーブリック採点と改善指示を出してください。
最初の質問は「志望動機を教えてください」です。
受講者の回答が空虚なら、必ず具体に落とす追加質問をしてください。`,
	"討論": `【討論訓練】
あなたは討論ファシリテーターです。
テーマに対し、(1)論点を3つ提示 (2)議論順序を提案 (3)受講者の立場表明を促す質問
(4)相手反論を想定して問い返し (5)合意形成案の作り方 を順に行ってください。
最後にルーブリック採点と改善指示を出してください。`,
	"模擬授業": `【模擬授業訓練】
あなたは模擬授業評価者です。
受講者が提示した「授業案」を、導入/目標/展開/支援/まとめ/評価の観点で点検し、
改善案（板書・発問・つまずき支援）を具体で提案してください。
最後にルーブリック採点と改善指示を出してください。`,
	"願書": `【願書（志望理由・自己PR）添削訓練】
受講者の文章を、(1)主体 (2)現場課題との接続 (3)根拠の具体 (4)空虚語の削減
(5)読みやすさ の観点で添削してください。
「改善指示→改善例（200〜300字）→受講者への質問3つ」を必ず出してください。`,
	"小論文": `【小論文添削訓練】
受講者の小論文を、設問解釈/論点/根拠/提案の実行条件/反対意見・副作用への配慮
の観点で添削してください。
「骨格（序本結）→改善指示→改善例の段落見本→次回課題」を出してください。`,
}

// ModulePrompt returns the instruction template for a training module.
func ModulePrompt(module string) (string, bool) {
	p, ok := modulePrompts[module]
	return p, ok
}

// RubricAxis is one scoring axis of the common rubric.
type RubricAxis struct {
	Name string
	Max  int
}

// RubricCommon is the shared scoring rubric, in display order. It is
// attached to every submission as opaque metadata.
var RubricCommon = []RubricAxis{
	{Name: "主体性（自分の判断が出ているか）", Max: 5},
	{Name: "根拠（事実・体験・具体）", Max: 5},
	{Name: "接続（現場課題／他者／役割への接続）", Max: 5},
	{Name: "再現性（同様状況でも使える形）", Max: 5},
	{Name: "伝達（簡潔さ・論理・読みやすさ）", Max: 5},
}

// RubricTemplate renders the rubric as a blank scoring sheet.
func RubricTemplate() string {
	lines := make([]string, 0, len(RubricCommon))
	for _, a := range RubricCommon {
		lines = append(lines, fmt.Sprintf("- %s: /%d", a.Name, a.Max))
	}
	return strings.Join(lines, "\n")
}

// RubricMeta renders the rubric in force as submission metadata.
func RubricMeta() map[string]any {
	m := make(map[string]any, len(RubricCommon))
	for _, a := range RubricCommon {
		m[a.Name] = a.Max
	}
	return map[string]any{"rubric_common": m}
}

// BuildUserPayload composes the user half of the completion request
// from the optional theme and the verbatim submission text.
func BuildUserPayload(theme, userText string) string {
	return fmt.Sprintf("【テーマ／条件】\n%s\n\n【受講者の入力】\n%s\n", theme, userText)
}
