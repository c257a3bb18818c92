package prompts

import (
	"strings"
	"testing"
)

func TestModulePrompt_AllModulesCovered(t *testing.T) {
	for _, m := range ModuleNames {
		p, ok := ModulePrompt(m)
		if !ok || p == "" {
			t.Fatalf("module %s has no prompt", m)
		}
	}
	if _, ok := ModulePrompt("未知"); ok {
		t.Fatalf("unknown module must not resolve")
	}
}

func TestBuildUserPayload(t *testing.T) {
	got := BuildUserPayload("教員採用試験（小学校）", "志望動機は…")
	if !strings.Contains(got, "【テーマ／条件】\n教員採用試験（小学校）") {
		t.Fatalf("theme missing: %s", got)
	}
	if !strings.Contains(got, "【受講者の入力】\n志望動機は…") {
		t.Fatalf("user text missing: %s", got)
	}
}

func TestRubricTemplate(t *testing.T) {
	tmpl := RubricTemplate()
	lines := strings.Split(tmpl, "\n")
	if len(lines) != len(RubricCommon) {
		t.Fatalf("want %d axes, got %d", len(RubricCommon), len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "- ") || !strings.HasSuffix(l, ": /5") {
			t.Fatalf("bad rubric line: %q", l)
		}
	}
}

func TestRubricMeta(t *testing.T) {
	meta := RubricMeta()
	common, ok := meta["rubric_common"].(map[string]any)
	if !ok {
		t.Fatalf("rubric_common missing: %+v", meta)
	}
	if len(common) != len(RubricCommon) {
		t.Fatalf("want %d axes, got %d", len(RubricCommon), len(common))
	}
}
