package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jinryoku-trainer/internal/llm"
	"jinryoku-trainer/internal/prompts"
	"jinryoku-trainer/internal/store"
)

type fakeClient struct {
	resp  llm.Response
	err   error
	calls int
	last  []llm.Message
}

func (f *fakeClient) Generate(_ context.Context, messages []llm.Message) (llm.Response, error) {
	f.calls++
	f.last = messages
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return f.resp, nil
}

func TestCoach_RunPersistsExchange(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	fc := &fakeClient{resp: llm.Response{Content: "出力A"}}
	c := New(fc, st)

	res, err := c.Run(context.Background(), "面接", "教員採用試験", "入力A")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Feedback != "出力A" || res.SavedPath == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(fc.last) != 2 || fc.last[0].Role != "system" || fc.last[0].Content != prompts.SystemBase {
		t.Fatalf("system prompt not sent: %+v", fc.last)
	}
	if !strings.Contains(fc.last[1].Content, "【面接訓練】") || !strings.Contains(fc.last[1].Content, "入力A") {
		t.Fatalf("user prompt incomplete: %s", fc.last[1].Content)
	}

	sub, err := st.Load(res.SavedPath)
	if err != nil {
		t.Fatalf("load saved: %v", err)
	}
	if sub.Module != "面接" || sub.UserText != "入力A" || sub.AIText != "出力A" {
		t.Fatalf("saved record mismatch: %+v", sub)
	}
	if _, ok := sub.Meta["rubric_common"]; !ok {
		t.Fatalf("rubric metadata missing: %+v", sub.Meta)
	}
}

func TestCoach_GenerateFailurePersistsNothing(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	fc := &fakeClient{err: errors.New("api unreachable")}
	c := New(fc, st)

	if _, err := c.Run(context.Background(), "討論", "", "立場表明"); err == nil {
		t.Fatalf("want generation error")
	}
	paths, err := st.ListRecent(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("failed generation must not be persisted: %v", paths)
	}
}

func TestCoach_EmptyFeedbackStillPersisted(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	fc := &fakeClient{resp: llm.Response{Content: ""}}
	c := New(fc, st)

	res, err := c.Run(context.Background(), "願書", "", "志望理由")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	sub, err := st.Load(res.SavedPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sub.AIText != "" || sub.UserText != "志望理由" {
		t.Fatalf("empty feedback handling wrong: %+v", sub)
	}
}

func TestCoach_UnknownModule(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	fc := &fakeClient{resp: llm.Response{Content: "x"}}
	c := New(fc, st)

	if _, err := c.Run(context.Background(), "未知", "", "text"); err == nil {
		t.Fatalf("want unknown module error")
	}
	if fc.calls != 0 {
		t.Fatalf("llm must not be called for unknown module")
	}
}
