package coach

import (
	"context"
	"fmt"

	"jinryoku-trainer/internal/llm"
	"jinryoku-trainer/internal/prompts"
	"jinryoku-trainer/internal/store"
)

// Result is one completed training exchange plus where it was saved.
type Result struct {
	Feedback  string
	SavedPath string
}

// Coach runs a submission through the module's training prompt and
// persists the exchange.
type Coach struct {
	llm   llm.Client
	store store.Store
}

func New(client llm.Client, s store.Store) *Coach {
	return &Coach{llm: client, store: s}
}

// Run generates feedback for one submission and saves the exchange with
// the rubric in force as metadata. Nothing is persisted when generation
// fails; a save failure is surfaced so it is never mistaken for success.
func (c *Coach) Run(ctx context.Context, module, theme, userText string) (Result, error) {
	modulePrompt, ok := prompts.ModulePrompt(module)
	if !ok {
		return Result{}, fmt.Errorf("unknown module: %s", module)
	}

	payload := prompts.BuildUserPayload(theme, userText)
	resp, err := c.llm.Generate(ctx, []llm.Message{
		{Role: "system", Content: prompts.SystemBase},
		{Role: "user", Content: modulePrompt + "\n\n" + payload},
	})
	if err != nil {
		return Result{}, fmt.Errorf("generate feedback: %w", err)
	}

	path, err := c.store.Save(module, userText, resp.Content, prompts.RubricMeta())
	if err != nil {
		return Result{Feedback: resp.Content}, fmt.Errorf("save submission: %w", err)
	}
	return Result{Feedback: resp.Content, SavedPath: path}, nil
}
