package ai

import (
	"context"
	"encoding/json"
	"strings"
)

// Generator produces raw model text for a fully composed prompt. It is
// the single seam to the hosted completion API; substitute it to drive
// the explanation flow without network access.
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Explainer exposes structured explanations for caller topics.
type Explainer interface {
	Enabled() bool
	Explain(ctx context.Context, topic string) (Result, error)
}

// UpstreamError wraps a failure of the completion capability. The
// wrapped error's message is reported to callers unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Engine implements the Explainer interface over a Generator.
type Engine struct {
	generator Generator
}

// NewEngine constructs an Engine. A nil generator yields a disabled
// engine whose Explain fails with ErrNotConfigured.
func NewEngine(generator Generator) *Engine {
	return &Engine{generator: generator}
}

// Enabled reports whether a configured completion capability is attached.
func (e *Engine) Enabled() bool {
	return e != nil && e.generator != nil && e.generator.Enabled()
}

// Explain turns a topic into a structured explanation. The completion
// is stripped of code fences and parsed as a JSON object; output that
// does not parse as an object is folded into the fixed fallback result
// rather than reported as an error.
func (e *Engine) Explain(ctx context.Context, topic string) (Result, error) {
	if !e.Enabled() {
		return nil, ErrNotConfigured
	}

	raw, err := e.generator.Generate(ctx, BuildPrompt(topic))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	cleaned := stripCodeFences(raw)
	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil || result == nil {
		return fallbackResult(cleaned), nil
	}
	return result, nil
}

// stripCodeFences removes every ```json and ``` marker from a
// completion and trims surrounding whitespace. Text without fences
// passes through untouched, so applying it twice changes nothing.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
