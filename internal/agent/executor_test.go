package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yogesh065/medassist/internal/observability"
	"github.com/yogesh065/medassist/internal/tools"
)

// stubTool records its input and returns a canned result.
type stubTool struct {
	name   string
	result string
	err    error
	input  string
}

func (s *stubTool) Name() string                { return s.name }
func (s *stubTool) Description() string         { return "stub" }
func (s *stubTool) Parameters() map[string]any  { return map[string]any{"type": "object"} }
func (s *stubTool) Execute(ctx context.Context, input string) (string, error) {
	s.input = input
	return s.result, s.err
}

func newTestExecutor(stubs ...tools.Tool) *Executor {
	registry := tools.NewRegistry()
	registry.Register(tools.NewAdviceTool())
	for _, s := range stubs {
		registry.Register(s)
	}
	return NewExecutor(registry, observability.NewLogger())
}

func TestExecutor_JoinsResultsInOrder(t *testing.T) {
	first := &stubTool{name: "first", result: "alpha"}
	second := &stubTool{name: "second", result: "beta"}
	executor := newTestExecutor(first, second)

	out := executor.Execute(context.Background(), "s", "q", "query", []Invocation{
		{Tool: "first", Args: map[string]any{"k": "v"}},
		{Tool: "second", Args: map[string]any{}},
	})

	if out != "alpha\n\nbeta" {
		t.Errorf("Expected blank-line joined results, got %q", out)
	}
	if first.input != `{"k":"v"}` {
		t.Errorf("First tool got wrong input: %q", first.input)
	}
	if second.input != "{}" {
		t.Errorf("Empty args should encode as {}, got %q", second.input)
	}
}

func TestExecutor_UnknownToolsSkipped(t *testing.T) {
	known := &stubTool{name: "known", result: "ok"}
	executor := newTestExecutor(known)

	out := executor.Execute(context.Background(), "s", "q", "query", []Invocation{
		{Tool: "bogus", Args: map[string]any{}},
		{Tool: "known", Args: map[string]any{}},
	})

	if out != "ok" {
		t.Errorf("Expected only the known tool's output, got %q", out)
	}
}

func TestExecutor_AllUnknownFallsBackToAdvice(t *testing.T) {
	executor := newTestExecutor()

	out := executor.Execute(context.Background(), "s", "q", "help me out", []Invocation{
		{Tool: "nope", Args: map[string]any{}},
		{Tool: "also_nope", Args: map[string]any{}},
	})

	if !strings.Contains(out, tools.Disclaimer) {
		t.Errorf("Expected general advice with disclaimer, got %q", out)
	}
}

func TestExecutor_ToolErrorBecomesText(t *testing.T) {
	broken := &stubTool{name: "broken", err: errors.New("boom")}
	fine := &stubTool{name: "fine", result: "still here"}
	executor := newTestExecutor(broken, fine)

	out := executor.Execute(context.Background(), "s", "q", "query", []Invocation{
		{Tool: "broken", Args: map[string]any{}},
		{Tool: "fine", Args: map[string]any{}},
	})

	if !strings.Contains(out, "Error executing broken: boom") {
		t.Errorf("Expected labeled error string, got %q", out)
	}
	if !strings.Contains(out, "still here") {
		t.Errorf("Sibling invocation should still run, got %q", out)
	}
}

func TestExecutor_EmptyInvocationListFallsBack(t *testing.T) {
	executor := newTestExecutor()

	out := executor.Execute(context.Background(), "s", "q", "anything", nil)
	if !strings.Contains(out, tools.Disclaimer) {
		t.Errorf("Expected general advice for empty list, got %q", out)
	}
}
