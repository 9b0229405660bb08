package agent

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/yogesh065/medassist/internal/observability"
	"github.com/yogesh065/medassist/internal/tools"
)

// Selector maps one free-text query to the tool invocations that should
// answer it. The primary path asks the LLM to name tools in the
// TOOL:/PARAMETERS: grammar; any provider failure degrades to the keyword
// fallback, never to an error.
type Selector struct {
	Model    llms.Model
	Registry *tools.Registry
	Prompts  *PromptManager
	Logger   *observability.Logger
	Timeout  time.Duration
}

func NewSelector(model llms.Model, registry *tools.Registry, prompts *PromptManager, logger *observability.Logger, timeout time.Duration) *Selector {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Selector{
		Model:    model,
		Registry: registry,
		Prompts:  prompts,
		Logger:   logger,
		Timeout:  timeout,
	}
}

// Select returns at least one invocation for every query.
func (s *Selector) Select(ctx context.Context, sessionID, queryID, query string) []Invocation {
	if s.Model == nil {
		s.Logger.LogFallback(sessionID, queryID, "no LLM provider configured")
		return SelectByKeywords(query)
	}

	prompt := s.Prompts.BuildSelectionPrompt(s.Registry, query)

	llmCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	resp, err := s.Model.GenerateContent(llmCtx, messages)
	if err != nil {
		s.Logger.LogFallback(sessionID, queryID, "LLM call failed: "+err.Error())
		return SelectByKeywords(query)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		s.Logger.LogFallback(sessionID, queryID, "LLM returned no usable response")
		return SelectByKeywords(query)
	}

	content := resp.Choices[0].Content
	s.Logger.LogLLM(sessionID, queryID, prompt, content)

	calls := ParseToolCalls(content)
	if len(calls) == 0 {
		// Non-empty response that named no tools still gets an answer.
		return []Invocation{generalAdvice(query)}
	}
	return calls
}
