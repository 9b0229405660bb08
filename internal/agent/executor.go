package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/observability"
	"github.com/yogesh065/medassist/internal/tools"
)

const adviceToolName = "general_advice"

// Executor runs a batch of invocations against the registry. Unknown tool
// names are skipped, a tool error becomes a labeled error string in place of
// that tool's output, and a batch that invoked nothing at all degrades to the
// general-advice tool. Nothing here ever returns an error to the caller.
type Executor struct {
	Registry *tools.Registry
	Logger   *observability.Logger
}

func NewExecutor(registry *tools.Registry, logger *observability.Logger) *Executor {
	return &Executor{Registry: registry, Logger: logger}
}

// Execute resolves and runs each invocation in order and joins the results
// with a blank line.
func (e *Executor) Execute(ctx context.Context, sessionID, queryID, userQuery string, invocations []Invocation) string {
	var results []string
	invoked := 0

	for _, inv := range invocations {
		tool := e.Registry.Get(inv.Tool)
		if tool == nil {
			e.Logger.LogToolResult(sessionID, queryID, inv.Tool, 0, true)
			continue
		}

		argsJSON := encodeArgs(inv.Args)
		e.Logger.LogToolCall(sessionID, queryID, inv.Tool, argsJSON)

		result, err := tool.Execute(ctx, argsJSON)
		failed := err != nil
		if failed {
			result = fmt.Sprintf("Error executing %s: %v", inv.Tool, err)
		}
		e.Logger.LogToolResult(sessionID, queryID, inv.Tool, len(result), failed)

		results = append(results, result)
		invoked++
	}

	if invoked == 0 {
		return e.runAdvice(ctx, sessionID, queryID, userQuery)
	}
	return strings.Join(results, "\n\n")
}

func (e *Executor) runAdvice(ctx context.Context, sessionID, queryID, userQuery string) string {
	tool := e.Registry.Get(adviceToolName)
	if tool == nil {
		return "I wasn't able to process that request. Please consult a healthcare professional for medical advice."
	}

	argsJSON := encodeArgs(map[string]any{"query": userQuery})
	e.Logger.LogToolCall(sessionID, queryID, adviceToolName, argsJSON)

	result, err := tool.Execute(ctx, argsJSON)
	if err != nil {
		return fmt.Sprintf("Error executing %s: %v", adviceToolName, err)
	}
	return result
}

func encodeArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(data)
}
