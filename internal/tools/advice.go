package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AdviceTool answers general health questions with a static guidance
// template. It never touches the catalog.
type AdviceTool struct {
	sanitizer *bluemonday.Policy
}

func NewAdviceTool() *AdviceTool {
	return &AdviceTool{sanitizer: bluemonday.StrictPolicy()}
}

func (a *AdviceTool) Name() string {
	return "general_advice"
}

func (a *AdviceTool) Description() string {
	return "Provide general medical information and advice. Use when user asks general health questions not requiring database lookup."
}

func (a *AdviceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The general medical question or topic",
			},
		},
		"required": []string{"query"},
	}
}

func (a *AdviceTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	// The query is echoed back verbatim into the reply, so strip any markup
	// the user may have smuggled in.
	return renderAdvice(a.sanitizer.Sanitize(args.Query)), nil
}

func renderAdvice(query string) string {
	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "I understand you're asking about: %s\n\n", query)
	}
	b.WriteString(`This appears to be a general health question that doesn't require a specific medication lookup.

Here are some general guidelines:
• Always consult with healthcare professionals for medical advice
• Don't self-diagnose or self-treat serious conditions
• Keep track of your symptoms and medical history
• Follow prescribed treatment plans
• Maintain regular check-ups with your doctor

For specific medication information, drug interactions, or dosage questions, I can search our medical database. Would you like me to look up any specific medications or medical products?`)
	fmt.Fprintf(&b, "\n\n%s", Disclaimer)
	return b.String()
}
