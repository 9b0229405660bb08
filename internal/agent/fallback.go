package agent

import "strings"

// The keyword fallback mirrors the LLM-free path: fixed trigger word sets
// mapped to a single tool invocation with placeholder arguments. Rules are
// checked in order; the first match wins.

type fallbackRule struct {
	triggers []string
	build    func(query string) Invocation
}

// knownProducts are names the safety fallback scans the query for.
var knownProducts = []string{"ibuprofen", "acetaminophen", "tylenol", "advil", "lisinopril"}

var fallbackRules = []fallbackRule{
	{
		triggers: []string{"find", "search", "look", "medication", "drug", "medicine"},
		build: func(query string) Invocation {
			return Invocation{Tool: "search_products", Args: map[string]any{"query": query}}
		},
	},
	{
		triggers: []string{"side effect", "safety", "warning", "interaction"},
		build: func(query string) Invocation {
			product := "ibuprofen"
			for _, name := range knownProducts {
				if strings.Contains(strings.ToLower(query), name) {
					product = name
					break
				}
			}
			return Invocation{Tool: "check_safety", Args: map[string]any{"product_name": product}}
		},
	},
	{
		triggers: []string{"dosage", "dose", "how much", "take"},
		build: func(query string) Invocation {
			// Placeholder demographics carried over from the legacy
			// behavior; a likely accuracy gap, kept as documented.
			return Invocation{Tool: "calculate_dosage", Args: map[string]any{
				"product_name":   "acetaminophen",
				"patient_age":    30,
				"patient_weight": 70.0,
			}}
		},
	},
}

// SelectByKeywords is the deterministic fallback used when the LLM path is
// unavailable. It always returns exactly one invocation.
func SelectByKeywords(query string) []Invocation {
	lower := strings.ToLower(query)
	for _, rule := range fallbackRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return []Invocation{rule.build(query)}
			}
		}
	}
	return []Invocation{generalAdvice(query)}
}

func generalAdvice(query string) Invocation {
	return Invocation{Tool: "general_advice", Args: map[string]any{"query": query}}
}
