package agent

import (
	"bufio"
	"encoding/json"
	"strings"
)

// ParseToolCalls extracts invocations from an LLM response written in the
// TOOL:/PARAMETERS: line grammar. TOOL lines and PARAMETERS lines are
// collected independently and paired positionally; an invocation with no
// parameters line, or with one that isn't a well-formed JSON object, gets an
// empty argument map rather than failing.
func ParseToolCalls(response string) []Invocation {
	var names []string
	var params []map[string]any

	scanner := bufio.NewScanner(strings.NewReader(response))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if rest, ok := cutPrefixFold(line, "TOOL:"); ok {
			fields := strings.Fields(rest)
			if len(fields) > 0 {
				names = append(names, strings.Trim(fields[0], "`\"'.,"))
			}
			continue
		}

		if rest, ok := cutPrefixFold(line, "PARAMETERS:"); ok {
			var args map[string]any
			if err := json.Unmarshal([]byte(strings.TrimSpace(rest)), &args); err != nil {
				args = map[string]any{}
			}
			params = append(params, args)
		}
	}

	var calls []Invocation
	for i, name := range names {
		if name == "" {
			continue
		}
		args := map[string]any{}
		if i < len(params) && params[i] != nil {
			args = params[i]
		}
		calls = append(calls, Invocation{Tool: name, Args: args})
	}
	return calls
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return "", false
}
