package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yogesh065/medassist/internal/tools"
)

const defaultPromptTemplate = `Analyze this user query and determine which tool(s) to use:

User Query: "{{query}}"

Available tools:
{{tools}}

Respond with the tool name and parameters in this format:
TOOL: tool_name
PARAMETERS: {"param1": "value1", "param2": "value2"}

If multiple tools are needed, list them in order of priority.`

// PromptManager builds the tool-selection prompt. The template can be
// overridden by dropping a selector.md into the prompts directory.
type PromptManager struct {
	Directory string
}

func NewPromptManager(dir string) *PromptManager {
	return &PromptManager{Directory: dir}
}

func (pm *PromptManager) template() string {
	if pm.Directory != "" {
		data, err := os.ReadFile(filepath.Join(pm.Directory, "selector.md"))
		if err == nil && strings.Contains(string(data), "{{query}}") {
			return string(data)
		}
	}
	return defaultPromptTemplate
}

// BuildSelectionPrompt renders the template with the user query and the
// registry's tool descriptions.
func (pm *PromptManager) BuildSelectionPrompt(registry *tools.Registry, query string) string {
	prompt := pm.template()
	prompt = strings.ReplaceAll(prompt, "{{query}}", query)
	prompt = strings.ReplaceAll(prompt, "{{tools}}", describeTools(registry))
	return prompt
}

func describeTools(registry *tools.Registry) string {
	names := make([]string, 0, len(registry.Tools))
	for name := range registry.Tools {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		t := registry.Tools[name]
		schema, err := json.Marshal(t.Parameters())
		if err != nil {
			schema = []byte("{}")
		}
		lines = append(lines, fmt.Sprintf("- %s: %s\n  Parameters: %s", t.Name(), t.Description(), schema))
	}
	return strings.Join(lines, "\n")
}
