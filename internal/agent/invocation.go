package agent

// Invocation is a resolved (tool name, arguments) pair ready for execution.
// It is produced per query by the selector and consumed immediately by the
// executor; it is never persisted.
type Invocation struct {
	Tool string
	Args map[string]any
}
