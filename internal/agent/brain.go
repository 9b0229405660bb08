package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yogesh065/medassist/internal/observability"
)

// AuditLog receives one row per answered query. Write failures are
// swallowed; the audit trail is never on the critical path.
type AuditLog interface {
	LogInteraction(sessionID, userText, responseText string, elapsedMs int64) error
}

// Assistant is the caller-facing core: one query in, one text answer out.
// It never returns an error; every failure mode degrades to a textual
// result.
type Assistant struct {
	Selector *Selector
	Executor *Executor
	Audit    AuditLog
	Logger   *observability.Logger
}

func NewAssistant(selector *Selector, executor *Executor, audit AuditLog, logger *observability.Logger) *Assistant {
	return &Assistant{
		Selector: selector,
		Executor: executor,
		Audit:    audit,
		Logger:   logger,
	}
}

// Answer processes one user query end to end: select tools, execute them,
// join the output. The session ID is caller-owned; an empty one gets a
// fresh UUID so the audit rows still correlate.
func (a *Assistant) Answer(ctx context.Context, sessionID, query string) string {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	queryID := uuid.NewString()
	start := time.Now()

	a.Logger.LogQuery(sessionID, queryID, query)

	invocations := a.Selector.Select(ctx, sessionID, queryID, query)
	answer := a.Executor.Execute(ctx, sessionID, queryID, query, invocations)

	elapsed := time.Since(start).Milliseconds()
	a.Logger.LogAnswer(sessionID, queryID, len(answer), elapsed)

	if a.Audit != nil {
		go func() {
			if err := a.Audit.LogInteraction(sessionID, query, answer, elapsed); err != nil {
				a.Logger.LogAuditError(sessionID, queryID, err)
			}
		}()
	}

	return answer
}
