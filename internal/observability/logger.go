package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeQuery      EventType = "query"
	EventTypeToolCall   EventType = "tool_call"
	EventTypeToolResult EventType = "tool_result"
	EventTypeFallback   EventType = "fallback"
	EventTypeAnswer     EventType = "answer"
	EventTypeAuditError EventType = "audit_error"
	EventTypeLLM        EventType = "llm"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	QueryID   string    `json:"query_id,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger handles structured logging.
type Logger struct {
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	return &Logger{
		llmLogPath: filepath.Join("logs", "llm.jsonl"),
		maxSize:    10 * 1024 * 1024, // 10MB
	}
}

// Log emits a structured JSON event to stdout.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Println(string(data))

	if evt.Type == EventTypeLLM {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogQuery(sessionID, queryID, text string) {
	l.Log(Event{
		Type:      EventTypeQuery,
		SessionID: sessionID,
		QueryID:   queryID,
		Data:      map[string]string{"text": text},
	})
}

func (l *Logger) LogToolCall(sessionID, queryID, tool, args string) {
	l.Log(Event{
		Type:      EventTypeToolCall,
		SessionID: sessionID,
		QueryID:   queryID,
		Data: map[string]string{
			"tool": tool,
			"args": args,
		},
	})
}

func (l *Logger) LogToolResult(sessionID, queryID, tool string, chars int, failed bool) {
	l.Log(Event{
		Type:      EventTypeToolResult,
		SessionID: sessionID,
		QueryID:   queryID,
		Data: map[string]any{
			"tool":   tool,
			"chars":  chars,
			"failed": failed,
		},
	})
}

func (l *Logger) LogFallback(sessionID, queryID, reason string) {
	l.Log(Event{
		Type:      EventTypeFallback,
		SessionID: sessionID,
		QueryID:   queryID,
		Data:      map[string]string{"reason": reason},
	})
}

func (l *Logger) LogAnswer(sessionID, queryID string, chars int, elapsedMs int64) {
	l.Log(Event{
		Type:      EventTypeAnswer,
		SessionID: sessionID,
		QueryID:   queryID,
		Data: map[string]any{
			"chars":      chars,
			"elapsed_ms": elapsedMs,
		},
	})
}

func (l *Logger) LogAuditError(sessionID, queryID string, err error) {
	l.Log(Event{
		Type:      EventTypeAuditError,
		SessionID: sessionID,
		QueryID:   queryID,
		Data:      map[string]string{"error": err.Error()},
	})
}

func (l *Logger) LogLLM(sessionID, queryID string, prompt any, response string) {
	l.Log(Event{
		Type:      EventTypeLLM,
		SessionID: sessionID,
		QueryID:   queryID,
		Data: map[string]any{
			"prompt":   prompt,
			"response": response,
		},
	})
}
