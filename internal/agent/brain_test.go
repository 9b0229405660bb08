package agent

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/yogesh065/medassist/internal/catalog"
	"github.com/yogesh065/medassist/internal/observability"
	"github.com/yogesh065/medassist/internal/tools"
)

func newTestAssistant(t *testing.T, model llms.Model) (*Assistant, *catalog.Store) {
	t.Helper()
	store, err := catalog.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Seed(); err != nil {
		t.Fatal(err)
	}

	registry := tools.NewDefaultRegistry(store)
	logger := observability.NewLogger()
	selector := NewSelector(model, registry, NewPromptManager(""), logger, time.Second)
	executor := NewExecutor(registry, logger)
	return NewAssistant(selector, executor, store, logger), store
}

func TestAssistant_AdultDosageScenario(t *testing.T) {
	model := &fakeModel{response: `TOOL: calculate_dosage
PARAMETERS: {"product_name": "acetaminophen", "patient_age": 30, "patient_weight": 70}`}
	assistant, _ := newTestAssistant(t, model)

	out := assistant.Answer(context.Background(), "chat-1", "acetaminophen dosage for adults")

	if !strings.Contains(out, "Adult Dosage") {
		t.Errorf("Expected adult dosage text:\n%s", out)
	}
	if strings.Contains(out, "Pediatric Dosage:") {
		t.Errorf("Pediatric dosage should not be selected for age 30:\n%s", out)
	}
	if !strings.Contains(out, "MANDATORY CONSULTATION") {
		t.Error("Missing mandatory consultation notice")
	}
}

func TestAssistant_SearchScenarioListsBothPainProducts(t *testing.T) {
	model := &fakeModel{response: `TOOL: search_products
PARAMETERS: {"query": "pain", "category": "Pain Relief"}`}
	assistant, _ := newTestAssistant(t, model)

	out := assistant.Answer(context.Background(), "chat-2", "find pain relief medications")

	idxAcet := strings.Index(out, "Acetaminophen 500mg")
	idxIbu := strings.Index(out, "Ibuprofen 400mg")
	if idxAcet == -1 || idxIbu == -1 {
		t.Fatalf("Expected both pain relief products:\n%s", out)
	}
	if idxAcet > idxIbu {
		t.Error("Products not ordered by name")
	}
	for _, want := range []string{"$8.99", "$12.49", "over-the-counter"} {
		if !strings.Contains(out, want) {
			t.Errorf("Search output missing %q", want)
		}
	}
}

func TestAssistant_LLMTimeoutFallsBackToSafety(t *testing.T) {
	model := &fakeModel{response: "TOOL: check_safety", delay: 10 * time.Second}
	store, err := catalog.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Seed(); err != nil {
		t.Fatal(err)
	}

	registry := tools.NewDefaultRegistry(store)
	logger := observability.NewLogger()
	selector := NewSelector(model, registry, NewPromptManager(""), logger, 50*time.Millisecond)
	executor := NewExecutor(registry, logger)
	assistant := NewAssistant(selector, executor, store, logger)

	out := assistant.Answer(context.Background(), "chat-3", "What are the side effects of ibuprofen?")

	if !strings.Contains(out, "Safety Assessment for Ibuprofen 400mg") {
		t.Errorf("Expected safety profile for ibuprofen:\n%s", out)
	}
	if !strings.Contains(out, "Stomach upset") {
		t.Errorf("Expected recorded side effects:\n%s", out)
	}
}

func TestAssistant_UnknownToolsFallBackToAdvice(t *testing.T) {
	model := &fakeModel{response: `TOOL: make_diagnosis
PARAMETERS: {"symptom": "cough"}
TOOL: order_prescription
PARAMETERS: {}`}
	assistant, _ := newTestAssistant(t, model)

	out := assistant.Answer(context.Background(), "chat-4", "diagnose my cough")

	if !strings.Contains(out, tools.Disclaimer) {
		t.Errorf("Expected general advice with disclaimer:\n%s", out)
	}
	if !strings.Contains(out, "general health question") {
		t.Errorf("Expected the advice template:\n%s", out)
	}
}

func TestAssistant_FailingModelNeverSurfacesError(t *testing.T) {
	model := &fakeModel{err: errors.New("auth failure")}
	assistant, _ := newTestAssistant(t, model)

	out := assistant.Answer(context.Background(), "chat-5", "hello there")
	if out == "" {
		t.Error("Answer must never be empty")
	}
	if strings.Contains(out, "auth failure") {
		t.Errorf("Provider error leaked to the user:\n%s", out)
	}
}

func TestAssistant_WritesAuditRow(t *testing.T) {
	assistant, store := newTestAssistant(t, nil)

	assistant.Answer(context.Background(), "chat-6", "find medicine")

	// The audit write is fire-and-forget; give it a moment.
	deadline := time.Now().Add(2 * time.Second)
	for {
		var count int
		if err := store.DB.QueryRow(`SELECT COUNT(*) FROM interactions WHERE session_id = ?`, "chat-6").Scan(&count); err != nil {
			t.Fatal(err)
		}
		if count == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Audit row never appeared (count=%d)", count)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
