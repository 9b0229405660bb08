package agent

import "testing"

func TestSelectByKeywords_Search(t *testing.T) {
	calls := SelectByKeywords("Find pain relief medications")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 invocation, got %d", len(calls))
	}
	if calls[0].Tool != "search_products" {
		t.Errorf("Expected search_products, got %q", calls[0].Tool)
	}
	if calls[0].Args["query"] != "Find pain relief medications" {
		t.Errorf("Expected original query as search arg, got %v", calls[0].Args)
	}
}

func TestSelectByKeywords_SafetyExtractsProduct(t *testing.T) {
	calls := SelectByKeywords("What are the side effects of Tylenol?")
	if len(calls) != 1 || calls[0].Tool != "check_safety" {
		t.Fatalf("Expected check_safety, got %v", calls)
	}
	if calls[0].Args["product_name"] != "tylenol" {
		t.Errorf("Expected tylenol extracted, got %v", calls[0].Args)
	}
}

func TestSelectByKeywords_SafetyDefaultsToIbuprofen(t *testing.T) {
	calls := SelectByKeywords("tell me about interaction risks")
	if len(calls) != 1 || calls[0].Tool != "check_safety" {
		t.Fatalf("Expected check_safety, got %v", calls)
	}
	if calls[0].Args["product_name"] != "ibuprofen" {
		t.Errorf("Expected default ibuprofen, got %v", calls[0].Args)
	}
}

func TestSelectByKeywords_DosageDefaults(t *testing.T) {
	calls := SelectByKeywords("what dosage is right for me")
	if len(calls) != 1 || calls[0].Tool != "calculate_dosage" {
		t.Fatalf("Expected calculate_dosage, got %v", calls)
	}
	if calls[0].Args["patient_age"] != 30 {
		t.Errorf("Expected placeholder age 30, got %v", calls[0].Args["patient_age"])
	}
	if calls[0].Args["patient_weight"] != 70.0 {
		t.Errorf("Expected placeholder weight 70, got %v", calls[0].Args["patient_weight"])
	}
	if calls[0].Args["product_name"] != "acetaminophen" {
		t.Errorf("Expected placeholder product, got %v", calls[0].Args["product_name"])
	}
}

func TestSelectByKeywords_DefaultsToAdvice(t *testing.T) {
	calls := SelectByKeywords("why is the sky blue")
	if len(calls) != 1 || calls[0].Tool != "general_advice" {
		t.Fatalf("Expected general_advice, got %v", calls)
	}
	if calls[0].Args["query"] != "why is the sky blue" {
		t.Errorf("Expected query passed through, got %v", calls[0].Args)
	}
}
