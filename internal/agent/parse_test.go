package agent

import (
	"testing"
)

func TestParseToolCalls_SingleTool(t *testing.T) {
	response := `TOOL: search_products
PARAMETERS: {"query": "pain relief"}`

	calls := ParseToolCalls(response)
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].Tool != "search_products" {
		t.Errorf("Expected search_products, got %q", calls[0].Tool)
	}
	if calls[0].Args["query"] != "pain relief" {
		t.Errorf("Expected query arg, got %v", calls[0].Args)
	}
}

func TestParseToolCalls_MultipleToolsPairedByIndex(t *testing.T) {
	response := `Here is my analysis.

TOOL: get_product_details
PARAMETERS: {"product_name": "ibuprofen"}

TOOL: check_safety
PARAMETERS: {"product_name": "ibuprofen", "allergies": "aspirin"}`

	calls := ParseToolCalls(response)
	if len(calls) != 2 {
		t.Fatalf("Expected 2 calls, got %d", len(calls))
	}
	if calls[0].Tool != "get_product_details" || calls[1].Tool != "check_safety" {
		t.Errorf("Wrong order: %v", calls)
	}
	if calls[1].Args["allergies"] != "aspirin" {
		t.Errorf("Second call lost its arguments: %v", calls[1].Args)
	}
}

func TestParseToolCalls_MissingParametersGetEmptyMap(t *testing.T) {
	response := `TOOL: search_products
PARAMETERS: {"query": "aspirin"}
TOOL: general_advice
TOOL: check_safety`

	calls := ParseToolCalls(response)
	if len(calls) != 3 {
		t.Fatalf("Expected 3 calls, got %d", len(calls))
	}
	if len(calls[0].Args) != 1 {
		t.Errorf("First call should keep its args: %v", calls[0].Args)
	}
	for i := 1; i < 3; i++ {
		if calls[i].Args == nil || len(calls[i].Args) != 0 {
			t.Errorf("Call %d should have an empty (non-nil) arg map, got %v", i, calls[i].Args)
		}
	}
}

func TestParseToolCalls_MalformedJSONGetsEmptyMap(t *testing.T) {
	response := `TOOL: search_products
PARAMETERS: {query: not valid json`

	calls := ParseToolCalls(response)
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if len(calls[0].Args) != 0 {
		t.Errorf("Malformed parameters should yield empty args, got %v", calls[0].Args)
	}
}

func TestParseToolCalls_NoToolLines(t *testing.T) {
	calls := ParseToolCalls("I think you should see a doctor about that.")
	if len(calls) != 0 {
		t.Errorf("Expected no calls from prose, got %v", calls)
	}
}

func TestParseToolCalls_TrimsDecoration(t *testing.T) {
	response := "  TOOL: `search_products`  \n  PARAMETERS:   {\"query\": \"x\"}  "

	calls := ParseToolCalls(response)
	if len(calls) != 1 || calls[0].Tool != "search_products" {
		t.Errorf("Expected decorated tool name to parse, got %v", calls)
	}
}
