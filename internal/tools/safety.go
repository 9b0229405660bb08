package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

type SafetyTool struct {
	Store Catalog
}

func NewSafetyTool(store Catalog) *SafetyTool {
	return &SafetyTool{Store: store}
}

func (s *SafetyTool) Name() string {
	return "check_safety"
}

func (s *SafetyTool) Description() string {
	return "Check safety information for a medication. Use when user asks about side effects, warnings, safety, or drug interactions."
}

func (s *SafetyTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": map[string]any{
				"type":        "string",
				"description": "The name of the medication",
			},
			"patient_conditions": map[string]any{
				"type":        "string",
				"description": "Patient medical conditions",
			},
			"allergies": map[string]any{
				"type":        "string",
				"description": "Patient allergies",
			},
			"other_medications": map[string]any{
				"type":        "string",
				"description": "Other medications being taken",
			},
		},
		"required": []string{"product_name"},
	}
}

func (s *SafetyTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		ProductName       string `json:"product_name"`
		PatientConditions string `json:"patient_conditions"`
		Allergies         string `json:"allergies"`
		OtherMedications  string `json:"other_medications"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	product, err := s.Store.GetByName(args.ProductName)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}
	if product == nil {
		return fmt.Sprintf("Product '%s' not found for safety assessment.\n\n%s", args.ProductName, Disclaimer), nil
	}

	return renderSafety(product, args.PatientConditions, args.Allergies, args.OtherMedications), nil
}

func renderSafety(p *catalog.Product, conditions, allergies, otherMeds string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Comprehensive Safety Assessment for %s**\n\n", p.Name)

	b.WriteString("**Product Safety Profile:**\n")
	fmt.Fprintf(&b, "Contraindications: %s\n", p.Contraindications)
	fmt.Fprintf(&b, "Side Effects: %s\n", p.SideEffects)
	fmt.Fprintf(&b, "Drug Interactions: %s\n", p.DrugInteractions)
	fmt.Fprintf(&b, "Warnings: %s\n", p.Warnings)

	if conditions != "" {
		fmt.Fprintf(&b, "\n**Patient Conditions:** %s\n", conditions)
		b.WriteString("⚠️ Condition-specific precautions may apply\n")
	}
	if allergies != "" {
		fmt.Fprintf(&b, "\n**Patient Allergies:** %s\n", allergies)
		b.WriteString("⚠️ Allergy cross-reactions must be evaluated\n")
	}
	if otherMeds != "" {
		fmt.Fprintf(&b, "\n**Other Medications:** %s\n", otherMeds)
		b.WriteString("⚠️ Drug interactions must be checked\n")
	}

	b.WriteString("\n**Special Considerations:**\n")
	fmt.Fprintf(&b, "Prescription Required: %s\n", yesNo(p.PrescriptionRequired))
	fmt.Fprintf(&b, "Controlled Substance: %s\n", yesNo(p.ControlledSubstance))

	b.WriteString("\n🏥 **MANDATORY PROFESSIONAL REVIEW**: Healthcare provider must evaluate all safety factors before use.\n")
	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}
