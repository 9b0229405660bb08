package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

// pediatricCutoff is the age below which pediatric dosage text is selected.
const pediatricCutoff = 18

type DosageTool struct {
	Store Catalog
}

func NewDosageTool(store Catalog) *DosageTool {
	return &DosageTool{Store: store}
}

func (d *DosageTool) Name() string {
	return "calculate_dosage"
}

func (d *DosageTool) Description() string {
	return "Look up appropriate dosage guidance for a medication. Use when user asks about dosing, dosage, or how much to take."
}

func (d *DosageTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": map[string]any{
				"type":        "string",
				"description": "The name of the medication",
			},
			"patient_age": map[string]any{
				"type":        "integer",
				"description": "Patient age in years",
			},
			"patient_weight": map[string]any{
				"type":        "number",
				"description": "Patient weight in kg",
			},
			"medical_conditions": map[string]any{
				"type":        "string",
				"description": "Any medical conditions",
			},
		},
		"required": []string{"product_name", "patient_age", "patient_weight"},
	}
}

func (d *DosageTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		ProductName       string  `json:"product_name"`
		PatientAge        int     `json:"patient_age"`
		PatientWeight     float64 `json:"patient_weight"`
		MedicalConditions string  `json:"medical_conditions"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	product, err := d.Store.GetByName(args.ProductName)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}
	if product == nil {
		return fmt.Sprintf("Product '%s' not found for dosage lookup.\n\n%s", args.ProductName, Disclaimer), nil
	}

	return renderDosage(product, args.PatientAge, args.PatientWeight, args.MedicalConditions), nil
}

// renderDosage surfaces the pre-recorded dosage-range text for the patient's
// age bracket. It deliberately performs no per-patient arithmetic; that is
// deferred to a healthcare professional.
func renderDosage(p *catalog.Product, age int, weight float64, conditions string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Dosage Information for %s**\n\n", p.Name)
	fmt.Fprintf(&b, "Patient Age: %d years\n", age)
	fmt.Fprintf(&b, "Patient Weight: %.1f kg\n", weight)

	if age < pediatricCutoff {
		fmt.Fprintf(&b, "Pediatric Dosage: %s\n", p.DosagePediatric)
		b.WriteString("⚠️ PEDIATRIC PATIENT: Dosing must be verified by pediatrician\n")
	} else {
		fmt.Fprintf(&b, "Adult Dosage: %s\n", p.DosageAdult)
	}

	if conditions != "" {
		fmt.Fprintf(&b, "Medical Conditions: %s\n", conditions)
		b.WriteString("⚠️ Dosage adjustments may be needed for medical conditions\n")
	}

	b.WriteString("\n**Important Safety Information:**\n")
	fmt.Fprintf(&b, "Contraindications: %s\n", p.Contraindications)
	fmt.Fprintf(&b, "Side Effects: %s\n", p.SideEffects)
	fmt.Fprintf(&b, "Warnings: %s\n", p.Warnings)

	b.WriteString("\n🏥 **MANDATORY CONSULTATION**: Always consult with healthcare provider for personalized dosing recommendations.\n")
	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}
