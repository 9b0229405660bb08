package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

type InsuranceTool struct {
	Store Catalog
}

func NewInsuranceTool(store Catalog) *InsuranceTool {
	return &InsuranceTool{Store: store}
}

func (i *InsuranceTool) Name() string {
	return "check_insurance_coverage"
}

func (i *InsuranceTool) Description() string {
	return "Check insurance coverage for medications. Use when user asks about insurance, coverage, cost, or pricing."
}

func (i *InsuranceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": map[string]any{
				"type":        "string",
				"description": "The name of the medication",
			},
			"insurance_type": map[string]any{
				"type":        "string",
				"description": "Type of insurance",
			},
		},
		"required": []string{"product_name"},
	}
}

func (i *InsuranceTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		ProductName   string `json:"product_name"`
		InsuranceType string `json:"insurance_type"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	product, err := i.Store.GetByName(args.ProductName)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}
	if product == nil {
		return fmt.Sprintf("Product '%s' not found for coverage check.\n\n%s", args.ProductName, Disclaimer), nil
	}

	return renderCoverage(product, args.InsuranceType), nil
}

func renderCoverage(p *catalog.Product, insuranceType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Insurance Coverage for %s**\n\n", p.Name)
	fmt.Fprintf(&b, "Brand Name: %s\n", orGeneric(p.BrandName))
	fmt.Fprintf(&b, "Generic Name: %s\n", p.GenericName)
	fmt.Fprintf(&b, "Price: $%.2f\n", p.Price)
	fmt.Fprintf(&b, "Insurance Coverage: %s\n", p.InsuranceCoverage)
	if insuranceType != "" {
		fmt.Fprintf(&b, "Insurance Type: %s\n", insuranceType)
	}

	b.WriteString("\n**Coverage Notes:**\n")
	if p.PrescriptionRequired {
		b.WriteString("• Prescription medication - may require prior authorization\n")
	} else {
		b.WriteString("• Over-the-counter medication - typically not covered by insurance\n")
	}
	if p.GenericName != "" && !strings.EqualFold(p.GenericName, p.Name) {
		fmt.Fprintf(&b, "• A generic version (%s) may have better coverage\n", p.GenericName)
	}
	b.WriteString("• Check with your specific insurance plan for exact coverage\n")

	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}
