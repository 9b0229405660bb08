package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

type AlternativesTool struct {
	Store Catalog
}

func NewAlternativesTool(store Catalog) *AlternativesTool {
	return &AlternativesTool{Store: store}
}

func (a *AlternativesTool) Name() string {
	return "find_alternatives"
}

func (a *AlternativesTool) Description() string {
	return "Find alternative medications. Use when user asks for alternatives, substitutes, or different options."
}

func (a *AlternativesTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": map[string]any{
				"type":        "string",
				"description": "The name of the medication",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "Reason for seeking alternatives (cost, side effects, etc.)",
			},
		},
		"required": []string{"product_name"},
	}
}

func (a *AlternativesTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		ProductName string `json:"product_name"`
		Reason      string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}
	if args.Reason == "" {
		args.Reason = "cost"
	}

	product, err := a.Store.GetByName(args.ProductName)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}
	if product == nil {
		return fmt.Sprintf("Product '%s' not found for alternative search.\n\n%s", args.ProductName, Disclaimer), nil
	}

	// Re-query on the generic name so other brands of the same compound
	// surface; fall back to the category when no generic name is recorded.
	term := product.GenericName
	if term == "" {
		term = product.Category
	}
	candidates, err := a.Store.Search(term, nil)
	if err != nil {
		return "", fmt.Errorf("alternative search failed: %w", err)
	}

	return renderAlternatives(product, args.Reason, candidates), nil
}

func renderAlternatives(original *catalog.Product, reason string, candidates []catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Alternatives for %s**\n\n", original.Name)
	fmt.Fprintf(&b, "Original Product: %s (%s)\n", original.Name, orGeneric(original.BrandName))
	fmt.Fprintf(&b, "Reason for seeking alternatives: %s\n\n", reason)

	rendered := 0
	for _, alt := range candidates {
		if alt.Name == original.Name {
			continue
		}
		if rendered == 0 {
			b.WriteString("**Similar Products:**\n")
		}
		if rendered >= maxRendered {
			break
		}
		fmt.Fprintf(&b, "• %s (%s)\n", alt.Name, orGeneric(alt.BrandName))
		fmt.Fprintf(&b, "  Generic Name: %s\n", alt.GenericName)
		fmt.Fprintf(&b, "  Price: $%.2f\n", alt.Price)
		fmt.Fprintf(&b, "  Coverage: %s\n", alt.InsuranceCoverage)
		rendered++
	}
	if rendered == 0 {
		b.WriteString("No similar products found in our database.\n")
	}

	b.WriteString("\n**General Alternatives:**\n")
	category := strings.ToLower(original.Category)
	if strings.Contains(category, "pain") {
		b.WriteString("• Consider other pain relief options like acetaminophen or ibuprofen\n")
	}
	if strings.Contains(category, "blood pressure") {
		b.WriteString("• Other blood pressure medications may be available\n")
	}

	b.WriteString("\n🏥 **CONSULT HEALTHCARE PROVIDER**: Always discuss alternatives with your doctor or pharmacist.\n")
	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}
