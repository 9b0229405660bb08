package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

type DetailsTool struct {
	Store Catalog
}

func NewDetailsTool(store Catalog) *DetailsTool {
	return &DetailsTool{Store: store}
}

func (d *DetailsTool) Name() string {
	return "get_product_details"
}

func (d *DetailsTool) Description() string {
	return "Get detailed information about a specific medical product. Use when user asks for detailed info about a specific medication."
}

func (d *DetailsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"product_name": map[string]any{
				"type":        "string",
				"description": "The name of the medical product",
			},
		},
		"required": []string{"product_name"},
	}
}

func (d *DetailsTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		ProductName string `json:"product_name"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	product, err := d.Store.GetByName(args.ProductName)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}
	if product == nil {
		return notFound(args.ProductName), nil
	}

	return renderDetails(product), nil
}

func notFound(name string) string {
	return fmt.Sprintf("Product '%s' not found in our database.\n\n%s", name, Disclaimer)
}

func renderDetails(p *catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Complete Information for %s**\n\n", p.Name)
	fmt.Fprintf(&b, "Brand Name: %s\n", orGeneric(p.BrandName))
	fmt.Fprintf(&b, "Generic Name: %s\n", p.GenericName)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Available Forms: %s\n", p.DosageForms)
	fmt.Fprintf(&b, "Strength: %s\n", p.Strength)
	fmt.Fprintf(&b, "Uses: %s\n", p.Indications)
	fmt.Fprintf(&b, "Adult Dosage: %s\n", p.DosageAdult)
	fmt.Fprintf(&b, "Pediatric Dosage: %s\n", p.DosagePediatric)
	fmt.Fprintf(&b, "Side Effects: %s\n", p.SideEffects)
	fmt.Fprintf(&b, "Drug Interactions: %s\n", p.DrugInteractions)
	fmt.Fprintf(&b, "Warnings: %s\n", p.Warnings)
	fmt.Fprintf(&b, "Storage: %s\n", p.StorageConditions)
	fmt.Fprintf(&b, "Manufacturer: %s\n", p.Manufacturer)
	fmt.Fprintf(&b, "Price: $%.2f\n", p.Price)
	fmt.Fprintf(&b, "Insurance Coverage: %s\n", p.InsuranceCoverage)
	fmt.Fprintf(&b, "Prescription Required: %s\n", yesNo(p.PrescriptionRequired))
	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
