package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yogesh065/medassist/internal/catalog"
)

// maxRendered caps how many matches a search answer spells out, even though
// the catalog itself may return up to 20.
const maxRendered = 5

type SearchTool struct {
	Store Catalog
}

func NewSearchTool(store Catalog) *SearchTool {
	return &SearchTool{Store: store}
}

func (s *SearchTool) Name() string {
	return "search_products"
}

func (s *SearchTool) Description() string {
	return "Search for medical products in the database. Use when user asks about finding medications, drugs, or medical products."
}

func (s *SearchTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query for medical products",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "Filter by category like 'Pain Relief', 'Blood Pressure'",
			},
			"prescription_only": map[string]any{
				"type":        "boolean",
				"description": "Filter for prescription-only medications",
			},
		},
		"required": []string{"query"},
	}
}

func (s *SearchTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Query            string `json:"query"`
		Category         string `json:"category"`
		PrescriptionOnly *bool  `json:"prescription_only"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	var filters *catalog.Filters
	if args.Category != "" || args.PrescriptionOnly != nil {
		filters = &catalog.Filters{
			Category:             args.Category,
			PrescriptionRequired: args.PrescriptionOnly,
		}
	}

	products, err := s.Store.Search(args.Query, filters)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}

	return renderSearchResults(args.Query, products), nil
}

func renderSearchResults(query string, products []catalog.Product) string {
	if len(products) == 0 {
		return fmt.Sprintf("No medical products found matching '%s'.\n\n%s", query, Disclaimer)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some results for '%s':\n\n", query)
	for i, p := range products {
		if i >= maxRendered {
			break
		}
		rx := "over-the-counter"
		if p.PrescriptionRequired {
			rx = "prescription required"
		}
		fmt.Fprintf(&b, "• %s (%s, %s)\n", p.Name, orGeneric(p.BrandName), p.Category)
		fmt.Fprintf(&b, "  Uses: %s\n", p.Indications)
		fmt.Fprintf(&b, "  Price: $%.2f, %s, %s\n", p.Price, rx, p.Availability)
		if p.Contraindications != "" {
			fmt.Fprintf(&b, "  Avoid if: %s\n", p.Contraindications)
		}
	}
	if len(products) > maxRendered {
		fmt.Fprintf(&b, "\n...and %d more matches.\n", len(products)-maxRendered)
	}
	fmt.Fprintf(&b, "\n%s", Disclaimer)
	return b.String()
}

func orGeneric(brand string) string {
	if brand == "" {
		return "Generic"
	}
	return brand
}
