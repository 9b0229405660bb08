package tools

import (
	"context"

	"github.com/yogesh065/medassist/internal/catalog"
)

// Tool defines the interface for all assistant capabilities.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any // JSON Schema for the tool's inputs
	Execute(ctx context.Context, input string) (string, error)
}

// Catalog is the slice of the product store the tools depend on.
type Catalog interface {
	Search(query string, filters *catalog.Filters) ([]catalog.Product, error)
	GetByName(name string) (*catalog.Product, error)
}

// Disclaimer is appended to every tool response. The wording is content
// policy; tools must include it unconditionally.
const Disclaimer = "🏥 IMPORTANT: This is general information only. Always consult with qualified healthcare professionals for medical advice and treatment."

// Registry manages the set of available tools. It is built once at startup
// and never mutated afterwards.
type Registry struct {
	Tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		Tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(t Tool) {
	r.Tools[t.Name()] = t
}

func (r *Registry) Get(name string) Tool {
	return r.Tools[name]
}

// NewDefaultRegistry builds the closed set of seven tools the assistant
// dispatches over.
func NewDefaultRegistry(store Catalog) *Registry {
	r := NewRegistry()
	r.Register(NewSearchTool(store))
	r.Register(NewDetailsTool(store))
	r.Register(NewDosageTool(store))
	r.Register(NewSafetyTool(store))
	r.Register(NewInsuranceTool(store))
	r.Register(NewAlternativesTool(store))
	r.Register(NewAdviceTool())
	return r
}
