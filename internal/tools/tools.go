// Package tools holds the registry of agent-callable booking tools: each
// tool carries its JSON schema for the LLM, the required-field list the
// dispatcher gates on, a run function, and a confirmation formatter.
package tools

import (
	"context"

	"groupbook.app/concierge/common/llm"
)

// RunFunc executes a tool against the merged arguments of a turn.
type RunFunc func(ctx context.Context, args Args) (any, error)

// FormatFunc renders a successful tool result as a user-facing confirmation.
type FormatFunc func(args Args, result any) string

// Spec describes one agent-callable tool.
type Spec struct {
	Name        string
	Description string
	Parameters  any // JSON schema handed to the LLM
	Required    []string
	// Excluded tools skip missing-parameter gating and result synthesis;
	// the assistant's own text passes through instead.
	Excluded bool
	Run      RunFunc
	Format   FormatFunc
}

// Registry is a static, name-keyed tool table built once at startup.
type Registry struct {
	order []string
	specs map[string]Spec
}

func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

func (r *Registry) Register(s Spec) {
	if _, exists := r.specs[s.Name]; !exists {
		r.order = append(r.order, s.Name)
	}
	r.specs[s.Name] = s
}

func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Definitions returns tool definitions for the LLM, in registration order.
func (r *Registry) Definitions() []llm.Tool {
	defs := make([]llm.Tool, 0, len(r.order))
	for _, name := range r.order {
		s := r.specs[name]
		defs = append(defs, llm.Tool{
			Name:        s.Name,
			Description: s.Description,
			Parameters:  s.Parameters,
		})
	}
	return defs
}

func (r *Registry) Len() int {
	return len(r.specs)
}
