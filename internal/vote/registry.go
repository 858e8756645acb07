package vote

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps opaque selector tokens to the option text they stand for.
// Entries are only ever added; a selector lives for the life of the process
// and is never reused across vote sessions.
type Registry struct {
	mu      sync.Mutex
	options map[string]string
}

func NewRegistry() *Registry {
	return &Registry{options: make(map[string]string)}
}

// Register stores optionText under a fresh globally unique selector and
// returns the selector. Safe for concurrent callers.
func (r *Registry) Register(optionText string) string {
	selector := "vote:" + uuid.NewString()

	r.mu.Lock()
	r.options[selector] = optionText
	r.mu.Unlock()

	return selector
}

// Resolve returns the option text registered under selector.
// The second return is false when the selector is unknown.
func (r *Registry) Resolve(selector string) (string, bool) {
	r.mu.Lock()
	text, ok := r.options[selector]
	r.mu.Unlock()
	return text, ok
}

// Len reports the number of registered selectors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.options)
}
