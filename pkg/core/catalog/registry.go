// Package catalog registers every calculator with the metadata the site and
// the CLI need: slug, copy, input fields, related tools and a runner that
// decodes a lenient payload and calls the calculation.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"founder_calculators/pkg/core/utils"
)

// ErrUnknownCalculator is returned by Lookup for an unregistered slug.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Category groups calculators in navigation.
type Category string

const (
	CategoryGrowth      Category = "Growth"
	CategoryMarket      Category = "Market"
	CategoryFinance     Category = "Finance"
	CategoryFundraising Category = "Fundraising"
	CategoryPricing     Category = "Pricing"
)

// FieldKind tells the form layer which input widget to use.
type FieldKind string

const (
	KindCurrency FieldKind = "currency"
	KindPercent  FieldKind = "percent"
	KindCount    FieldKind = "count"
	KindNumber   FieldKind = "number"
	KindList     FieldKind = "list"
	KindTable    FieldKind = "table"
)

// Field describes one form input.
type Field struct {
	Name    string    `json:"name"` // JSON key in the payload
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Default string    `json:"default,omitempty"`
	Help    string    `json:"help,omitempty"`
}

// Entry is one registered calculator.
type Entry struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Related     []string `json:"related,omitempty"`
	Fields      []Field  `json:"fields"`
	Example     string   `json:"example"` // Hjson payload for the worked example

	run func(raw string) (any, error)
}

// Run decodes raw (JSON, repairable JSON or Hjson) and runs the calculator.
func (e *Entry) Run(raw string) (any, error) {
	if e.run == nil {
		return nil, fmt.Errorf("calculator %s has no runner", e.Slug)
	}
	return e.run(raw)
}

// RunExample runs the calculator on its own example payload.
func (e *Entry) RunExample() (any, error) {
	return e.Run(e.Example)
}

// Registry holds all calculators
type Registry struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

var defaultRegistry *Registry
var once sync.Once

// Default returns the registry of built-in calculators
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
		for _, e := range builtins() {
			if err := defaultRegistry.Register(e); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a calculator; slugs must be unique.
func (r *Registry) Register(e *Entry) error {
	if e.Slug == "" {
		return fmt.Errorf("calculator slug cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Slug]; exists {
		return fmt.Errorf("calculator %s already registered", e.Slug)
	}
	r.entries[e.Slug] = e
	return nil
}

// Lookup retrieves a calculator by slug
func (r *Registry) Lookup(slug string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[slug]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCalculator, slug)
}

// All returns every calculator ordered by category, then title.
func (r *Registry) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Related resolves an entry's related slugs, skipping unknown ones.
func (r *Registry) Related(slug string) []*Entry {
	e, err := r.Lookup(slug)
	if err != nil {
		return nil
	}

	out := make([]*Entry, 0, len(e.Related))
	for _, s := range e.Related {
		if rel, err := r.Lookup(s); err == nil {
			out = append(out, rel)
		}
	}
	return out
}

// Count returns the number of calculators
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// runner adapts a pure calculator to a payload runner.
func runner[T any, R any](calc func(T) R) func(string) (any, error) {
	return func(raw string) (any, error) {
		var in T
		if _, err := utils.SmartParse(raw, &in); err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
		return calc(in), nil
	}
}

// fallibleRunner is runner for calculators that validate their input.
func fallibleRunner[T any, R any](calc func(T) (R, error)) func(string) (any, error) {
	return func(raw string) (any, error) {
		var in T
		if _, err := utils.SmartParse(raw, &in); err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
		res, err := calc(in)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}
