// Package registry exposes the engine constant categories by name.
// A Registry is built once and never changes, so it can be shared by any number of goroutines without locking.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"golang.org/x/text/cases"
)

var (
	// ErrUnknownCategory is returned when a category name is not registered.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateCategory is returned when two categories with the same (case-folded) name are registered.
	ErrDuplicateCategory = errors.New("duplicate category")
)

// Registry provides read-only access to a fixed set of constant categories.
type Registry interface {
	// Categories returns the category names in registration order.
	//
	// Returns:
	//   - []string: category names
	Categories() []string

	// Category retrieves a category by name. Matching is case-insensitive.
	//
	// Parameters:
	//   - name: the category name, e.g. "Key" or "Variant.Type"
	//
	// Returns:
	//   - common.Category: the category
	//   - error: ErrUnknownCategory if no category has the name
	Category(name string) (common.Category, error)

	// Lookup resolves a symbol within a category.
	// Flags categories also accept "A|B" expressions.
	//
	// Parameters:
	//   - category: the category name
	//   - symbol: the member name (Go or engine spelling)
	//
	// Returns:
	//   - int64: the value
	//   - error: ErrUnknownCategory or common.ErrUnknownSymbol
	Lookup(category, symbol string) (int64, error)

	// NamesOf returns every member name declared with the value in a category.
	// Aliased values yield more than one name; values without a member yield an empty slice.
	//
	// Parameters:
	//   - category: the category name
	//   - value: the value to resolve
	//
	// Returns:
	//   - []string: member names in declaration order
	//   - error: ErrUnknownCategory if the category does not exist
	NamesOf(category string, value int64) ([]string, error)

	// Len returns the number of registered categories.
	//
	// Returns:
	//   - int: the category count
	Len() int
}

// constantRegistry is the implementation of the Registry interface.
type constantRegistry struct {
	// categories holds the registered categories in registration order.
	categories []common.Category

	// byName maps a case-folded category name to its index in categories.
	byName map[string]int

	// pending collects categories from options until NewRegistry validates them.
	pending []common.Category
}

var _ Registry = &constantRegistry{}

// NewRegistry creates a Registry from the provided options.
// Categories are validated for unique names; the result is immutable.
//
// Parameters:
//   - options: functional options adding categories
//
// Returns:
//   - Registry: the registry
//   - error: ErrDuplicateCategory if two categories share a name
func NewRegistry(options ...RegistryBuilderOption) (Registry, error) {
	r := &constantRegistry{}
	for _, opt := range options {
		opt(r)
	}

	r.byName = make(map[string]int, len(r.pending))
	for i, c := range r.pending {
		if c == nil {
			return nil, fmt.Errorf("nil category at position %d", i)
		}
		key := foldName(c.Name())
		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name())
		}
		r.byName[key] = len(r.categories)
		r.categories = append(r.categories, c)
	}
	r.pending = nil

	return r, nil
}

var defaultRegistry = sync.OnceValue(func() Registry {
	r, err := NewRegistry(WithEngineCategories())
	if err != nil {
		panic(fmt.Sprintf("failed to build default registry: %v", err))
	}
	return r
})

// Default returns the registry of every engine category declared in package common.
// It is built on first use and shared afterwards.
//
// Returns:
//   - Registry: the shared default registry
func Default() Registry {
	return defaultRegistry()
}

func (r *constantRegistry) Categories() []string {
	names := make([]string, len(r.categories))
	for i, c := range r.categories {
		names[i] = c.Name()
	}
	return names
}

func (r *constantRegistry) Category(name string) (common.Category, error) {
	i, ok := r.byName[foldName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return r.categories[i], nil
}

func (r *constantRegistry) Lookup(category, symbol string) (int64, error) {
	c, err := r.Category(category)
	if err != nil {
		return 0, err
	}
	return c.ParseValue(symbol)
}

func (r *constantRegistry) NamesOf(category string, value int64) ([]string, error) {
	c, err := r.Category(category)
	if err != nil {
		return nil, err
	}
	return c.ValueNames(value), nil
}

func (r *constantRegistry) Len() int {
	return len(r.categories)
}

func foldName(s string) string {
	return cases.Fold().String(s)
}
