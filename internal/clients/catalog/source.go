// Package catalog provides read access to the compendium catalogs that
// alchemical items are indexed from.
package catalog

//go:generate mockgen -destination=mock/mock_source.go -package=catalogmock github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog Source

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// Source is one named, read-only catalog
type Source interface {
	// Name returns the catalog name used to resolve the source
	Name() string

	// List returns the lightweight projection of every record. Heavy fields
	// such as the description may be empty.
	// Returns errors.Unavailable when the catalog cannot be enumerated
	List(ctx context.Context) ([]*alchemy.CatalogRecord, error)

	// Get fetches the full record by identifier
	// Returns errors.NotFound if the record does not exist
	Get(ctx context.Context, id string) (*alchemy.CatalogRecord, error)
}

// Registry resolves catalog names to sources
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
	order   []string
}

// NewRegistry creates a registry holding the given sources
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{sources: make(map[string]Source)}
	for _, s := range sources {
		r.Register(s)
	}
	return r
}

// Register adds a source, replacing any source with the same name
func (r *Registry) Register(source Source) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := source.Name()
	if _, exists := r.sources[name]; !exists {
		r.order = append(r.order, name)
	}
	r.sources[name] = source
}

// Resolve returns the source registered under name
func (r *Registry) Resolve(name string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, ok := r.sources[name]
	return source, ok
}

// Names returns the registered catalog names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Lookup fetches a record by identifier from the first catalog that has it.
// Catalogs that fail for reasons other than NotFound are skipped.
func (r *Registry) Lookup(ctx context.Context, id string) (*alchemy.CatalogRecord, error) {
	for _, name := range r.Names() {
		source, ok := r.Resolve(name)
		if !ok {
			continue
		}
		record, err := source.Get(ctx, id)
		if err == nil {
			return record, nil
		}
	}
	return nil, errors.NotFoundf("record %s not found in any catalog", id)
}
