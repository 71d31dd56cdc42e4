package catalog

import (
	"context"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// StaticSource serves records held in memory. List returns the records as
// given; Get returns the same records, so a static catalog never needs the
// full-fetch fallback unless its records omit fields.
type StaticSource struct {
	name    string
	records []*alchemy.CatalogRecord
	byID    map[string]*alchemy.CatalogRecord
}

// NewStatic creates an in-memory catalog
func NewStatic(name string, records ...*alchemy.CatalogRecord) *StaticSource {
	s := &StaticSource{
		name: name,
		byID: make(map[string]*alchemy.CatalogRecord, len(records)),
	}
	for _, record := range records {
		copied := *record
		copied.Catalog = name
		s.records = append(s.records, &copied)
		s.byID[copied.ID] = &copied
	}
	return s
}

// Name implements Source
func (s *StaticSource) Name() string {
	return s.name
}

// List implements Source
func (s *StaticSource) List(_ context.Context) ([]*alchemy.CatalogRecord, error) {
	out := make([]*alchemy.CatalogRecord, 0, len(s.records))
	for _, record := range s.records {
		copied := *record
		out = append(out, &copied)
	}
	return out, nil
}

// Get implements Source
func (s *StaticSource) Get(_ context.Context, id string) (*alchemy.CatalogRecord, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, errors.NotFoundf("record %s not found in catalog %s", id, s.name)
	}
	copied := *record
	return &copied, nil
}
