// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// RecordBuilder provides a fluent interface for building test CatalogRecords
type RecordBuilder struct {
	record *alchemy.CatalogRecord
}

// NewRecord creates a builder for a common alchemical consumable with a
// description and slug, so it never needs a full fetch.
func NewRecord(id, name string) *RecordBuilder {
	rarity := alchemy.RarityCommon
	return &RecordBuilder{
		record: &alchemy.CatalogRecord{
			ID:          id,
			Name:        name,
			Slug:        alchemy.Slugify(name),
			Traits:      []string{alchemy.TraitAlchemical, "consumable"},
			Rarity:      &rarity,
			Description: "<p>" + name + "</p>",
			Icon:        "icons/" + id + ".webp",
		},
	}
}

// WithLevel sets the record level
func (b *RecordBuilder) WithLevel(level int) *RecordBuilder {
	b.record.Level = &level
	return b
}

// WithRarity sets the record rarity
func (b *RecordBuilder) WithRarity(rarity alchemy.Rarity) *RecordBuilder {
	b.record.Rarity = &rarity
	return b
}

// WithTraits replaces the trait set
func (b *RecordBuilder) WithTraits(traits ...string) *RecordBuilder {
	b.record.Traits = append([]string{}, traits...)
	return b
}

// AsProjection clears the fields a lightweight listing leaves out
func (b *RecordBuilder) AsProjection() *RecordBuilder {
	b.record.Description = ""
	b.record.Slug = ""
	return b
}

// Build returns the record
func (b *RecordBuilder) Build() *alchemy.CatalogRecord {
	return b.record
}

// Ref returns the resolver view of the record; the level must be set
func (b *RecordBuilder) Ref() alchemy.RecordRef {
	return alchemy.RecordRef{ID: b.record.ID, Name: b.record.Name, Level: *b.record.Level}
}
