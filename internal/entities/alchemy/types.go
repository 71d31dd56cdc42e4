// Package alchemy holds the domain types for alchemical items, the
// alchemical index and the formulas an actor knows.
package alchemy

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// TraitAlchemical marks a catalog record as an alchemical item
const TraitAlchemical = "alchemical"

// Rarity is the rarity tier of a catalog record
type Rarity string

// Rarity tiers
const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityUnique   Rarity = "unique"
)

// Rarities lists every known rarity in ascending order
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityUnique}

// ParseRarity validates a rarity string at the ingestion boundary
func ParseRarity(value string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(value)))
	if slices.Contains(Rarities, r) {
		return r, nil
	}
	return "", errors.InvalidArgumentf("unknown rarity: %q", value)
}

// CatalogRecord is an item-like record read from a catalog.
// Level and Rarity are nil when the catalog does not provide them.
type CatalogRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Catalog     string   `json:"catalog,omitempty" yaml:"-"`
	Name        string   `json:"name" yaml:"name"`
	Slug        string   `json:"slug,omitempty" yaml:"slug"`
	Traits      []string `json:"traits" yaml:"traits"`
	Level       *int     `json:"level,omitempty" yaml:"level"`
	Rarity      *Rarity  `json:"rarity,omitempty" yaml:"rarity"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Icon        string   `json:"icon,omitempty" yaml:"icon"`
}

// HasTrait reports whether the record carries the trait, ignoring case
func (r *CatalogRecord) HasTrait(trait string) bool {
	for _, t := range r.Traits {
		if strings.EqualFold(t, trait) {
			return true
		}
	}
	return false
}

// IsIndexable reports whether the record has the identifier, name and trait
// data needed to produce an index entry.
func (r *CatalogRecord) IsIndexable() bool {
	return r != nil && r.ID != "" && r.Name != "" && r.Traits != nil
}

// IndexEntry is the denormalized summary stored in the alchemical index
type IndexEntry struct {
	ID          string   `json:"id"`
	Catalog     string   `json:"catalog,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Icon        string   `json:"icon,omitempty"`
	Level       *int     `json:"level"`
	Rarity      *Rarity  `json:"rarity"`
}

// NewIndexEntry builds an entry from an alchemical record. Records that are
// not indexable or lack the alchemical trait are rejected.
func NewIndexEntry(record *CatalogRecord) (*IndexEntry, error) {
	if !record.IsIndexable() {
		return nil, errors.InvalidArgument("record is missing id, name or traits")
	}
	if !record.HasTrait(TraitAlchemical) {
		return nil, errors.InvalidArgumentf("record %s is not alchemical", record.ID)
	}

	slug := record.Slug
	if slug == "" {
		slug = Slugify(record.Name)
	}

	return &IndexEntry{
		ID:          record.ID,
		Catalog:     record.Catalog,
		Name:        record.Name,
		Slug:        slug,
		Description: record.Description,
		Traits:      slices.Clone(record.Traits),
		Icon:        record.Icon,
		Level:       cloneInt(record.Level),
		Rarity:      cloneRarity(record.Rarity),
	}, nil
}

// Ref returns the resolver view of the entry. ok is false when the entry
// has no level.
func (e *IndexEntry) Ref() (ref RecordRef, ok bool) {
	if e.Level == nil {
		return RecordRef{}, false
	}
	return RecordRef{ID: e.ID, Name: e.Name, Level: *e.Level}, true
}

// HasRarity reports whether the entry has the given rarity
func (e *IndexEntry) HasRarity(r Rarity) bool {
	return e.Rarity != nil && *e.Rarity == r
}

// IndexMetadata describes one build of the alchemical index
type IndexMetadata struct {
	BuildID       string    `json:"build_id"`
	SystemVersion string    `json:"system_version"`
	Locale        string    `json:"locale"`
	BuiltAt       time.Time `json:"built_at"`
	EntryCount    int       `json:"entry_count"`
}

// Index maps record identifiers to their index entries
type Index struct {
	Entries  map[string]*IndexEntry
	Metadata IndexMetadata
}

// NewIndex returns an empty index
func NewIndex() *Index {
	return &Index{Entries: make(map[string]*IndexEntry)}
}

// Put stores an entry, replacing any entry with the same identifier
func (i *Index) Put(entry *IndexEntry) {
	i.Entries[entry.ID] = entry
}

// Get returns the entry for an identifier
func (i *Index) Get(id string) (*IndexEntry, bool) {
	entry, ok := i.Entries[id]
	return entry, ok
}

// Len returns the number of entries
func (i *Index) Len() int {
	return len(i.Entries)
}

// IDs returns the entry identifiers in sorted order
func (i *Index) IDs() []string {
	return slices.Sorted(maps.Keys(i.Entries))
}

// Clone returns a copy whose entry map can be modified independently
func (i *Index) Clone() *Index {
	return &Index{
		Entries:  maps.Clone(i.Entries),
		Metadata: i.Metadata,
	}
}

// RecordRef is the minimal view of a record the grant resolver works with
type RecordRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// BaseName returns the ref's normalized base name
func (r RecordRef) BaseName() string {
	return BaseName(r.Name)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneRarity(v *Rarity) *Rarity {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
