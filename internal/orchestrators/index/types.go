package index

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// Mode selects whether a build starts empty or from the persisted index
type Mode string

// Build modes
const (
	ModeFull        Mode = "full"
	ModeIncremental Mode = "incremental"
)

// Modes lists the accepted build modes
var Modes = []string{string(ModeFull), string(ModeIncremental)}

// BuildIndexInput defines the request for building the alchemical index
type BuildIndexInput struct {
	// Catalogs names the sources to scan; empty scans every registered catalog
	Catalogs []string
	// Mode defaults to ModeFull
	Mode Mode
}

// BuildIndexOutput defines the response for building the alchemical index
type BuildIndexOutput struct {
	Metadata alchemy.IndexMetadata
	// Indexed counts the entries written by this build, before merging
	Indexed int
	// Discarded counts records without the alchemical trait
	Discarded int
	// Fetched counts full-record fallbacks
	Fetched int
	// SkippedCatalogs lists catalogs that could not be resolved or listed
	SkippedCatalogs []string
	// SkippedRecords lists identifiers of records missing id, name or traits
	SkippedRecords []string
}

// GetIndexInput defines the request for reading the alchemical index. Every
// set filter must match.
type GetIndexInput struct {
	Rarity   alchemy.Rarity
	MaxLevel *int
	IDs      []string
}

// GetIndexOutput defines the response for reading the alchemical index
type GetIndexOutput struct {
	// Entries are ordered by identifier
	Entries  []*alchemy.IndexEntry
	Metadata alchemy.IndexMetadata
}
