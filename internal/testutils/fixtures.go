package testutils

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/testutils/builders"
)

// Record identifiers used by the tanglefoot fixtures
const (
	TanglefootLesserID   = "tanglefoot-bag-lesser"
	TanglefootGreaterID  = "tanglefoot-bag-greater"
	TanglefootMajorID    = "tanglefoot-bag-major"
	AlchemistsFireID     = "alchemists-fire-lesser"
	AlchemistsFireModID  = "alchemists-fire-moderate"
	ElixirOfLifeMinorID  = "elixir-of-life-minor"
	ElixirOfLifeLesserID = "elixir-of-life-lesser"
	RopeID               = "rope"
)

// TestEquipmentRecords returns a small equipment catalog with three tiers of
// tanglefoot bag, two of alchemist's fire, two elixirs and a mundane item.
func TestEquipmentRecords() []*alchemy.CatalogRecord {
	return []*alchemy.CatalogRecord{
		builders.NewRecord(TanglefootLesserID, "Tanglefoot Bag (Lesser)").WithLevel(1).Build(),
		builders.NewRecord(TanglefootGreaterID, "Tanglefoot Bag (Greater)").WithLevel(4).Build(),
		builders.NewRecord(TanglefootMajorID, "Tanglefoot Bag (Major)").WithLevel(9).Build(),
		builders.NewRecord(AlchemistsFireID, "Alchemist's Fire (Lesser)").WithLevel(1).Build(),
		builders.NewRecord(AlchemistsFireModID, "Alchemist's Fire (Moderate)").
			WithLevel(3).WithRarity(alchemy.RarityUncommon).Build(),
		builders.NewRecord(ElixirOfLifeMinorID, "Elixir of Life, Minor").WithLevel(1).Build(),
		builders.NewRecord(ElixirOfLifeLesserID, "Elixir of Life, Lesser").WithLevel(5).Build(),
		builders.NewRecord(RopeID, "Rope").WithTraits().Build(),
	}
}
