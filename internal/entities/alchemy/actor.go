package alchemy

import (
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ActorType is the entity type reported for actors
const ActorType = "actor"

// Acquisition sources
const (
	// AcquisitionLevelUp marks formulas granted by a level change
	AcquisitionLevelUp = "level-up"
	// AcquisitionManual marks formulas written through SaveActor
	AcquisitionManual = "manual"
)

// Acquisition records how a formula was learned
type Acquisition struct {
	Source     string    `json:"source"`
	Level      int       `json:"level,omitempty"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// KnownFormula references the catalog record an actor can craft
type KnownFormula struct {
	ID          string      `json:"id"`
	Acquisition Acquisition `json:"acquisition"`
}

// Actor owns a formula book and the level watermark of the last grant pass
type Actor struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Level         int            `json:"level"`
	PreviousLevel *int           `json:"previous_level,omitempty"`
	Formulas      []KnownFormula `json:"formulas"`
}

var _ core.Entity = (*Actor)(nil)

// GetID implements core.Entity
func (a *Actor) GetID() string {
	return a.ID
}

// GetType implements core.Entity
func (a *Actor) GetType() string {
	return ActorType
}

// Formula returns the known formula for the record, if any
func (a *Actor) Formula(id string) (KnownFormula, bool) {
	i := slices.IndexFunc(a.Formulas, func(f KnownFormula) bool {
		return f.ID == id
	})
	if i < 0 {
		return KnownFormula{}, false
	}
	return a.Formulas[i], true
}

// SetWatermark records the level the last grant pass ran for
func (a *Actor) SetWatermark(level int) {
	a.PreviousLevel = &level
}
