package formula

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// Outcome is the terminal state of one level-change pass
type Outcome string

// Level-change outcomes
const (
	OutcomeNoOp              Outcome = "no_op"
	OutcomeGranted           Outcome = "granted"
	OutcomeGrantedAndRevoked Outcome = "granted_and_revoked"
	// OutcomeRevoked is reached when pruning removes lower tiers but no new
	// grant was accepted
	OutcomeRevoked Outcome = "revoked"
)

// ResolveGrantsInput defines the request for resolving grants
type ResolveGrantsInput struct {
	// Known are the records behind the actor's known formulas
	Known []alchemy.RecordRef
	// Candidates are pre-filtered to alchemical records of the required rarity
	Candidates      []alchemy.RecordRef
	PreviousLevel   int
	NewLevel        int
	PruneLowerTiers bool
}

// ResolveGrantsOutput defines the response for resolving grants
type ResolveGrantsOutput struct {
	ToGrant  []alchemy.RecordRef
	ToRevoke []alchemy.RecordRef
	// Skipped holds refs dropped for a missing identifier or base name
	Skipped []alchemy.RecordRef
}

// LevelChangedInput defines the request for processing a level change. The
// caller must commit the new level before calling.
type LevelChangedInput struct {
	ActorID  string
	NewLevel int
	// PreviousLevel overrides the actor's stored watermark when set
	PreviousLevel *int
	// Settings overrides the service defaults when set
	Settings *alchemy.GrantSettings
	// Confirmer is required for the ask_each and ask_all modes
	Confirmer Confirmer
}

// LevelChangedOutput defines the response for processing a level change
type LevelChangedOutput struct {
	Outcome       Outcome
	PreviousLevel int
	NewLevel      int
	Granted       []alchemy.RecordRef
	Revoked       []alchemy.RecordRef
	Declined      []alchemy.RecordRef
}

// SaveActorInput writes an actor's whole formula book. Formulas the actor
// already knows keep their acquisition record; new ones are recorded as
// manual at Level.
type SaveActorInput struct {
	ActorID string
	// Name keeps the stored name when empty
	Name       string
	Level      int
	FormulaIDs []string
}

// SaveActorOutput defines the response for saving an actor
type SaveActorOutput struct {
	Actor   *alchemy.Actor
	Created bool
}

// GetActorInput defines the request for reading an actor
type GetActorInput struct {
	ActorID string
}

// GetActorOutput defines the response for reading an actor
type GetActorOutput struct {
	Actor *alchemy.Actor
}
