package builders

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// ActorBuilder provides a fluent interface for building test Actors
type ActorBuilder struct {
	actor *alchemy.Actor
}

// NewActor creates a level 1 actor with an empty formula book
func NewActor(id string) *ActorBuilder {
	return &ActorBuilder{
		actor: &alchemy.Actor{
			ID:       id,
			Name:     "Test Alchemist",
			Level:    1,
			Formulas: []alchemy.KnownFormula{},
		},
	}
}

// WithLevel sets the actor level
func (b *ActorBuilder) WithLevel(level int) *ActorBuilder {
	b.actor.Level = level
	return b
}

// WithWatermark sets the level of the last grant pass
func (b *ActorBuilder) WithWatermark(level int) *ActorBuilder {
	b.actor.SetWatermark(level)
	return b
}

// WithFormulas appends known formulas acquired at character creation
func (b *ActorBuilder) WithFormulas(ids ...string) *ActorBuilder {
	for _, id := range ids {
		b.actor.Formulas = append(b.actor.Formulas, alchemy.KnownFormula{
			ID:          id,
			Acquisition: alchemy.Acquisition{Source: "creation", Level: 1},
		})
	}
	return b
}

// Build returns the actor
func (b *ActorBuilder) Build() *alchemy.Actor {
	return b.actor
}
