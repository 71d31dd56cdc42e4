// Package actor provides the interface for actor formula book persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/rpg-alchemy/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the whole actor, replacing the stored formula list
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *alchemy.Actor
}

// SaveInput defines the input for saving an actor
type SaveInput struct {
	Actor *alchemy.Actor
}

// SaveOutput defines the output for saving an actor
type SaveOutput struct {
	Actor *alchemy.Actor
}
