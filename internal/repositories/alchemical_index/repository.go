// Package alchemicalindex provides persistence for the alchemical index
package alchemicalindex

//go:generate mockgen -destination=mock/mock_repository.go -package=alchemicalindexmock github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// Repository defines the interface for alchemical index persistence
type Repository interface {
	// Get loads the persisted index and its metadata
	// Returns errors.NotFound if no index has been saved
	// Returns errors.Internal for storage or decoding failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the persisted index and metadata in one write. A failed
	// save leaves the previous index in place.
	// Returns errors.InvalidArgument for a nil index
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for loading the index
type GetInput struct{}

// GetOutput defines the output for loading the index
type GetOutput struct {
	Index *alchemy.Index
}

// SaveInput defines the input for saving the index
type SaveInput struct {
	Index *alchemy.Index
}

// SaveOutput defines the output for saving the index
type SaveOutput struct {
	Metadata alchemy.IndexMetadata
}
