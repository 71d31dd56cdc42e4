// Package v1alpha1 handles the alchemy grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/index"
)

// HandlerConfig holds dependencies for the alchemy handler
type HandlerConfig struct {
	IndexService   index.Service
	FormulaService formula.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IndexService == nil {
		vb.RequiredField("IndexService")
	}
	if c.FormulaService == nil {
		vb.RequiredField("FormulaService")
	}
	return vb.Build()
}

// Handler implements AlchemyServiceServer
type Handler struct {
	indexService   index.Service
	formulaService formula.Service
}

var _ AlchemyServiceServer = (*Handler)(nil)

// NewHandler creates a new alchemy handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		indexService:   cfg.IndexService,
		formulaService: cfg.FormulaService,
	}, nil
}

// BuildIndex rebuilds the alchemical index
func (h *Handler) BuildIndex(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req BuildIndexRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.indexService.BuildIndex(ctx, &index.BuildIndexInput{
		Catalogs: req.Catalogs,
		Mode:     index.Mode(req.Mode),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BuildIndexResponse{
		Metadata:        toMetadata(output.Metadata),
		Indexed:         output.Indexed,
		Discarded:       output.Discarded,
		Fetched:         output.Fetched,
		SkippedCatalogs: output.SkippedCatalogs,
		SkippedRecords:  output.SkippedRecords,
	})
}

// GetIndex returns the persisted index entries matching the filters
func (h *Handler) GetIndex(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GetIndexRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.indexService.GetIndex(ctx, &index.GetIndexInput{
		Rarity:   alchemy.Rarity(req.Rarity),
		MaxLevel: req.MaxLevel,
		IDs:      req.IDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetIndexResponse{
		Entries:  output.Entries,
		Metadata: toMetadata(output.Metadata),
	})
}

// ResolveGrants runs the grant resolver as a dry run
func (h *Handler) ResolveGrants(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ResolveGrantsRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.formulaService.ResolveGrants(ctx, &formula.ResolveGrantsInput{
		Known:           req.Known,
		Candidates:      req.Candidates,
		PreviousLevel:   req.PreviousLevel,
		NewLevel:        req.NewLevel,
		PruneLowerTiers: req.PruneLowerTiers,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ResolveGrantsResponse{
		ToGrant:  output.ToGrant,
		ToRevoke: output.ToRevoke,
		Skipped:  output.Skipped,
	})
}

// LevelChanged applies the formula grants unlocked by a level change
func (h *Handler) LevelChanged(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req LevelChangedRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	input := &formula.LevelChangedInput{
		ActorID:       req.ActorID,
		NewLevel:      req.NewLevel,
		PreviousLevel: req.PreviousLevel,
	}
	if req.Settings != nil {
		input.Settings = &alchemy.GrantSettings{
			Mode:            alchemy.GrantMode(req.Settings.Mode),
			PruneLowerTiers: req.Settings.PruneLowerTiers,
			RequiredRarity:  alchemy.Rarity(req.Settings.RequiredRarity),
		}
	}
	if req.ApprovedIDs != nil {
		input.Confirmer = formula.NewApprovalConfirmer(req.ApprovedIDs...)
	}

	output, err := h.formulaService.OnLevelChanged(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&LevelChangedResponse{
		Outcome:       string(output.Outcome),
		PreviousLevel: output.PreviousLevel,
		NewLevel:      output.NewLevel,
		Granted:       output.Granted,
		Revoked:       output.Revoked,
		Declined:      output.Declined,
	})
}

// SaveActor writes an actor's whole formula book
func (h *Handler) SaveActor(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req SaveActorRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	output, err := h.formulaService.SaveActor(ctx, &formula.SaveActorInput{
		ActorID:    req.ActorID,
		Name:       req.Name,
		Level:      req.Level,
		FormulaIDs: req.FormulaIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SaveActorResponse{
		Actor:   output.Actor,
		Created: output.Created,
	})
}

// GetActor returns the stored actor
func (h *Handler) GetActor(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GetActorRequest
	if err := Decode(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	output, err := h.formulaService.GetActor(ctx, &formula.GetActorInput{ActorID: req.ActorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetActorResponse{Actor: output.Actor})
}

func respond(msg any) (*structpb.Struct, error) {
	out, err := Encode(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
