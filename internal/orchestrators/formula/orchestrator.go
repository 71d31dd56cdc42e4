// Package formula implements the level-up formula grant resolver and the
// orchestration that applies it to an actor's formula book.
package formula

//go:generate mockgen -destination=mock/mock_service.go -package=formulamock github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-alchemy/internal/repositories/actor"
	alchemicalindex "github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index"
)

// Service defines the interface for formula grant operations
type Service interface {
	// ResolveGrants runs the pure resolver without touching any actor
	ResolveGrants(ctx context.Context, input *ResolveGrantsInput) (*ResolveGrantsOutput, error)

	// OnLevelChanged grants the newly unlocked tiers of an actor's known
	// formulas and advances the actor's watermark to the new level
	OnLevelChanged(ctx context.Context, input *LevelChangedInput) (*LevelChangedOutput, error)

	// SaveActor replaces an actor's formula book, creating the actor when
	// none is stored. The watermark moves to the saved level.
	SaveActor(ctx context.Context, input *SaveActorInput) (*SaveActorOutput, error)

	// GetActor returns the stored actor
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)
}

// Config holds the dependencies for the formula orchestrator
type Config struct {
	ActorRepo actor.Repository
	IndexRepo alchemicalindex.Repository
	Catalogs  *catalog.Registry
	Clock     clock.Clock
	// Settings are used when a call does not carry its own; the zero value
	// means alchemy.DefaultGrantSettings
	Settings alchemy.GrantSettings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.IndexRepo == nil {
		vb.RequiredField("IndexRepo")
	}
	if c.Catalogs == nil {
		vb.RequiredField("Catalogs")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Settings.Mode == "" {
		return nil
	}
	return c.Settings.Validate()
}

type orchestrator struct {
	actorRepo actor.Repository
	indexRepo alchemicalindex.Repository
	catalogs  *catalog.Registry
	clock     clock.Clock
	settings  alchemy.GrantSettings
}

// NewOrchestrator creates a new formula orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	settings := cfg.Settings
	if settings.Mode == "" {
		settings = alchemy.DefaultGrantSettings()
	}
	settings, err := settings.Normalize()
	if err != nil {
		return nil, errors.Wrap(err, "invalid grant settings")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		indexRepo: cfg.IndexRepo,
		catalogs:  cfg.Catalogs,
		clock:     c,
		settings:  settings,
	}, nil
}

// lookupFunc resolves a record identifier to its resolver view
type lookupFunc func(ctx context.Context, id string) (*alchemy.CatalogRecord, error)

func (o *orchestrator) ResolveGrants(_ context.Context, input *ResolveGrantsInput) (*ResolveGrantsOutput, error) {
	return ResolveGrants(input)
}

func (o *orchestrator) OnLevelChanged(ctx context.Context, input *LevelChangedInput) (*LevelChangedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if input.NewLevel < 0 {
		return nil, errors.InvalidArgumentf("new level must not be negative, got %d", input.NewLevel)
	}

	settings := o.settings
	if input.Settings != nil {
		settings = *input.Settings
	}
	settings, err := settings.Normalize()
	if err != nil {
		return nil, err
	}
	if settings.Mode.Asks() && input.Confirmer == nil {
		return nil, errors.InvalidArgumentf("grant mode %s requires a confirmer", settings.Mode)
	}

	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}
	a := getOutput.Actor

	previous := previousLevel(input, a)
	output := &LevelChangedOutput{
		Outcome:       OutcomeNoOp,
		PreviousLevel: previous,
		NewLevel:      input.NewLevel,
		Granted:       []alchemy.RecordRef{},
		Revoked:       []alchemy.RecordRef{},
		Declined:      []alchemy.RecordRef{},
	}

	logger := slog.With(
		"actor_id", a.ID,
		"previous_level", previous,
		"new_level", input.NewLevel,
		"mode", settings.Mode,
	)

	if settings.Mode == alchemy.GrantModeDisabled || input.NewLevel <= previous {
		logger.Debug("Skipping formula grants")
		return o.finish(ctx, a, output)
	}

	candidates, lookup := o.loadCandidates(ctx, settings.RequiredRarity)
	known := o.resolveKnown(ctx, a, lookup, logger)

	resolved, err := ResolveGrants(&ResolveGrantsInput{
		Known:           known,
		Candidates:      candidates,
		PreviousLevel:   previous,
		NewLevel:        input.NewLevel,
		PruneLowerTiers: settings.PruneLowerTiers,
	})
	if err != nil {
		return nil, err
	}
	for _, ref := range resolved.Skipped {
		logger.Warn("Skipping record without identifier or name", "record_id", ref.ID, "name", ref.Name)
	}

	accepted, declined := o.confirm(ctx, settings.Mode, input.Confirmer, a, resolved.ToGrant, logger)

	revoked := resolved.ToRevoke
	if settings.PruneLowerTiers && len(declined) > 0 {
		revoked = PruneSuperseded(known, accepted)
	}

	applyFormulas(a, accepted, revoked, input.NewLevel, o.clock.Now())

	output.Granted = accepted
	output.Revoked = revoked
	output.Declined = declined
	output.Outcome = outcomeFor(accepted, revoked)

	logger.Info("Resolved formula grants",
		"granted", len(accepted),
		"revoked", len(revoked),
		"declined", len(declined),
		"outcome", output.Outcome,
	)

	return o.finish(ctx, a, output)
}

func (o *orchestrator) SaveActor(ctx context.Context, input *SaveActorInput) (*SaveActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgumentf("level must not be negative, got %d", input.Level)
	}
	if slices.ContainsFunc(input.FormulaIDs, func(id string) bool { return strings.TrimSpace(id) == "" }) {
		return nil, errors.InvalidArgument("formula IDs must not be empty")
	}

	stored := &alchemy.Actor{ID: input.ActorID}
	created := false
	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	switch {
	case err == nil:
		stored = getOutput.Actor
	case errors.IsNotFound(err):
		created = true
	default:
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}

	now := o.clock.Now()
	seen := make(map[string]struct{}, len(input.FormulaIDs))
	formulas := make([]alchemy.KnownFormula, 0, len(input.FormulaIDs))
	for _, id := range input.FormulaIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if known, ok := stored.Formula(id); ok {
			formulas = append(formulas, known)
			continue
		}
		formulas = append(formulas, alchemy.KnownFormula{
			ID: id,
			Acquisition: alchemy.Acquisition{
				Source:     alchemy.AcquisitionManual,
				Level:      input.Level,
				AcquiredAt: now,
			},
		})
	}

	name := input.Name
	if name == "" {
		name = stored.Name
	}
	a := &alchemy.Actor{
		ID:       input.ActorID,
		Name:     name,
		Level:    input.Level,
		Formulas: formulas,
	}
	a.SetWatermark(input.Level)

	if _, err := o.actorRepo.Save(ctx, actor.SaveInput{Actor: a}); err != nil {
		return nil, errors.Wrapf(err, "failed to save actor %s", a.ID)
	}

	slog.Info("Saved actor formula book",
		"actor_id", a.ID,
		"level", a.Level,
		"formulas", len(a.Formulas),
		"created", created,
	)

	return &SaveActorOutput{Actor: a, Created: created}, nil
}

func (o *orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}

	return &GetActorOutput{Actor: getOutput.Actor}, nil
}

// finish commits the level and watermark; every successful pass ends here
func (o *orchestrator) finish(ctx context.Context, a *alchemy.Actor, output *LevelChangedOutput) (*LevelChangedOutput, error) {
	a.Level = output.NewLevel
	a.SetWatermark(output.NewLevel)

	if _, err := o.actorRepo.Save(ctx, actor.SaveInput{Actor: a}); err != nil {
		return nil, errors.Wrapf(err, "failed to save actor %s", a.ID)
	}

	return output, nil
}

// loadCandidates builds the candidate pool from the persisted index, or from
// live catalog listings when no index can be read.
func (o *orchestrator) loadCandidates(ctx context.Context, rarity alchemy.Rarity) ([]alchemy.RecordRef, lookupFunc) {
	indexOutput, err := o.indexRepo.Get(ctx, alchemicalindex.GetInput{})
	if err == nil {
		return o.candidatesFromIndex(indexOutput.Index, rarity)
	}

	if errors.IsNotFound(err) {
		slog.Info("No alchemical index saved, using live catalogs")
	} else {
		slog.Warn("Failed to read alchemical index, using live catalogs", "error", err)
	}
	return o.candidatesFromCatalogs(ctx, rarity), o.catalogs.Lookup
}

func (o *orchestrator) candidatesFromIndex(idx *alchemy.Index, rarity alchemy.Rarity) ([]alchemy.RecordRef, lookupFunc) {
	var candidates []alchemy.RecordRef
	for _, id := range idx.IDs() {
		entry, _ := idx.Get(id)
		if !qualifies(entry.Traits, entry.Rarity, rarity) {
			continue
		}
		if ref, ok := entry.Ref(); ok {
			candidates = append(candidates, ref)
		}
	}

	lookup := func(ctx context.Context, id string) (*alchemy.CatalogRecord, error) {
		if entry, ok := idx.Get(id); ok {
			return &alchemy.CatalogRecord{
				ID:     entry.ID,
				Name:   entry.Name,
				Traits: entry.Traits,
				Level:  entry.Level,
				Rarity: entry.Rarity,
			}, nil
		}
		return o.catalogs.Lookup(ctx, id)
	}

	return candidates, lookup
}

func (o *orchestrator) candidatesFromCatalogs(ctx context.Context, rarity alchemy.Rarity) []alchemy.RecordRef {
	var candidates []alchemy.RecordRef
	for _, name := range o.catalogs.Names() {
		source, ok := o.catalogs.Resolve(name)
		if !ok {
			continue
		}
		records, err := source.List(ctx)
		if err != nil {
			slog.Warn("Failed to list catalog", "catalog", name, "error", err)
			continue
		}
		for _, record := range records {
			if !record.IsIndexable() || record.Level == nil {
				continue
			}
			if !qualifies(record.Traits, record.Rarity, rarity) {
				continue
			}
			candidates = append(candidates, alchemy.RecordRef{
				ID:    record.ID,
				Name:  record.Name,
				Level: *record.Level,
			})
		}
	}
	return candidates
}

// resolveKnown dereferences the actor's formulas; unresolvable ones are skipped
func (o *orchestrator) resolveKnown(
	ctx context.Context, a *alchemy.Actor, lookup lookupFunc, logger *slog.Logger,
) []alchemy.RecordRef {
	known := make([]alchemy.RecordRef, 0, len(a.Formulas))
	for _, f := range a.Formulas {
		record, err := lookup(ctx, f.ID)
		if err != nil {
			logger.Warn("Skipping unresolvable known formula", "record_id", f.ID, "error", err)
			continue
		}
		if record.Level == nil {
			logger.Warn("Skipping known formula without level", "record_id", f.ID)
			continue
		}
		known = append(known, alchemy.RecordRef{ID: f.ID, Name: record.Name, Level: *record.Level})
	}
	return known
}

func (o *orchestrator) confirm(
	ctx context.Context,
	mode alchemy.GrantMode,
	confirmer Confirmer,
	a *alchemy.Actor,
	grants []alchemy.RecordRef,
	logger *slog.Logger,
) (accepted, declined []alchemy.RecordRef) {
	accepted = []alchemy.RecordRef{}
	declined = []alchemy.RecordRef{}
	if len(grants) == 0 {
		return accepted, declined
	}

	switch mode {
	case alchemy.GrantModeAskEach:
		for _, ref := range grants {
			ok, err := confirmer.ConfirmGrant(ctx, a, ref)
			if err != nil {
				logger.Warn("Grant confirmation failed, treating as declined", "record_id", ref.ID, "error", err)
			}
			if ok && err == nil {
				accepted = append(accepted, ref)
			} else {
				declined = append(declined, ref)
			}
		}
	case alchemy.GrantModeAskAll:
		ok, err := confirmer.ConfirmAll(ctx, a, grants)
		if err != nil {
			logger.Warn("Batch confirmation failed, treating as declined", "error", err)
		}
		if ok && err == nil {
			accepted = append(accepted, grants...)
		} else {
			declined = append(declined, grants...)
		}
	default:
		accepted = append(accepted, grants...)
	}

	return accepted, declined
}

// applyFormulas rewrites the formula book: revoked entries go, repeated
// entries collapse, grants are appended in order.
func applyFormulas(a *alchemy.Actor, granted, revoked []alchemy.RecordRef, level int, now time.Time) {
	revokedIDs := make(map[string]struct{}, len(revoked))
	for _, ref := range revoked {
		revokedIDs[ref.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(a.Formulas)+len(granted))
	formulas := make([]alchemy.KnownFormula, 0, len(a.Formulas)+len(granted))
	for _, f := range a.Formulas {
		if _, gone := revokedIDs[f.ID]; gone {
			continue
		}
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		formulas = append(formulas, f)
	}
	for _, ref := range granted {
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		formulas = append(formulas, alchemy.KnownFormula{
			ID: ref.ID,
			Acquisition: alchemy.Acquisition{
				Source:     alchemy.AcquisitionLevelUp,
				Level:      level,
				AcquiredAt: now,
			},
		})
	}

	a.Formulas = formulas
}

func previousLevel(input *LevelChangedInput, a *alchemy.Actor) int {
	switch {
	case input.PreviousLevel != nil:
		return *input.PreviousLevel
	case a.PreviousLevel != nil:
		return *a.PreviousLevel
	case input.NewLevel > 0:
		return input.NewLevel - 1
	default:
		return 0
	}
}

func qualifies(traits []string, recordRarity *alchemy.Rarity, required alchemy.Rarity) bool {
	if !slices.ContainsFunc(traits, func(t string) bool {
		return strings.EqualFold(t, alchemy.TraitAlchemical)
	}) {
		return false
	}
	if required == "" {
		return true
	}
	return recordRarity != nil && *recordRarity == required
}

func outcomeFor(granted, revoked []alchemy.RecordRef) Outcome {
	switch {
	case len(granted) > 0 && len(revoked) > 0:
		return OutcomeGrantedAndRevoked
	case len(granted) > 0:
		return OutcomeGranted
	case len(revoked) > 0:
		return OutcomeRevoked
	default:
		return OutcomeNoOp
	}
}
