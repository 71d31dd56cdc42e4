// Package index builds and serves the alchemical index: a denormalized
// summary of every catalog record carrying the alchemical trait.
package index

//go:generate mockgen -destination=mock/mock_service.go -package=indexmock github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/index Service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/idgen"
	alchemicalindex "github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index"
)

// Service defines the interface for alchemical index operations
type Service interface {
	// BuildIndex scans catalogs and persists the resulting index. Only one
	// build runs at a time; a concurrent call fails with errors.Aborted.
	BuildIndex(ctx context.Context, input *BuildIndexInput) (*BuildIndexOutput, error)

	// GetIndex returns the persisted entries matching the filters
	// Returns errors.NotFound if no index has been built
	GetIndex(ctx context.Context, input *GetIndexInput) (*GetIndexOutput, error)
}

// Config holds the dependencies for the index orchestrator
type Config struct {
	IndexRepo     alchemicalindex.Repository
	Catalogs      *catalog.Registry
	Clock         clock.Clock
	IDGenerator   idgen.Generator
	SystemVersion string
	Locale        string
	YieldInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IndexRepo == nil {
		vb.RequiredField("IndexRepo")
	}
	if c.Catalogs == nil {
		vb.RequiredField("Catalogs")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.YieldInterval < 0 {
		vb.Field("YieldInterval", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	indexRepo     alchemicalindex.Repository
	catalogs      *catalog.Registry
	clock         clock.Clock
	idGen         idgen.Generator
	systemVersion string
	locale        string
	yieldInterval time.Duration
	building      *semaphore.Weighted
}

// NewOrchestrator creates a new index orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	interval := cfg.YieldInterval
	if interval == 0 {
		interval = DefaultYieldInterval
	}

	return &orchestrator{
		indexRepo:     cfg.IndexRepo,
		catalogs:      cfg.Catalogs,
		clock:         c,
		idGen:         cfg.IDGenerator,
		systemVersion: cfg.SystemVersion,
		locale:        cfg.Locale,
		yieldInterval: interval,
		building:      semaphore.NewWeighted(1),
	}, nil
}

func (o *orchestrator) BuildIndex(ctx context.Context, input *BuildIndexInput) (*BuildIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	mode := input.Mode
	if mode == "" {
		mode = ModeFull
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("mode", string(mode), Modes, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if !o.building.TryAcquire(1) {
		return nil, errors.Aborted("an index build is already running")
	}
	defer o.building.Release(1)

	names := input.Catalogs
	if len(names) == 0 {
		names = o.catalogs.Names()
	}

	logger := slog.With("mode", mode)
	logger.Info("Building alchemical index", "catalogs", names)

	idx := o.startingIndex(ctx, mode, logger)
	output := &BuildIndexOutput{
		SkippedCatalogs: []string{},
		SkippedRecords:  []string{},
	}
	y := newYielder(o.clock, o.yieldInterval)

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if err := o.scanCatalog(ctx, name, idx, output, y); err != nil {
			logger.Warn("Index build stopped", "catalog", name, "error", err)
			return nil, err
		}
	}

	// A build canceled after the last record must not be saved either
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "index build canceled")
	}

	idx.Metadata = alchemy.IndexMetadata{
		BuildID:       o.idGen.Generate(),
		SystemVersion: o.systemVersion,
		Locale:        o.locale,
		BuiltAt:       o.clock.Now(),
		EntryCount:    idx.Len(),
	}

	saveOutput, err := o.indexRepo.Save(ctx, alchemicalindex.SaveInput{Index: idx})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save alchemical index")
	}
	output.Metadata = saveOutput.Metadata

	logger.Info("Built alchemical index",
		"build_id", output.Metadata.BuildID,
		"entries", output.Metadata.EntryCount,
		"indexed", output.Indexed,
		"discarded", output.Discarded,
		"fetched", output.Fetched,
		"skipped_catalogs", len(output.SkippedCatalogs),
		"yields", y.yields,
	)

	return output, nil
}

// startingIndex returns the index a build merges into. Incremental builds
// fall back to an empty index when the persisted one cannot be read.
func (o *orchestrator) startingIndex(ctx context.Context, mode Mode, logger *slog.Logger) *alchemy.Index {
	if mode != ModeIncremental {
		return alchemy.NewIndex()
	}

	existing, err := o.indexRepo.Get(ctx, alchemicalindex.GetInput{})
	switch {
	case errors.IsNotFound(err):
		logger.Info("No persisted index, starting empty")
		return alchemy.NewIndex()
	case err != nil:
		logger.Warn("Failed to read persisted index, starting empty", "error", err)
		return alchemy.NewIndex()
	}

	return existing.Index.Clone()
}

// scanCatalog adds the catalog's alchemical records to idx. Only a canceled
// context is returned as an error; catalog failures skip the catalog.
func (o *orchestrator) scanCatalog(
	ctx context.Context,
	name string,
	idx *alchemy.Index,
	output *BuildIndexOutput,
	y *yielder,
) error {
	logger := slog.With("catalog", name)

	source, ok := o.catalogs.Resolve(name)
	if !ok {
		logger.Warn("Skipping unresolvable catalog")
		output.SkippedCatalogs = append(output.SkippedCatalogs, name)
		return nil
	}

	records, err := source.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.FromContext(ctxErr, "index build canceled")
		}
		logger.Warn("Skipping catalog that failed to list", "error", err)
		output.SkippedCatalogs = append(output.SkippedCatalogs, name)
		return nil
	}

	for _, record := range records {
		if err := y.yield(ctx); err != nil {
			return err
		}

		if !record.IsIndexable() {
			id := ""
			if record != nil {
				id = record.ID
			}
			logger.Warn("Skipping record missing id, name or traits", "record_id", id)
			output.SkippedRecords = append(output.SkippedRecords, id)
			continue
		}
		if !record.HasTrait(alchemy.TraitAlchemical) {
			output.Discarded++
			continue
		}

		if record.Description == "" || record.Slug == "" {
			record = o.fillFromFull(ctx, source, record, logger)
			output.Fetched++
		}

		entry, err := alchemy.NewIndexEntry(record)
		if err != nil {
			logger.Warn("Skipping record", "record_id", record.ID, "error", err)
			output.SkippedRecords = append(output.SkippedRecords, record.ID)
			continue
		}
		if entry.Catalog == "" {
			entry.Catalog = name
		}

		idx.Put(entry)
		output.Indexed++
	}

	return nil
}

// fillFromFull fills the fields a projection left empty from the full
// record. The projection is kept as is when the fetch fails.
func (o *orchestrator) fillFromFull(
	ctx context.Context,
	source catalog.Source,
	projection *alchemy.CatalogRecord,
	logger *slog.Logger,
) *alchemy.CatalogRecord {
	full, err := source.Get(ctx, projection.ID)
	if err != nil {
		logger.Warn("Full fetch failed, indexing projection", "record_id", projection.ID, "error", err)
		return projection
	}

	merged := *projection
	if merged.Description == "" {
		merged.Description = full.Description
	}
	if merged.Slug == "" {
		merged.Slug = full.Slug
	}
	if merged.Icon == "" {
		merged.Icon = full.Icon
	}
	if merged.Level == nil {
		merged.Level = full.Level
	}
	if merged.Rarity == nil {
		merged.Rarity = full.Rarity
	}
	return &merged
}

func (o *orchestrator) GetIndex(ctx context.Context, input *GetIndexInput) (*GetIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	var rarity alchemy.Rarity
	if input.Rarity != "" {
		parsed, err := alchemy.ParseRarity(string(input.Rarity))
		if err != nil {
			return nil, err
		}
		rarity = parsed
	}

	getOutput, err := o.indexRepo.Get(ctx, alchemicalindex.GetInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get alchemical index")
	}
	idx := getOutput.Index

	var wanted map[string]struct{}
	if len(input.IDs) > 0 {
		wanted = make(map[string]struct{}, len(input.IDs))
		for _, id := range input.IDs {
			wanted[id] = struct{}{}
		}
	}

	entries := []*alchemy.IndexEntry{}
	for _, id := range idx.IDs() {
		entry, _ := idx.Get(id)
		if wanted != nil {
			if _, ok := wanted[id]; !ok {
				continue
			}
		}
		if rarity != "" && !entry.HasRarity(rarity) {
			continue
		}
		if input.MaxLevel != nil && (entry.Level == nil || *entry.Level > *input.MaxLevel) {
			continue
		}
		entries = append(entries, entry)
	}

	return &GetIndexOutput{
		Entries:  entries,
		Metadata: idx.Metadata,
	}, nil
}
