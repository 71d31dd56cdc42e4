package formula

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// ResolveGrants computes the higher tiers of already-known formulas that
// unlock between PreviousLevel (exclusive) and NewLevel (inclusive).
//
// Only base names the actor already knows are extended; entirely new items
// are never introduced. Per base name the highest level wins, and equal
// levels go to the smallest identifier so the result does not depend on
// catalog order. Inputs are not modified.
func ResolveGrants(input *ResolveGrantsInput) (*ResolveGrantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.NewLevel < 0 {
		return nil, errors.InvalidArgumentf("new level must not be negative, got %d", input.NewLevel).
			WithMeta("new_level", input.NewLevel)
	}
	if input.PreviousLevel < 0 {
		return nil, errors.InvalidArgumentf("previous level must not be negative, got %d", input.PreviousLevel).
			WithMeta("previous_level", input.PreviousLevel)
	}

	output := &ResolveGrantsOutput{
		ToGrant:  []alchemy.RecordRef{},
		ToRevoke: []alchemy.RecordRef{},
	}

	known, skipped := cleanRefs(input.Known)
	output.Skipped = append(output.Skipped, skipped...)

	knownIDs := make(map[string]struct{}, len(known))
	knownTop := make(map[string]alchemy.RecordRef)
	for _, ref := range known {
		knownIDs[ref.ID] = struct{}{}
		keepBest(knownTop, ref)
	}

	candidates, skipped := cleanRefs(input.Candidates)
	output.Skipped = append(output.Skipped, skipped...)

	grants := make(map[string]alchemy.RecordRef)
	for _, candidate := range candidates {
		if _, isKnown := knownIDs[candidate.ID]; isKnown {
			continue
		}
		top, baseKnown := knownTop[candidate.BaseName()]
		if !baseKnown {
			continue
		}
		if candidate.Level <= input.PreviousLevel || candidate.Level > input.NewLevel {
			continue
		}
		// A grant that pruning would immediately take back is not offered
		if input.PruneLowerTiers && candidate.Level <= top.Level {
			continue
		}
		keepBest(grants, candidate)
	}

	output.ToGrant = sortByBaseName(grants)
	if input.PruneLowerTiers {
		output.ToRevoke = PruneSuperseded(known, output.ToGrant)
	}

	return output, nil
}

// PruneSuperseded returns the known refs that are not the best record of
// their base name once grants are added. Order follows known.
func PruneSuperseded(known, grants []alchemy.RecordRef) []alchemy.RecordRef {
	known, _ = cleanRefs(known)
	grants, _ = cleanRefs(grants)

	best := make(map[string]alchemy.RecordRef)
	for _, ref := range known {
		keepBest(best, ref)
	}
	for _, ref := range grants {
		keepBest(best, ref)
	}

	revoke := []alchemy.RecordRef{}
	for _, ref := range known {
		if best[ref.BaseName()].ID != ref.ID {
			revoke = append(revoke, ref)
		}
	}
	return revoke
}

// outranks reports whether a should represent its base name over b
func outranks(a, b alchemy.RecordRef) bool {
	if a.Level != b.Level {
		return a.Level > b.Level
	}
	return a.ID < b.ID
}

func keepBest(best map[string]alchemy.RecordRef, ref alchemy.RecordRef) {
	base := ref.BaseName()
	if current, ok := best[base]; !ok || outranks(ref, current) {
		best[base] = ref
	}
}

// cleanRefs drops repeated identifiers and refs without identifier or base
// name. A name such as "(Lesser)" has no base name and cannot be grouped.
func cleanRefs(refs []alchemy.RecordRef) (clean, skipped []alchemy.RecordRef) {
	seen := make(map[string]struct{}, len(refs))
	clean = make([]alchemy.RecordRef, 0, len(refs))
	for _, ref := range refs {
		if ref.ID == "" || ref.BaseName() == "" {
			skipped = append(skipped, ref)
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		clean = append(clean, ref)
	}
	return clean, skipped
}

func sortByBaseName(byBase map[string]alchemy.RecordRef) []alchemy.RecordRef {
	refs := make([]alchemy.RecordRef, 0, len(byBase))
	for _, ref := range byBase {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b alchemy.RecordRef) int {
		if c := strings.Compare(a.BaseName(), b.BaseName()); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return refs
}
