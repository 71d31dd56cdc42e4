package formula

//go:generate mockgen -destination=mock/mock_confirmer.go -package=formulamock github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula Confirmer

import (
	"context"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

// Confirmer asks whoever controls the actor whether to accept grants
type Confirmer interface {
	// ConfirmGrant is used by ask_each, once per record
	ConfirmGrant(ctx context.Context, actor *alchemy.Actor, ref alchemy.RecordRef) (bool, error)

	// ConfirmAll is used by ask_all, once for the whole batch
	ConfirmAll(ctx context.Context, actor *alchemy.Actor, refs []alchemy.RecordRef) (bool, error)
}

// ApprovalConfirmer answers from a set of pre-approved record identifiers,
// for callers that collect the decision before the call.
type ApprovalConfirmer struct {
	approved map[string]struct{}
}

// NewApprovalConfirmer creates a confirmer approving exactly ids
func NewApprovalConfirmer(ids ...string) *ApprovalConfirmer {
	approved := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		approved[id] = struct{}{}
	}
	return &ApprovalConfirmer{approved: approved}
}

// ConfirmGrant approves the record if its identifier was approved
func (c *ApprovalConfirmer) ConfirmGrant(_ context.Context, _ *alchemy.Actor, ref alchemy.RecordRef) (bool, error) {
	_, ok := c.approved[ref.ID]
	return ok, nil
}

// ConfirmAll approves the batch only if every identifier was approved
func (c *ApprovalConfirmer) ConfirmAll(_ context.Context, _ *alchemy.Actor, refs []alchemy.RecordRef) (bool, error) {
	for _, ref := range refs {
		if _, ok := c.approved[ref.ID]; !ok {
			return false, nil
		}
	}
	return true, nil
}
