package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// BuildIndexRequest starts an index build
type BuildIndexRequest struct {
	Catalogs []string `json:"catalogs,omitempty"`
	Mode     string   `json:"mode,omitempty"`
}

// IndexMetadata describes the persisted index
type IndexMetadata struct {
	BuildID       string    `json:"build_id"`
	SystemVersion string    `json:"system_version"`
	Locale        string    `json:"locale"`
	BuiltAt       time.Time `json:"built_at"`
	EntryCount    int       `json:"entry_count"`
}

// BuildIndexResponse reports a finished build
type BuildIndexResponse struct {
	Metadata        IndexMetadata `json:"metadata"`
	Indexed         int           `json:"indexed"`
	Discarded       int           `json:"discarded"`
	Fetched         int           `json:"fetched"`
	SkippedCatalogs []string      `json:"skipped_catalogs"`
	SkippedRecords  []string      `json:"skipped_records"`
}

// GetIndexRequest filters the persisted index
type GetIndexRequest struct {
	Rarity   string   `json:"rarity,omitempty"`
	MaxLevel *int     `json:"max_level,omitempty"`
	IDs      []string `json:"ids,omitempty"`
}

// GetIndexResponse carries the matching entries
type GetIndexResponse struct {
	Entries  []*alchemy.IndexEntry `json:"entries"`
	Metadata IndexMetadata         `json:"metadata"`
}

// ResolveGrantsRequest runs the resolver without touching an actor
type ResolveGrantsRequest struct {
	Known           []alchemy.RecordRef `json:"known"`
	Candidates      []alchemy.RecordRef `json:"candidates"`
	PreviousLevel   int                 `json:"previous_level"`
	NewLevel        int                 `json:"new_level"`
	PruneLowerTiers bool                `json:"prune_lower_tiers,omitempty"`
}

// ResolveGrantsResponse carries the resolver result
type ResolveGrantsResponse struct {
	ToGrant  []alchemy.RecordRef `json:"to_grant"`
	ToRevoke []alchemy.RecordRef `json:"to_revoke"`
	Skipped  []alchemy.RecordRef `json:"skipped"`
}

// GrantSettings overrides the server's grant settings for one call
type GrantSettings struct {
	Mode            string `json:"mode"`
	PruneLowerTiers bool   `json:"prune_lower_tiers,omitempty"`
	RequiredRarity  string `json:"required_rarity,omitempty"`
}

// LevelChangedRequest reports a committed level change. ApprovedIDs answers
// the confirmation prompts of the ask modes; when it is absent an ask mode
// is rejected.
type LevelChangedRequest struct {
	ActorID       string         `json:"actor_id"`
	NewLevel      int            `json:"new_level"`
	PreviousLevel *int           `json:"previous_level,omitempty"`
	Settings      *GrantSettings `json:"settings,omitempty"`
	ApprovedIDs   []string       `json:"approved_ids,omitempty"`
}

// LevelChangedResponse reports what the level change did
type LevelChangedResponse struct {
	Outcome       string              `json:"outcome"`
	PreviousLevel int                 `json:"previous_level"`
	NewLevel      int                 `json:"new_level"`
	Granted       []alchemy.RecordRef `json:"granted"`
	Revoked       []alchemy.RecordRef `json:"revoked"`
	Declined      []alchemy.RecordRef `json:"declined"`
}

// SaveActorRequest writes an actor's whole formula book
type SaveActorRequest struct {
	ActorID    string   `json:"actor_id"`
	Name       string   `json:"name,omitempty"`
	Level      int      `json:"level"`
	FormulaIDs []string `json:"formula_ids"`
}

// SaveActorResponse carries the stored actor
type SaveActorResponse struct {
	Actor   *alchemy.Actor `json:"actor"`
	Created bool           `json:"created"`
}

// GetActorRequest reads one actor
type GetActorRequest struct {
	ActorID string `json:"actor_id"`
}

// GetActorResponse carries the stored actor
type GetActorResponse struct {
	Actor *alchemy.Actor `json:"actor"`
}

// Encode converts a message to its Struct form
func Encode(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to convert message to struct")
	}
	return out, nil
}

// Decode fills msg from its Struct form
func Decode(in *structpb.Struct, msg any) error {
	if in == nil {
		return errors.InvalidArgument("request is required")
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

func toMetadata(m alchemy.IndexMetadata) IndexMetadata {
	return IndexMetadata{
		BuildID:       m.BuildID,
		SystemVersion: m.SystemVersion,
		Locale:        m.Locale,
		BuiltAt:       m.BuiltAt,
		EntryCount:    m.EntryCount,
	}
}
