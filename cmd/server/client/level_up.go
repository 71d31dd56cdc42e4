package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/handlers/alchemy/v1alpha1"
)

var (
	levelUpPrevious int
	levelUpMode     string
	levelUpPrune    bool
	levelUpRarity   string
	levelUpApproved []string
)

var levelUpCmd = &cobra.Command{
	Use:   "level-up [actor-id] [new-level]",
	Short: "Report a level change and apply formula grants",
	Long: `Report that an actor reached a new level. The server grants the higher tiers
of formulas the actor already knows. Ask modes need --approve for each grant to accept.`,
	Args: cobra.ExactArgs(2),
	RunE: runLevelUp,
}

func init() {
	levelUpCmd.Flags().IntVar(&levelUpPrevious, "previous", -1, "Previous level (defaults to the actor's watermark)")
	levelUpCmd.Flags().StringVar(&levelUpMode, "mode", "", "Grant mode override: disabled, ask_each, ask_all or auto")
	levelUpCmd.Flags().BoolVar(&levelUpPrune, "prune", false, "Remove superseded lower tiers (with --mode)")
	levelUpCmd.Flags().StringVar(&levelUpRarity, "rarity", string(alchemy.RarityCommon), "Required rarity (with --mode)")
	levelUpCmd.Flags().StringSliceVar(&levelUpApproved, "approve", nil, "Record IDs approved for ask modes")
}

func runLevelUp(_ *cobra.Command, args []string) error {
	var newLevel int
	if _, err := fmt.Sscanf(args[1], "%d", &newLevel); err != nil {
		return fmt.Errorf("invalid level %q: %w", args[1], err)
	}

	client, cleanup, err := createAlchemyClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.LevelChangedRequest{
		ActorID:     args[0],
		NewLevel:    newLevel,
		ApprovedIDs: levelUpApproved,
	}
	if levelUpPrevious >= 0 {
		req.PreviousLevel = &levelUpPrevious
	}
	if levelUpMode != "" {
		req.Settings = &v1alpha1.GrantSettings{
			Mode:            levelUpMode,
			PruneLowerTiers: levelUpPrune,
			RequiredRarity:  levelUpRarity,
		}
	}

	log.Printf("Reporting level %d for actor '%s' to %s...", newLevel, args[0], serverAddr)

	resp, err := client.LevelChanged(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to apply level change: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Level %d -> %d: %s\n", resp.PreviousLevel, resp.NewLevel, resp.Outcome)
	printRefs("Granted", resp.Granted)
	printRefs("Revoked", resp.Revoked)
	printRefs("Declined", resp.Declined)
	return nil
}

func printRefs(label string, refs []alchemy.RecordRef) {
	if len(refs) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, ref := range refs {
		fmt.Printf("  [%2d] %s (%s)\n", ref.Level, ref.Name, ref.ID)
	}
}
