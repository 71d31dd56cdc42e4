package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alchemy/internal/handlers/alchemy/v1alpha1"
)

var (
	indexRarity   string
	indexMaxLevel int
)

var getIndexCmd = &cobra.Command{
	Use:   "get-index [id...]",
	Short: "List alchemical index entries",
	Long:  `List the persisted alchemical index, optionally filtered by rarity, maximum level or identifiers.`,
	RunE:  runGetIndex,
}

func init() {
	getIndexCmd.Flags().StringVar(&indexRarity, "rarity", "", "Only entries of this rarity")
	getIndexCmd.Flags().IntVar(&indexMaxLevel, "max-level", -1, "Only entries at or below this level")
}

func runGetIndex(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAlchemyClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.GetIndexRequest{
		Rarity: indexRarity,
		IDs:    args,
	}
	if indexMaxLevel >= 0 {
		req.MaxLevel = &indexMaxLevel
	}

	log.Printf("Requesting alchemical index from %s...", serverAddr)

	resp, err := client.GetIndex(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get index: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Index %s (%s, %s): %d entries\n",
		resp.Metadata.BuildID, resp.Metadata.SystemVersion, resp.Metadata.Locale, len(resp.Entries))
	for _, entry := range resp.Entries {
		level := "-"
		if entry.Level != nil {
			level = fmt.Sprintf("%d", *entry.Level)
		}
		rarity := "-"
		if entry.Rarity != nil {
			rarity = string(*entry.Rarity)
		}
		fmt.Printf("  [%3s] %-40s %-9s %s\n", level, entry.Name, rarity, entry.ID)
	}
	return nil
}
