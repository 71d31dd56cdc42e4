package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alchemy/internal/handlers/alchemy/v1alpha1"
)

var buildMode string

var buildIndexCmd = &cobra.Command{
	Use:   "build-index [catalog...]",
	Short: "Ask the server to rebuild the alchemical index",
	RunE:  runBuildIndex,
}

func init() {
	buildIndexCmd.Flags().StringVar(&buildMode, "mode", "full", "Build mode: full or incremental")
}

func runBuildIndex(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAlchemyClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting %s index build from %s...", buildMode, serverAddr)

	resp, err := client.BuildIndex(ctx, &v1alpha1.BuildIndexRequest{
		Catalogs: args,
		Mode:     buildMode,
	})
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Build %s at %s\n", resp.Metadata.BuildID, resp.Metadata.BuiltAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Entries:   %d\n", resp.Metadata.EntryCount)
	fmt.Printf("  Indexed:   %d\n", resp.Indexed)
	fmt.Printf("  Discarded: %d\n", resp.Discarded)
	fmt.Printf("  Fetched:   %d\n", resp.Fetched)
	for _, name := range resp.SkippedCatalogs {
		fmt.Printf("  Skipped catalog: %s\n", name)
	}
	return nil
}
