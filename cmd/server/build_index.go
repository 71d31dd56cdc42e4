package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/index"
)

var (
	buildCatalogDir string
	buildMode       string
)

var buildIndexCmd = &cobra.Command{
	Use:   "build-index [catalog...]",
	Short: "Build the alchemical index locally",
	Long: `Scan the catalogs in the catalog directory and write the alchemical index to
Redis without starting the server. With no arguments every catalog is scanned.`,
	RunE: runBuildIndex,
}

func init() {
	buildIndexCmd.Flags().StringVar(&buildCatalogDir, "catalog-dir", "", "Catalog directory (overrides ALCHEMY_CATALOG_DIR)")
	buildIndexCmd.Flags().StringVar(&buildMode, "mode", string(index.ModeFull), "Build mode: full or incremental")
}

func runBuildIndex(_ *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(0, buildCatalogDir)
	if err != nil {
		return err
	}

	deps, err := newDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	catalogs := args
	if len(catalogs) == 0 {
		catalogs = cfg.Catalogs
	}

	output, err := deps.indexService.BuildIndex(ctx, &index.BuildIndexInput{
		Catalogs: catalogs,
		Mode:     index.Mode(buildMode),
	})
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	fmt.Printf("Built index %s: %d entries (%d indexed, %d discarded, %d fetched)\n",
		output.Metadata.BuildID,
		output.Metadata.EntryCount,
		output.Indexed,
		output.Discarded,
		output.Fetched,
	)
	for _, name := range output.SkippedCatalogs {
		fmt.Printf("  skipped catalog: %s\n", name)
	}
	return nil
}
