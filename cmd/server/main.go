// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alchemy/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-alchemy",
	Short: "RPG Alchemy gRPC Server",
	Long: `RPG Alchemy indexes alchemical items from compendium catalogs and grants
higher-tier formulas to alchemists when they level up.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(buildIndexCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
