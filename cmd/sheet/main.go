// Package main is the entry point for the sheet CLI and gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/cmd/sheet/client"
	"github.com/KirkDiggler/vop-sheet/internal/config"
)

var (
	envFile    string
	storage    string
	slot       string
	catalogDir string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Character sheet editor",
	Long: `sheet edits a single saved character: fields, abilities, row collections and
catalog-backed pickers. Local commands work on the configured save slot; serve
exposes the same operations over gRPC.

With SHEET_AUTOSAVE=false local changes are not written back.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before the environment")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "storage backend: sqlite, redis or memory (overrides SHEET_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&slot, "slot", "", "save slot name (overrides SHEET_SLOT)")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "directory of catalog files (overrides SHEET_CATALOG_DIR)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(raceCmd)
	rootCmd.AddCommand(talentCmd)
	rootCmd.AddCommand(abilityCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(spellcastingCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the
// default logger
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if storage != "" {
		loaded.Storage = config.Storage(storage)
	}
	if slot != "" {
		loaded.Slot = slot
	}
	if catalogDir != "" {
		loaded.CatalogDir = catalogDir
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.Level(),
	})))

	cfg = loaded
	return nil
}
