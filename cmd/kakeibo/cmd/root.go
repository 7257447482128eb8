// Package cmd provides the kakeibo CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kakeibo/internal/backend"
	"kakeibo/internal/config"
	applog "kakeibo/internal/log"
	"kakeibo/internal/store"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kakeibo",
	Short: "Personal expense tracker",
	Long: `kakeibo records dated expenses with a category and optional memo,
keeps them in a single persisted slot, and derives per-category and
overall totals plus a CSV export.

Example:
  kakeibo add --date 2024-03-01 --category Food --amount 1000 --memo lunch
  kakeibo summary
  kakeibo export | pbcopy
  kakeibo serve`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional for local development
		_ = godotenv.Load()

		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := applog.New(applog.Config{
			Level:     logLevel,
			Component: applog.ComponentCLI,
			Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}),
		})
		applog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}

// openStore wires config, categories, slot backend and store, then loads
// the persisted collection. The returned cleanup releases backend
// resources and must run after the store is no longer used.
func openStore(ctx context.Context) (*store.Store, *config.Config, func(), error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("validate config: %w", err)
	}

	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load categories: %w", err)
	}

	factory := backend.NewFactory(slog.Default())
	result, err := factory.CreateSlot(backend.Config{
		Type:         backend.Type(cfg.SlotBackend),
		SlotName:     cfg.SlotName,
		FilePath:     cfg.SlotFilePath,
		SQLiteDBPath: cfg.SQLiteDBPath,
		BoltDBPath:   cfg.BoltDBPath,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create slot backend: %w", err)
	}

	cleanup := func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				slog.Error("Backend cleanup failed", "error", err)
			}
		}
	}

	st := store.New(result.Slot, categories)
	if err := st.Load(ctx); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("load store: %w", err)
	}

	return st, cfg, cleanup, nil
}
