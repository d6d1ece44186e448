// Package cmd wires the CLI commands around the practice engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apratap/adept/internal/achievements"
	"github.com/apratap/adept/internal/llm"
	"github.com/apratap/adept/internal/questiongen"
	"github.com/apratap/adept/internal/session"
	"github.com/apratap/adept/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adept",
	Short: "Adaptive mastery practice engine",
	Long:  "Adept tracks per-concept mastery, schedules spaced reviews, and plans adaptive practice sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADEPT_DB env var)")
	rootCmd.PersistentFlags().String("learner", "default", "Learner id to act as")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADEPT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger() *zap.Logger {
	if os.Getenv("ADEPT_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openService opens the store and assembles the engine. When no LLM
// provider is configured the planner runs on local fallback questions.
func openService(cmd *cobra.Command) (*session.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	logger := newLogger()

	var gen questiongen.Generator
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err := llm.NewProvider(cmd.Context(), cfg, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to locally generated questions.")
			gen = questiongen.NewFallback()
		} else {
			gen = questiongen.New(provider, questiongen.DefaultConfig())
		}
	} else {
		gen = questiongen.NewFallback()
	}

	planner := session.NewPlanner(gen, logger)
	tracker := achievements.NewTracker(achievements.DefaultCatalog(), st.Achievements(), logger)
	return session.NewService(st, planner, tracker, logger), st, nil
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	return id
}
