package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/config"
	"github.com/pable/golfstats/internal/logger"
	"github.com/pable/golfstats/internal/model"
	"github.com/pable/golfstats/internal/report"
	"github.com/pable/golfstats/internal/storage"
)

var (
	dbPath     string
	configPath string
	logLevel   string

	cfg *config.Config
	lg  = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "golfstats",
	Short: "Golf shot analytics",
	Long:  "Import recorded rounds and shots, then compute distance statistics, distributions, trends and weaknesses.",

	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { lg.Sync() },
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	home := filepath.Join(mustUserHome(), ".golfstats")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join(home, "golfstats.db"), "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(home, "config.yaml"), "path to YAML config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(shotsCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(weaknessesCmd)
	rootCmd.AddCommand(clubsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

// setup loads the config and logger. Flags win over config values.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c

	if !cmd.Flags().Changed("db") && cfg.DBPath != "" {
		dbPath = cfg.DBPath
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	l, err := logger.New(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	lg = l.With("cmd", cmd.Name())
	lg.Debug("config loaded", "config", configPath, "db", dbPath, "units", cfg.Units)
	return nil
}

func units() report.Units { return report.ParseUnits(cfg.Units) }

// openStore opens the database, creating its directory if needed.
func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadAll returns every non-ignored shot and every round.
func loadAll(db *storage.DB) ([]model.Shot, []model.Round, error) {
	shots, err := db.ShotsForAnalytics()
	if err != nil {
		return nil, nil, fmt.Errorf("load shots: %w", err)
	}
	rounds, err := db.AllRounds()
	if err != nil {
		return nil, nil, fmt.Errorf("load rounds: %w", err)
	}
	lg.Debug("data loaded", "shots", len(shots), "rounds", len(rounds))
	return shots, rounds, nil
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
