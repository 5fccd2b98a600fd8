package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/aggregator"
	"github.com/pable/golfstats/internal/report"
	"github.com/pable/golfstats/internal/storage"
)

var dashboardWatch bool

// watchDebounce coalesces the burst of writes one import produces.
const watchDebounce = 500 * time.Millisecond

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the unfiltered overview of all shots",
	Long: `Show totals, headline rates, club usage, club distances, the recent-vs-prior
trend and the top weaknesses across every non-ignored shot.

With --watch the dashboard is redrawn whenever another process commits to the
database, e.g. an import from another terminal.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVarP(&dashboardWatch, "watch", "w", false, "redraw when the database changes")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	render := func() error { return renderDashboard(db) }
	if err := render(); err != nil {
		return err
	}
	if !dashboardWatch {
		return nil
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchDB(ctx, db, render)
}

func renderDashboard(db *storage.DB) error {
	shots, rounds, err := loadAll(db)
	if err != nil {
		return err
	}
	report.PrintDashboard(os.Stdout, aggregator.Dashboard(shots, rounds), units())
	return nil
}

// watchDB calls render after another process commits to the database at
// dbPath. File events only arm the debounce; a redraw happens when db's
// data version has moved since the last one. It runs until ctx is
// cancelled. A failed render is logged and watching continues.
func watchDB(ctx context.Context, db *storage.DB, render func() error) error {
	version, err := db.DataVersion()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// SQLite commits land in the -wal side file, so watch the directory.
	dir, base := filepath.Dir(dbPath), filepath.Base(dbPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	lg.Info("watching for changes", "db", dbPath)

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if name != base && name != base+"-wal" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer = time.After(watchDebounce)

		case <-timer:
			timer = nil
			v, err := db.DataVersion()
			if err != nil {
				lg.Error("check data version", "err", err)
				continue
			}
			if v == version {
				lg.Debug("file event without a commit, skipping redraw")
				continue
			}
			version = v
			fmt.Fprintf(os.Stdout, "\n=== %s ===\n", time.Now().Format("15:04:05"))
			if err := render(); err != nil {
				lg.Error("redraw failed", "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			lg.Error("watcher error", "err", err)
		}
	}
}
