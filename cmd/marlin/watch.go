package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/cli"
	"marbl-hq/marlin/pkg/config"
	"marbl-hq/marlin/pkg/history"
	"marbl-hq/marlin/pkg/schema"
	"marbl-hq/marlin/pkg/telemetry/metrics"
	"marbl-hq/marlin/pkg/watch"
)

var watchFlags struct {
	settings    []string
	diags       []string
	schedule    string
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate dictionaries as they change",
	Long: `Watch dictionary files and re-validate them on every save.

The watch daemon reacts to filesystem events with a short debounce, so
an editor writing a file in several steps triggers one validation. An
optional cron schedule additionally sweeps all watched files at fixed
intervals. Runs are recorded in the history database when enabled, and
Prometheus metrics are exposed when enabled.

Examples:
  # Watch a settings and a diagnostics file
  marlin watch --settings settings.yaml --diags diagnostics.yaml

  # Sweep everything hourly as well
  marlin watch --settings settings.yaml --schedule "0 * * * *"

  # Expose metrics on a custom address
  marlin watch --diags diagnostics.yaml --metrics-addr 0.0.0.0:9137`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringSliceVar(&watchFlags.settings, "settings", nil, "settings files to watch")
	watchCmd.Flags().StringSliceVar(&watchFlags.diags, "diags", nil, "diagnostics files to watch")
	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron schedule for full sweeps (overrides config)")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "metrics listen address (overrides config)")
}

// watchTarget is one watched dictionary file.
type watchTarget struct {
	schema   string
	path     string
	validate validateFunc
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(watchFlags.settings) == 0 && len(watchFlags.diags) == 0 {
		return fmt.Errorf("at least one --settings or --diags file must be specified")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchFlags.schedule != "" {
		cfg.Watch.Schedule = watchFlags.schedule
	}
	if watchFlags.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddress = watchFlags.metricsAddr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	targets := make(map[string]*watchTarget)
	var paths []string
	for _, path := range watchFlags.settings {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		targets[abs] = &watchTarget{
			schema:   history.SchemaSettings,
			path:     path,
			validate: schema.ValidateSettingsFile,
		}
		paths = append(paths, path)
	}
	for _, path := range watchFlags.diags {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		targets[abs] = &watchTarget{
			schema:   history.SchemaDiagnostics,
			path:     path,
			validate: schema.ValidateDiagnosticsFile,
		}
		paths = append(paths, path)
	}

	var store history.Store
	if cfg.History.Enabled {
		sqlStore, err := history.NewSQLiteStore(&cfg.History, logger)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
	}

	ctx := cli.SetupSignalHandler()

	if collector != nil {
		startMetricsServer(ctx, cfg, collector, logger)
	}

	revalidate := func(ctx context.Context, target *watchTarget) {
		start := time.Now()
		res, err := target.validate(target.path, logger)
		if err != nil {
			logger.Error("validation failed",
				"schema", target.schema,
				"file", target.path,
				"error", err,
			)
			return
		}

		if res.Consistent {
			logger.Info("dictionary is consistent",
				"schema", target.schema,
				"file", target.path,
			)
		} else {
			logger.Error("dictionary is inconsistent",
				"schema", target.schema,
				"file", target.path,
				"violations", cli.SummarizeKinds(res.Violations),
			)
		}

		if collector != nil {
			collector.Validation().ObserveRun(target.schema, res, time.Since(start))
		}

		if store != nil {
			run := history.NewRun(target.schema, target.path, res)
			if err := store.Record(ctx, run); err != nil {
				logger.Error("failed to record run", "error", err)
			}
		}
	}

	sweep := func(ctx context.Context) {
		for _, target := range targets {
			revalidate(ctx, target)
		}
	}

	// Validate everything once at startup.
	sweep(ctx)

	scheduler := watch.NewScheduler(cfg.Watch.Schedule, logger)
	if err := scheduler.Start(ctx, sweep); err != nil {
		return err
	}
	defer scheduler.Stop()

	watcher, err := watch.NewFileWatcher(&watch.FileWatcherConfig{
		Paths:            paths,
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       cfg.Watch.Extensions,
		SkipHidden:       true,
	}, logger)
	if err != nil {
		return err
	}

	return watcher.Watch(ctx, func(changed string) error {
		abs, err := filepath.Abs(changed)
		if err != nil {
			return err
		}
		target, ok := targets[abs]
		if !ok {
			logger.Debug("ignoring change to unwatched file", "path", changed)
			return nil
		}
		revalidate(ctx, target)
		return nil
	})
}

// startMetricsServer serves the Prometheus exposition endpoint in the
// background until the context is cancelled.
func startMetricsServer(ctx context.Context, cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, collector.Handler())

	server := &http.Server{
		Addr:              cfg.Metrics.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server started",
			"address", cfg.Metrics.ListenAddress,
			"path", cfg.Metrics.Path,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
