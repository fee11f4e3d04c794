package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/cli"
	"marbl-hq/marlin/pkg/history"
)

var historyFlags struct {
	schema string
	file   string
	limit  int
	since  time.Duration
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded validation runs",
	Long: `Inspect validation runs recorded in the history database.

Runs are recorded by "validate --record" and by the watch daemon when
history is enabled in the configuration.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded validation runs",
	Long: `List recorded validation runs, newest first.

Examples:
  # All recorded runs
  marlin history list

  # Settings runs from the last day
  marlin history list --schema settings --since 24h

  # The last 10 runs for one file, as JSON
  marlin history list --file settings.yaml --limit 10 --format json`,
	RunE: runHistoryList,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)

	historyListCmd.Flags().StringVar(&historyFlags.schema, "schema", "", "filter by dictionary kind: settings, diagnostics")
	historyListCmd.Flags().StringVar(&historyFlags.file, "file", "", "filter by file path")
	historyListCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list (0 for all)")
	historyListCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "only runs more recent than this (e.g. 24h)")
	historyListCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return cli.NewConfigError("history.enabled", "history is disabled")
	}

	if historyFlags.schema != "" &&
		historyFlags.schema != history.SchemaSettings &&
		historyFlags.schema != history.SchemaDiagnostics {
		return fmt.Errorf("unknown schema %q (expected settings or diagnostics)", historyFlags.schema)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	store, err := history.NewSQLiteStore(&cfg.History, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	query := &history.Query{
		Schema: historyFlags.schema,
		File:   historyFlags.file,
		Limit:  historyFlags.limit,
	}
	if historyFlags.since > 0 {
		since := time.Now().Add(-historyFlags.since)
		query.Since = &since
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runs, err := store.List(ctx, query)
	if err != nil {
		return err
	}

	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return err
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, runs)
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSCHEMA\tFILE\tRESULT\tVIOLATIONS")
	for _, run := range runs {
		result := "consistent"
		if !run.Consistent {
			result = "INCONSISTENT"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.CreatedAt.Local().Format(time.RFC3339),
			run.Schema, run.File, result, run.Violations)
	}
	return w.Flush()
}
