package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"marbl-hq/marlin/pkg/cli"
	"marbl-hq/marlin/pkg/history"
	"marbl-hq/marlin/pkg/schema/validator"
)

// validateFunc parses one file and runs a consistency check on it.
type validateFunc func(path string, logger *slog.Logger) (*validator.Result, error)

// runValidation is the shared body of the validate subcommands. It
// checks every file, prints a report per file, optionally records each
// run, and returns an error when any file is inconsistent.
func runValidation(cmd *cobra.Command, schema string, files []string, validate validateFunc) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	format, err := cli.ParseOutputFormat(validateFlags.format)
	if err != nil {
		return err
	}
	formatter := cli.NewFormatter(format)

	var store history.Store
	if validateFlags.record {
		if !cfg.History.Enabled {
			return cli.NewConfigError("history.enabled", "--record requires history to be enabled")
		}
		sqlStore, err := history.NewSQLiteStore(&cfg.History, logger)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var inconsistent []string
	for _, file := range files {
		res, err := validate(file, logger)
		if err != nil {
			return cli.NewCommandError("validate "+schema, err)
		}

		report := cli.NewReport(schema, file, res)
		if err := formatter.FormatTo(os.Stdout, report); err != nil {
			return err
		}

		if !res.Consistent {
			inconsistent = append(inconsistent, file)
			logger.Error("dictionary is inconsistent",
				"schema", schema,
				"file", file,
				"violations", cli.SummarizeKinds(res.Violations),
			)
		}

		if store != nil {
			run := history.NewRun(schema, file, res)
			if err := store.Record(ctx, run); err != nil {
				return err
			}
		}
	}

	if len(inconsistent) > 0 {
		return &cli.InconsistentError{Files: inconsistent}
	}

	return nil
}
