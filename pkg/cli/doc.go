/*
Package cli provides command-line interface utilities for marlin.

The cli package includes output formatters, command error types, and
signal handling used by the marlin command.

Output Formatting:

Command results are rendered through a Formatter selected by flag:

	formatter := cli.NewFormatter(cli.FormatJSON)
	report := cli.NewReport("settings", path, result)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
