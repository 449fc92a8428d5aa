package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/els0r/tcpflags/cmd/tcpflags/config"
	"github.com/els0r/tcpflags/pkg/results"
	"github.com/els0r/tcpflags/pkg/tcpflags"
	"github.com/els0r/telemetry/logging"
	"github.com/spf13/cobra"
)

func newDecodeCmd(cfg *config.Config, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "decode VALUE...",
		Short: "Print the names of the flags set in one or more values",
		Long: `Print the names of the flags set in one or more values

Values are read as decimal numbers unless they carry a 0x, 0b or 0o prefix.
A single value prints the space separated flag names only (same as --list),
several values print one "<value> <flags>" line each.
`,
		Example: `  tcpflags decode 19
  tcpflags decode --rfc3540 0x100 274`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), args)
		},
	}
}

func newTableCmd(cfg *config.Config, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the names of the flags set in every possible value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), nil)
		},
	}
}

// run decodes the provided values or, if there are none, every value
// representable by the configured flag set
func run(ctx context.Context, cfg *config.Config, out io.Writer, values []string) error {
	flags := cfg.FlagSet()

	logger := logging.FromContext(ctx).With("flags", flags.String(), "format", cfg.Format)

	var (
		entries tcpflags.Table
		err     error

		// columns of the plain output format. Other formats always print all columns
		plainCols = []results.OutputColumn{results.OutcolValue, results.OutcolFlags}
	)
	switch len(values) {
	case 0:
		logger.Debug("building flag table")

		entries, err = tcpflags.BuildTable(flags)
		if err != nil {
			return fmt.Errorf("failed to build flag table: %w", err)
		}
	case 1:
		plainCols = []results.OutputColumn{results.OutcolFlags}
		fallthrough
	default:
		logger.With("values", values).Debug("decoding values")

		entries, err = decodeValues(values, flags)
		if err != nil {
			return err
		}
	}

	return printEntries(ctx, out, cfg.Format, flags.Width(), entries, plainCols...)
}

func decodeValues(values []string, flags tcpflags.FlagSet) (tcpflags.Table, error) {
	entries := make(tcpflags.Table, 0, len(values))
	for _, s := range values {
		value, err := tcpflags.ParseValue(s, flags)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q: %w", s, err)
		}
		names, err := tcpflags.Decode(value, flags)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value %d: %w", value, err)
		}
		entries = append(entries, tcpflags.Entry{Value: value, Flags: names})
	}
	return entries, nil
}

func printEntries(ctx context.Context, out io.Writer, format string, width int, entries tcpflags.Table, plainCols ...results.OutputColumn) error {
	var cols []results.OutputColumn
	if format == results.FormatPlain {
		cols = plainCols
	}

	printer, err := results.NewTablePrinter(out, format, cols...)
	if err != nil {
		return fmt.Errorf("failed to create printer: %w", err)
	}
	if err := printer.AddRows(ctx, results.NewRows(entries, width)); err != nil {
		return err
	}
	if err := printer.Print(); err != nil {
		return fmt.Errorf("failed to print results: %w", err)
	}
	return nil
}
