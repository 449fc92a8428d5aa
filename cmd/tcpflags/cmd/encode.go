package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/els0r/tcpflags/cmd/tcpflags/config"
	"github.com/els0r/tcpflags/pkg/results"
	"github.com/els0r/tcpflags/pkg/tcpflags"
	"github.com/els0r/tcpflags/pkg/types"
	"github.com/els0r/telemetry/logging"
	"github.com/spf13/cobra"
)

func newEncodeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "encode NAME...",
		Short: "Compute the flags field value for a list of flag names",
		Long: `Compute the flags field value for a list of flag names

Names are case-insensitive and may be separated by spaces, commas or '|'.
`,
		Example: `  tcpflags encode ACK SYN FIN
  tcpflags encode syn,ack
  tcpflags encode --rfc3540 --short 'N|A'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return encode(cmd.Context(), cfg, cmd.OutOrStdout(), args)
		},
	}
}

func encode(ctx context.Context, cfg *config.Config, out io.Writer, args []string) error {
	flags := cfg.FlagSet()

	names := splitNames(args)
	logging.FromContext(ctx).With("names", names, "flags", flags.String()).Debug("encoding flags")

	value, err := tcpflags.Encode(names, flags)
	if err != nil {
		msg := "failed to encode flags"

		// if the name list couldn't be parsed, point at the offending name
		var prettyErr types.Prettier
		if errors.As(err, &prettyErr) {
			return fmt.Errorf("%s: %w\n%s", msg, tcpflags.ErrInvalidInput, prettyErr.Pretty())
		}
		return fmt.Errorf("%s: %w", msg, err)
	}

	// decoding again yields the names in canonical order
	decoded, err := tcpflags.Decode(value, flags)
	if err != nil {
		return fmt.Errorf("failed to decode value %d: %w", value, err)
	}

	return printEntries(ctx, out, cfg.Format, flags.Width(),
		tcpflags.Table{{Value: value, Flags: decoded}},
		results.OutcolValue,
	)
}

func splitNames(args []string) []string {
	var names []string
	for _, arg := range args {
		names = append(names, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == '|' || unicode.IsSpace(r)
		})...)
	}
	return names
}
