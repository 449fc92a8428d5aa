// Package cmd contains the tcpflags command line interface implementation
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/els0r/tcpflags/cmd/tcpflags/config"
	"github.com/els0r/tcpflags/pkg/conf"
	"github.com/els0r/tcpflags/pkg/results"
	"github.com/els0r/tcpflags/pkg/version"
	"github.com/els0r/telemetry/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const helpLong = `tcpflags translates between the decimal TCP flags field recorded by
NetFlow / IPFIX collectors and the names of the flags it contains.

Collectors store the bitwise-OR of the flags seen across all segments of a
flow, e.g.

  19 = ACK SYN FIN

Without arguments, the full mapping table is printed. Use --list to decode a
single value.

RFC 3540 defines an experimental ninth flag, NS, for ECN-nonce concealment
protection. It is rarely if ever used and therefore excluded unless --rfc3540
is provided.
`

// Execute is the main entrypoint and runs the CLI tool
func Execute() error {
	rootCmd, err := newRootCmd(run)
	if err != nil {
		return err
	}
	return rootCmd.Execute()
}

// runFunc is the type of the function that decodes and prints values. If values is
// empty, the full table is printed. It's defined mainly for testing purposes
type runFunc func(ctx context.Context, cfg *config.Config, out io.Writer, values []string) error

const (
	flagRFC3540 = "rfc3540"
	flagShort   = "short"
	flagFormat  = "format"
	flagList    = "list"
)

func newRootCmd(run runFunc) (*cobra.Command, error) {
	cfg := config.New()

	var list string

	rootCmd := &cobra.Command{
		Use:   "tcpflags",
		Short: "Translate NetFlow TCP flags values into flag names",
		Long:  helpLong,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			err := initConfig(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return initLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var values []string
			if cmd.Flags().Changed(flagList) {
				values = []string{list}
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), values)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&list, flagList, "l", "", "decode a single value and print the names of the flags set in it")

	err := registerFlags(rootCmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to register flags: %w", err)
	}

	rootCmd.AddCommand(
		newDecodeCmd(cfg, run),
		newTableCmd(cfg, run),
		newEncodeCmd(cfg),
		newVersionCmd(),
	)

	return rootCmd, nil
}

func registerFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration must not be nil")
	}

	if err := conf.RegisterFlags(cmd); err != nil {
		return err
	}

	pflags := cmd.PersistentFlags()

	pflags.BoolVar(&cfg.RFC3540, flagRFC3540, false, "include the RFC 3540 NS (ECN-nonce) flag")
	pflags.BoolVar(&cfg.Short, flagShort, false, "abbreviate flag names to their first letter")
	pflags.StringVarP(&cfg.Format, flagFormat, "e", results.DefaultFormat,
		"output format: "+strings.Join(results.SupportedFormats, ", "),
	)

	return viper.BindPFlags(pflags)
}

// initConfig reads in config file and ENV variables if set. tcpflags doesn't need one to run
// as a CLI tool. The functionality exists to set defaults such as the output format
func initConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration must not be nil")
	}

	path := viper.GetString(conf.ConfigFile)
	if path != "" {
		viper.SetConfigFile(path)

		err := viper.ReadInConfig()
		if err != nil {
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
	}

	// environment variables take the form TCPFLAGS_RFC3540 or TCPFLAGS_LOGGING_LEVEL
	viper.SetEnvPrefix(conf.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err := viper.Unmarshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	return nil
}

func initLogging() error {
	// log output must never interfere with the decoded values written to stdout
	loggerOpts := []logging.Option{
		logging.WithVersion(version.Short()),
	}

	dst := viper.GetString(conf.LogDestination)
	if dst != "" {
		loggerOpts = append(loggerOpts, logging.WithFileOutput(dst))
	} else {
		loggerOpts = append(loggerOpts, logging.WithOutput(os.Stderr))
	}

	_, err := logging.Init(
		logging.LevelFromString(viper.GetString(conf.LogLevel)),
		logging.Encoding(viper.GetString(conf.LogEncoding)),
		loggerOpts...,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
