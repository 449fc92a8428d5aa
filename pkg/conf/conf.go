// Package conf provides shared configuration keys and flag registration for the command line tools
package conf

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFile = "config"

	loggingKey = "logging"

	LogDestination = loggingKey + ".destination"
	LogEncoding    = loggingKey + ".encoding"
	LogLevel       = loggingKey + ".level"
)

// EnvPrefix is prepended to all configuration keys when they are looked up in the environment,
// e.g. TCPFLAGS_LOGGING_LEVEL
const EnvPrefix = "tcpflags"

// Global defaults for command line parameters / arguments
const (
	DefaultLogEncoding = "logfmt"

	// since this is a command line tool, only warnings and errors should be printed by default
	DefaultLogLevel = "warn"
)

// RegisterFlags registers all command line flags shared by every command
func RegisterFlags(cmd *cobra.Command) error {
	pflags := cmd.PersistentFlags()

	pflags.StringP(ConfigFile, "c", "", "path to configuration file")

	pflags.String(LogLevel, DefaultLogLevel, "log level for logger (debug, info, warn, error)")
	pflags.String(LogEncoding, DefaultLogEncoding, "message encoding format for logger (logfmt, json, plain)")
	pflags.String(LogDestination, "", "logging destination file path (empty for stderr)")

	return viper.BindPFlags(pflags)
}
