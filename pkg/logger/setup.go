package logger

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SetupLogger builds a logger from CLI-level settings
func SetupLogger(logLevel string, logJSON bool) Logger {
	var level LogLevel
	switch logLevel {
	case "debug":
		level = DebugLevel
	case "info":
		level = InfoLevel
	case "warn":
		level = WarnLevel
	case "error":
		level = ErrorLevel
	default:
		level = InfoLevel
	}
	cfg := DefaultConfig()
	cfg.Level = level
	cfg.JSON = logJSON
	return NewLogger(cfg)
}

// GetLoggerConfig reads the logger flags registered on the root command
func GetLoggerConfig(cmd *cobra.Command) (string, bool, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return logLevel, logJSON, nil
}
