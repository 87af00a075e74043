// Package root contains the root command for the application
package root

import (
	"gsd/a2z-flashing/internal/config"
	"gsd/a2z-flashing/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun
	Cfg *config.Config

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "a2z-flashing",
		Short: "Convert tabular financial exports to the A2Z Flashing format.",
		Long: `a2z-flashing converts CSV and Excel financial exports into the
normalized five-column A2Z Flashing transaction file for downstream
accounting ingestion.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to a2z-flashing!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
		},
	}
)

// Init registers the persistent flags on the root command
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetLogger returns the shared logger wrapped in the logging abstraction
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
