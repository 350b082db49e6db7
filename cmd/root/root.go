// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/txn-classify/internal/config"
	"fjacquet/txn-classify/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Cfg is the loaded application configuration, available after PersistentPreRun.
	Cfg *config.Config

	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "txn-classify",
		Short: "Categorize bank statement transactions with a trained text classifier.",
		Long: `txn-classify assigns spending categories to bank and credit-card
transaction descriptions using a TF-IDF + naive Bayes classifier trained from a
human-curated corpus. Low-confidence predictions are surfaced for review and
accepted corrections feed back into the corpus.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to txn-classify!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
			Log = config.NewLogger(cfg)
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
