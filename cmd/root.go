// Package cmd wires the landing site's command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/config"
	"github.com/voiceinvoice/landing/logging"
)

var (
	envFile    string
	verbose    bool
	backendURL string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "VoiceInvoice marketing site",
	Long: `Serves the VoiceInvoice landing, pricing, contact and account pages.

Contact messages are forwarded to the backend's /submit-contact route and the
account page calls /protected with the visitor's session token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var loaded bool
		var err error
		cfg, loaded, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if backendURL != "" {
			cfg.BackendURL = backendURL
		}

		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if !loaded {
			logger.Debug("no env file loaded, using environment", zap.String("path", envFile))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "", "backend base URL (overrides BACKEND_URL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(submitCmd)
}
