// Package cli implements triviactl, the operator tool for migrations and imports.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/logging"
)

var (
	envFile  string
	logLevel string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "triviactl",
	Short: "Operate the trivia API database",
	Long: `triviactl applies schema migrations and imports questions
from the Open Trivia DB into the trivia database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not load %s: %v\n", envFile, err)
			}
		}
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
		logger = logging.New("triviactl", env, logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "configs/.env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
