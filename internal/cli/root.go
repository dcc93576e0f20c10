package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/dependencies/clock"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
)

var (
	cfg        *Config
	controller *viewstate.Controller
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mtarp",
		Short: "CLI for the MTA RP player portal",
		Long: `mtarp signs in to the MTA RP server and shows your character profile,
achievements and server statistics from the terminal.

The page state (active tab, signed-in session, form buffers) is kept in a
local state file between commands. Passwords are never written to it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			client := authclient.New(authclient.Config{Endpoint: cfg.Endpoint, Timeout: cfg.Timeout})
			controller = viewstate.NewController(client, clock.New(), logger)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "Auth endpoint URL (env: MTARP_AUTH_ENDPOINT)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Auth request timeout, 0 for none")
	rootCmd.PersistentFlags().StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "State file path (env: MTARP_STATE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTabCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// A notification error has already been printed with the command output
		var notified *notificationError
		if !errors.As(err, &notified) {
			NewOutput(cfg.Output, cmd.ErrOrStderr()).PrintError(err)
		}
		os.Exit(1)
	}
}
