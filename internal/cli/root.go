// Package cli defines the Cobra command tree for the site binary.
package cli

import (
	"os"
	"time"

	"github.com/nuggetscustoms/site/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const configFileEnvVar = "CONFIG_FILE"

var version = "dev" // set via ldflags at build time

// app carries what every command shares: the flags and the loaded config.
type app struct {
	configPath string
	config     config.Config
}

// NewRootCommand builds the command tree. Running it without a subcommand serves the site.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "nuggets",
		Short: "Nuggets Customs website and commission portal",
		Long: `Serves the Nuggets Customs marketing site, the contact form relay and
the commission portal. Operator subcommands work on the same order store.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runServe,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.GetEnv(configFileEnvVar, ""),
		"YAML config file; environment variables take precedence")

	rootCmd.AddCommand(a.serveCommand())
	rootCmd.AddCommand(a.ordersCommand())
	rootCmd.AddCommand(a.hashSecretCommand())
	return rootCmd
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg
	setupLogging(cfg)
	return nil
}

// setupLogging points the global zerolog logger at a console writer in DEV
// and plain JSON everywhere else.
func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
