// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"screenwave/internal/config"
	"screenwave/internal/httputil"
	"screenwave/internal/logging"
	"screenwave/internal/resolve"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON      bool
	flagPick      bool
	flagPlay      bool
	flagPlayer    string
	flagWriteInfo string
	flagWorkers   int
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// logger is configured from cfg in loadConfig.
var logger = logrus.NewEntry(logrus.StandardLogger())

var rootCmd = &cobra.Command{
	Use:   "screenwave [url...]",
	Short: "Resolve Screenwave Media videos into playable formats",
	Long: `Screenwave resolves Screenwave Media player URLs and the Cinemassacre and
TeamFourStar pages that embed them into a title, metadata and a ranked list
of playable formats.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              resolveRun,
	SilenceUsage:      true,
}

// Execute runs the root command. Interrupts cancel in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagPick, "pick", "p", false, "Choose a format interactively and print its URL")
	rootCmd.PersistentFlags().BoolVar(&flagPlay, "play", false, "Play the best (or picked) format")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Media player: mpv | vlc | iina | celluloid")
	rootCmd.PersistentFlags().StringVarP(&flagWriteInfo, "write-info", "w", "", "Write <title>.info.json files to this directory")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Concurrent resolutions when several URLs are given")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyFlags(cfg)

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = logging.Setup(cfg)
	return nil
}

func applyFlags(c *config.Config) {
	if flagPlayer != "" {
		c.Player = flagPlayer
	}
	if flagJSON {
		c.Output = "json"
	}
	if flagWriteInfo != "" {
		c.InfoDir = flagWriteInfo
	}
	if flagWorkers > 0 {
		c.Workers = flagWorkers
	}
	if flagDebug {
		c.Debug = true
	}
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func newResolver() *resolve.Resolver {
	client := httputil.NewClient(cfg.Timeout())
	fetcher := httputil.NewFetcher(client, cfg.UserAgent, logger)
	return resolve.New(fetcher, logger)
}
