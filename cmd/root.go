package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nlnsaoadc/go-coingecko/coingecko"
	"github.com/nlnsaoadc/go-coingecko/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *coingecko.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coingecko",
	Short: "Query cryptocurrency market data from CoinGecko",
	Long: `coingecko is a CLI for the CoinGecko v3 API: current prices, market
listings, trending coins and global market statistics.

The public API needs no credentials; an API key from the config file is
stored for future authenticated endpoints.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(pingCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create API client
	opts := []coingecko.Option{
		coingecko.WithLogger(logger),
	}
	if cfg.API.Key != "" {
		opts = append(opts, coingecko.WithKey(cfg.API.Key))
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, coingecko.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.FailSilently {
		opts = append(opts, coingecko.WithFailSilently())
	}
	client = coingecko.New(opts...)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check CoinGecko API server status",
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	pong, err := client.Ping(context.Background())
	if err != nil {
		return err
	}
	if pong == nil {
		fmt.Println("No response from the API.")
		return nil
	}

	fmt.Println(pong.GeckoSays)
	return nil
}
