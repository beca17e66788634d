// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"firestige.xyz/rcg/internal/config"
	"firestige.xyz/rcg/pkg/log"
	"firestige.xyz/rcg/pkg/rcg"
)

var (
	// Global flags
	configFile string
	logLevel   string

	// loaded by the persistent pre-run of every command
	globalConfig *config.GlobalConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rcg",
	Short: "rcg - RoboCup soccer simulator game log decoder",
	Long: `rcg decodes RoboCup soccer simulator game logs (.rcg) of every wire
generation: binary v1, v2, v3 and text v4, v5.

Features:
  - Header probing: the log generation is detected from the stream
  - Output sinks: text, jsonl, yaml, sqlite, re-encoded rcg
  - Conversion between any two generations
  - Decode statistics and validation for CI pipelines`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel the command context, which stops batch jobs.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (default: built-in defaults and RCG_* environment)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level override (trace/debug/info/warn/error)")

	// Add subcommands
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and installs the process logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.ValidateAndApplyDefaults(); err != nil {
			return err
		}
	}
	if err := log.Init(cfg.Log.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	globalConfig = cfg
	return nil
}

// parserOptions builds parser options from the decoder section, then applies
// command-line overrides.
func parserOptions(cfg *config.GlobalConfig, extra ...rcg.Option) ([]rcg.Option, error) {
	opts, err := cfg.Decoder.ParserOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, rcg.WithLogger(log.GetLogger()))
	return append(opts, extra...), nil
}

// openInput opens a log file; "-" and "" read standard input.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
