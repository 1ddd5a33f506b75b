// Package main provides the bm CLI entry point.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Cult-of-sam/Bookmark-Manager/internal/bookmark"
	"github.com/Cult-of-sam/Bookmark-Manager/internal/config"
	"github.com/Cult-of-sam/Bookmark-Manager/internal/dispatch"
	"github.com/Cult-of-sam/Bookmark-Manager/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags. Only flags set explicitly override the configuration.
var (
	storeFile   string
	outputFile  string
	logLevel    string
	atomicWrite bool
)

// settings is the resolved configuration, set before any subcommand runs.
var settings *config.Config

// errConfig marks configuration failures for exit code selection.
var errConfig = errors.New("configuration error")

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "bm",
	Short: "Maintain a list of named bookmark offsets",
	Long: `bm keeps a small list of named bookmarks, each a name and a numeric offset,
in a YAML file.

  bm add --name intro --offset 12.5    # add or update
  bm query --name intro                # print the bookmark
  bm remove --name intro               # delete and print the bookmark

The file is kept sorted by offset with at most one entry per name.
Defaults can be set in ~/.config/bm/config.yml or with BM_FILE,
BM_OUTPUT_FILE, BM_ATOMIC_WRITE and BM_LOG_LEVEL (a .env file in the
current directory is read too).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bookmark.NewError(bookmark.KindUsage, "bm", bookmark.ErrMissingOperation)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeFile, "file", "f", config.DefaultFile, "The file to read/write to")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", config.DefaultOutputFile, "The file to write the output to (- for stdout)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&atomicWrite, "atomic", false, "Replace the store file via a temporary file and rename")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return bookmark.NewError(bookmark.KindUsage, cmd.CommandPath(), err)
	})
	rootCmd.Version = Version
}

// loadSettings resolves the configuration and installs the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = storeFile
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = outputFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("atomic") {
		cfg.AtomicWrite = atomicWrite
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if cfg.File == "" {
		return bookmark.UsageErrorf("--file must not be empty")
	}
	slog.SetDefault(newLogger(os.Stderr, level))

	settings = cfg
	slog.Debug("Configuration loaded", "file", cfg.File, "output", cfg.OutputFile, "atomic", cfg.AtomicWrite)
	return nil
}

// newDispatcher builds a dispatcher over the configured store.
func newDispatcher(cmd *cobra.Command) *dispatch.Dispatcher {
	logger := slog.Default()
	return &dispatch.Dispatcher{
		Store: store.New(settings.File, store.Options{
			AtomicWrite: settings.AtomicWrite,
			Logger:      logger,
		}),
		OutputPath: settings.OutputFile,
		Stdout:     cmd.OutOrStdout(),
		Logger:     logger,
	}
}

// run dispatches one request from a subcommand.
func run(cmd *cobra.Command, req dispatch.Request) error {
	_, err := newDispatcher(cmd).Run(req)
	return err
}
