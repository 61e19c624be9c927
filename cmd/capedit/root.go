package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/capedit/pkg/config"
	"github.com/walteh/capedit/pkg/run"
	"github.com/walteh/capedit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	flagPath      string
	flagTarget    string
	flagSwap      string
	flagPrepend   string
	flagAppend    string
	flagOutput    string
	flagPreset    string
	flagRecursive bool
	flagYes       bool
	flagDebug     bool
)

// newRootCmd creates the capedit root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capedit",
		Short: "Bulk edit .txt files in a directory",
		Long: `capedit performs bulk find/replace plus prepend/append edits across the
.txt files in a directory, in place or mirrored into an output directory.
It will:
1. Scan the directory (optionally recursively) for .txt files
2. Show the file list and ask for confirmation
3. Apply prepend, then replace, then append to each file
4. Report a summary and log any per-file errors`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runRoot,
	}

	addRootFlags(cmd)

	return cmd
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagPath, "path", "", "directory to scan for .txt files")
	f.StringVar(&flagTarget, "target", "", "string to search for (may be empty)")
	f.StringVar(&flagSwap, "swap", "", "replacement string (may be empty)")
	f.StringVar(&flagPrepend, "prepend", "", "text to add at the beginning of each file")
	f.StringVar(&flagAppend, "append", "", "text to add at the end of each file")
	f.BoolVar(&flagRecursive, "recursive", false, "recursively scan subdirectories")
	f.StringVar(&flagOutput, "output", "", "output directory for edited files (default is in-place editing)")
	f.StringVar(&flagPreset, "preset", "", "preset file with default edit values (.yaml or .hcl)")
	f.BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	f.BoolVarP(&flagDebug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := &config.Config{
		Root:      flagPath,
		Target:    flagTarget,
		Swap:      flagSwap,
		Prepend:   flagPrepend,
		Append:    flagAppend,
		Recursive: flagRecursive,
		Output:    flagOutput,
		HasTarget: cmd.Flags().Changed("target"),
		HasSwap:   cmd.Flags().Changed("swap"),
	}

	if flagPreset != "" {
		preset, err := config.LoadPreset(ctx, flagPreset)
		if err != nil {
			return errors.Errorf("loading preset: %w", err)
		}
		cfg.ApplyPreset(preset)
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating arguments: %w", err)
	}

	runner := run.NewRunner(run.Options{
		Config:      cfg,
		Editor:      text.NewEditor(),
		Console:     run.NewUserLogger(ctx),
		Prompt:      os.Stdin,
		Out:         os.Stdout,
		AutoConfirm: flagYes,
		LogDir:      ".",
	})

	// Per-file failures are collected into the error log and reported in the
	// summary; only run-level failures surface here.
	if _, err := runner.Run(ctx); err != nil {
		return errors.Errorf("running edit: %w", err)
	}

	return nil
}
