// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the shared flags and the interactive
// entry point.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/toeirei/manytime/internal/config"
	"github.com/toeirei/manytime/internal/core/analysis"
	"github.com/toeirei/manytime/internal/core/ciphertext"
	"github.com/toeirei/manytime/internal/core/export"
	"github.com/toeirei/manytime/internal/core/key"
	"github.com/toeirei/manytime/internal/core/session"
	"github.com/toeirei/manytime/internal/i18n"
	"github.com/toeirei/manytime/internal/logging"
	"github.com/toeirei/manytime/internal/tui"
	"golang.org/x/term"
)

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runTUI is swapped in tests.
var runTUI = tui.Run

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig resolves settings for cmd and applies the ambient ones
// (log level, language).
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return c, fmt.Errorf("error loading config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	if err := logging.SetLevel(c.Log.Level); err != nil {
		logging.Warnf("%v; keeping current level", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
	}
	i18n.Init(c.Language)
	return c, nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// loadAndRecover reads the ciphertexts at path and runs automatic recovery,
// bounded by the configured timeout.
func loadAndRecover(ctx context.Context, c config.Config, path string) (*ciphertext.Set, *key.Key, error) {
	set, err := ciphertext.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if set.Len() < 2 {
		logging.Warnf("only %d ciphertext loaded; automatic recovery needs at least two", set.Len())
	}

	if c.Recover.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Recover.Timeout)
		defer cancel()
	}
	k, err := analysis.RecoverContext(ctx, set.Texts())
	if err != nil {
		return nil, nil, err
	}
	logging.Infof("%s", i18n.T("cli.recovered", k.KnownCount(), k.Len(), set.Len()))
	return set, k, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manytime <ciphertext-file>",
		Short: "Break a reused XOR key (many-time pad) interactively.",
		Long: `manytime reads hex-encoded ciphertexts that were encrypted with the same
XOR key, recovers as much of the key as the space-character heuristic allows,
and opens an editor where typing a plaintext character fixes the key byte for
every message at once.

Ciphertexts are separated by whitespace or newlines. Use "-" to read stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       compositeVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			set, k, err := loadAndRecover(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}

			if !isTerminal(os.Stdout) {
				logging.Warnf("%s", i18n.T("cli.no_tty"))
				return printState(cmd.OutOrStdout(), set, k, c.PlaceholderRune())
			}

			restore, err := logging.ToFile(c.Log.File)
			if err != nil {
				return err
			}
			defer restore()

			sess, err := session.New(set, k,
				session.WithExporter(export.NewWriter(c.PlaceholderRune()), c.Output),
				session.WithClipboard(tui.SystemClipboard{}),
				session.WithMarker(c.PlaceholderRune()),
			)
			if err != nil {
				return err
			}
			return runTUI(sess, isTerminal(os.Stdin))
		},
	}

	applyDefaultFlags(cmd)
	cmd.AddCommand(newRecoverCmd(), newConfigCmd(), newVersionCmd())
	return cmd
}

func applyDefaultFlags(cmd *cobra.Command) {
	defaults := config.Defaults()
	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $XDG_CONFIG_HOME/manytime/manytime.yaml)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.StringP("output", "o", defaults["output"].(string), "Export destination (.zst suffix compresses)")
	pf.String("placeholder", defaults["placeholder"].(string), "Character shown for unknown bytes")
	pf.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	pf.String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")
	pf.String("log.file", "", "Log file used while the TUI is running (default: discard)")
	pf.Duration("recover.timeout", 0, "Abort automatic recovery after this long (0 = no limit)")
}
