// Package cli implements the dptrace command-line interface.
//
// # Commands
//
//   - solve:    run a problem document and print the answer (text, yaml, json)
//   - play:     step through the recorded trace interactively
//   - validate: check documents without solving them
//   - generate: write a reproducible random problem document
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/dptrace/config.toml, or from the
// file named by --config. Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the dptrace CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. The loaded Config is shared by pointer
// with the subcommands and filled in by PersistentPreRunE.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
		cfg        = defaultConfig()
	)

	root := &cobra.Command{
		Use:   "dptrace",
		Short: "dptrace records and replays dynamic-programming algorithms step by step",
		Long: `dptrace solves shortest-path (Bellman-Ford, Dijkstra), multistage graph and
travelling-salesman (Held-Karp) problems and records every intermediate table,
so the computation can be printed or stepped through.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, explicit := configPath, cmd.Flags().Changed("config")
			if !explicit {
				path = defaultConfigPath()
			}
			loaded, err := loadConfig(path, explicit)
			if err != nil {
				return err
			}
			cfg = loaded

			level := charmlog.InfoLevel
			if verbose || cfg.Verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if explicit {
				logger.Debug("Loaded config", "path", path)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dptrace %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dptrace/config.toml)")

	root.AddCommand(newSolveCmd(&cfg))
	root.AddCommand(newPlayCmd(&cfg))
	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenerateCmd())

	return root
}
