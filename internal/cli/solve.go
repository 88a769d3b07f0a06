package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dptrace/problem"
)

// solveOpts are the per-invocation flags shared by solve and play.
type solveOpts struct {
	format             string
	steps              bool
	maxCities          int
	noImprovementSteps bool
	earlyExit          bool
}

// bindEngineFlags registers the engine tuning flags on cmd.
func bindEngineFlags(cmd *cobra.Command, opts *solveOpts) {
	cmd.Flags().IntVar(&opts.maxCities, "max-cities", 0, "largest tsp instance to accept (default from config, else 16)")
	cmd.Flags().BoolVar(&opts.noImprovementSteps, "all-steps", false, "bellman-ford: also record relaxations that change nothing")
	cmd.Flags().BoolVar(&opts.earlyExit, "early-exit", false, "bellman-ford: stop after a pass without relaxations")
}

// resolveSettings merges cfg with the flags the user actually set.
func resolveSettings(cmd *cobra.Command, cfg Config, opts *solveOpts) problem.Settings {
	s := cfg.settings()
	if cmd.Flags().Changed("max-cities") {
		s.MaxCities = opts.maxCities
	}
	if cmd.Flags().Changed("all-steps") {
		s.NoImprovementSteps = opts.noImprovementSteps
	}
	if cmd.Flags().Changed("early-exit") {
		s.EarlyExit = opts.earlyExit
	}
	return s
}

func newSolveCmd(cfg *Config) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a problem document and print the result",
		Long: `Solve loads a YAML or JSON problem document, runs its engine and prints
the answer. With --steps every recorded step is printed as a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cfg.Format
			if cmd.Flags().Changed("format") {
				format = opts.format
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			sol, err := solveFile(cmd.Context(), args[0], resolveSettings(cmd, *cfg, &opts))
			if err != nil {
				return err
			}
			return writeSolution(cmd.OutOrStdout(), sol, format, opts.steps)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, yaml, json")
	cmd.Flags().BoolVarP(&opts.steps, "steps", "s", false, "print every step (text format)")
	bindEngineFlags(cmd, &opts)

	return cmd
}

func newPlayCmd(cfg *Config) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Step through a solved problem interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := solveFile(cmd.Context(), args[0], resolveSettings(cmd, *cfg, &opts))
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewPlayerModel(sol), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
	bindEngineFlags(cmd, &opts)

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check problem documents without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			w := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				inst, err := loadInstance(path)
				if err != nil {
					printError(w, "%s: %v", path, err)
					failed++
					continue
				}
				logger.Debug("Validated", "path", path, "kind", inst.Kind())
				printSuccess(w, "%s: %s %q", path, inst.Kind(), inst.Name())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
			}
			return nil
		},
	}
}

// loadInstance reads and decodes the document at path.
func loadInstance(path string) (problem.Instance, error) {
	doc, err := problem.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return problem.Decode(doc)
}

// solveFile loads, decodes and solves the document at path.
func solveFile(ctx context.Context, path string, s problem.Settings) (problem.Solution, error) {
	logger := loggerFromContext(ctx)
	logger.Debug("Loading problem", "path", path)

	inst, err := loadInstance(path)
	if err != nil {
		return problem.Solution{}, err
	}

	prog := newProgress(logger)
	sol, err := inst.Solve(s)
	if err != nil {
		return problem.Solution{}, fmt.Errorf("%s %q: %w", inst.Kind(), inst.Name(), err)
	}
	prog.done("Solved", "kind", inst.Kind(), "steps", len(sol.Frames))

	return sol, nil
}

// writeSolution prints sol to w in format.
func writeSolution(w io.Writer, sol problem.Solution, format string, steps bool) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sol); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	}

	fmt.Fprint(w, renderSummary(sol))
	if !steps {
		return nil
	}
	for i, f := range sol.Frames {
		fmt.Fprintln(w)
		fmt.Fprint(w, renderFrame(f, i, len(sol.Frames)))
	}
	return nil
}
