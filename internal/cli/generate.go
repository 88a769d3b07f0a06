package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dptrace/builder"
	"github.com/katalvlaran/dptrace/problem"
)

type generateOpts struct {
	format    string
	name      string
	size      int
	seed      int64
	density   float64
	minWeight int64
	maxWeight int64
	stages    []int
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		format:    formatYAML,
		size:      6,
		seed:      1,
		density:   0.3,
		minWeight: 1,
		maxWeight: 20,
		stages:    []int{1, 3, 3, 1},
	}

	cmd := &cobra.Command{
		Use:       "generate <kind>",
		Short:     "Generate a random problem document",
		Long:      `Generate writes a reproducible random problem document for the given kind: bellman-ford, dijkstra, multistage or tsp.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bellman-ford", "dijkstra", "multistage", "tsp"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := problem.ParseKind(args[0])
			if err != nil {
				return err
			}
			if opts.format == formatText {
				return fmt.Errorf("%w: generate writes yaml or json", errBadFormat)
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			doc, err := generate(kind, opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Generated", "kind", kind, "seed", opts.seed)
			return writeDocument(cmd.OutOrStdout(), doc, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: yaml, json")
	cmd.Flags().StringVar(&opts.name, "name", "", "document name (default describes the parameters)")
	cmd.Flags().IntVarP(&opts.size, "size", "n", opts.size, "vertices (graph kinds) or cities (tsp)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "probability of each extra edge")
	cmd.Flags().Int64Var(&opts.minWeight, "min-weight", opts.minWeight, "smallest edge weight or cost")
	cmd.Flags().Int64Var(&opts.maxWeight, "max-weight", opts.maxWeight, "largest edge weight or cost")
	cmd.Flags().IntSliceVar(&opts.stages, "stages", opts.stages, "multistage: vertices per stage")

	return cmd
}

// generate builds a document for kind from opts.
func generate(kind problem.Kind, opts generateOpts) (*problem.Document, error) {
	if opts.maxWeight < opts.minWeight {
		return nil, fmt.Errorf("--max-weight %d is below --min-weight %d", opts.maxWeight, opts.minWeight)
	}
	if opts.minWeight < 0 && kind != problem.KindBellmanFord {
		return nil, fmt.Errorf("%s needs non-negative weights, got --min-weight %d", kind, opts.minWeight)
	}

	name := opts.name
	if name == "" {
		name = fmt.Sprintf("random %s (seed %d)", kind, opts.seed)
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithWeightFn(builder.UniformWeightFn(opts.minWeight, opts.maxWeight)),
	}

	switch kind {
	case problem.KindMultistage:
		p, err := builder.Layered(opts.stages, opts.density, append(bopts, builder.WithIDScheme(builder.OneBasedIDFn))...)
		if err != nil {
			return nil, err
		}
		return problem.MultistageDocument(name, p), nil

	case problem.KindTSP:
		bopts = append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn))
		cost, err := builder.CostMatrix(opts.size, bopts...)
		if err != nil {
			return nil, err
		}
		return problem.TSPDocument(name, builder.Cities(opts.size, bopts...), cost), nil

	default:
		// A path keeps every vertex reachable from the source.
		g, err := builder.BuildGraph(opts.size, append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn)),
			builder.Path(), builder.RandomSparse(opts.density))
		if err != nil {
			return nil, err
		}
		return problem.GraphDocument(kind, name, g, 0), nil
	}
}

// writeDocument encodes doc to w.
func writeDocument(w io.Writer, doc *problem.Document, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
