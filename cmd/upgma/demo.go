package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TrevorS/upgma"
)

const (
	formatNewick = "newick"
	formatTable  = "table"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// demoNames and demoDistances are a four-sample ultrametric example:
// a and d join at height 1, b and c join at height 1, and both pairs
// join at height 2.
var (
	demoNames     = []string{"a", "b", "c", "d"} //nolint:gochecknoglobals // fixed demo input
	demoDistances = [][]float64{                 //nolint:gochecknoglobals // fixed demo input
		{0, 4, 4, 2},
		{4, 0, 2, 4},
		{4, 2, 0, 4},
		{2, 4, 4, 0},
	}
)

func demoCmd() *cobra.Command {
	var (
		format string
		digits int
		cut    int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Cluster a built-in four-sample matrix",
		Long: `Cluster a built-in four-sample ultrametric distance matrix and print
the resulting tree.

Formats:
  newick  the tree as a single Newick line (default)
  table   one row per merge
  json    the full result as JSON
  yaml    the full result as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := upgma.DefaultConfig()
			cfg.BranchLengthDigits = digits

			result, err := upgma.Cluster(demoDistances, demoNames, cfg)
			if err != nil {
				return fmt.Errorf("cluster demo matrix: %w", err)
			}

			var groups []int
			if cut > 0 {
				groups, err = result.CutCount(cut)
				if err != nil {
					return fmt.Errorf("cut demo tree: %w", err)
				}
			}

			return writeResult(cmd.OutOrStdout(), result, format, groups)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNewick, "output format: newick, table, json or yaml")
	cmd.Flags().IntVar(&digits, "digits", 0, "fractional digits for branch lengths (0 = shortest)")
	cmd.Flags().IntVar(&cut, "cut", 0, "also report a flat clustering into this many groups (ignored by newick)")

	return cmd
}
