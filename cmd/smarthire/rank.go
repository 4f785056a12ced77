package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/smarthire/internal/observability"
	"github.com/jonathan/smarthire/internal/ranking"
	"github.com/spf13/cobra"
)

type rankOptions struct {
	datasetOptions
	filterOptions
	limit   int
	explain bool
	asJSON  bool
}

func newRankCmd() *cobra.Command {
	o := &rankOptions{}
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score and list candidates against filters",
		Long:  "Scores every candidate against the given filters, sorts them best first and lists those passing every filter.",
		RunE:  o.run,
	}

	o.datasetOptions.bind(cmd)
	o.filterOptions.bind(cmd)
	cmd.Flags().IntVarP(&o.limit, "limit", "n", 10, "Number of candidates to show")
	cmd.Flags().BoolVar(&o.explain, "explain", false, "Show the score breakdown of each listed candidate")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Print the full ranked list as JSON")
	return cmd
}

func (o *rankOptions) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	filters, err := o.filters()
	if err != nil {
		return err
	}
	pool, err := loadPool(cfg)
	if err != nil {
		return err
	}

	ranked := ranking.Apply(pool, filters)

	if o.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranked); err != nil {
			return fmt.Errorf("failed to encode candidates: %w", err)
		}
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintCandidates(ranked, o.limit)

	if o.explain {
		for i := 0; i < min(o.limit, len(ranked)); i++ {
			c := ranked[i].Candidate
			printer.PrintBreakdown(&c, ranking.Explain(&c, filters))
		}
	}
	return nil
}
