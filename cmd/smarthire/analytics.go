package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/smarthire/internal/analytics"
	"github.com/jonathan/smarthire/internal/observability"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/spf13/cobra"
)

type analyticsOptions struct {
	datasetOptions
	filterOptions
	team   []int
	asJSON bool
}

func newAnalyticsCmd() *cobra.Command {
	o := &analyticsOptions{}
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show candidate distributions and team insights",
		Long: `Counts candidates by category, experience level, location and skill.

The counted candidates are the team when --team is given, otherwise the filtered
candidates when any filter is set, otherwise the whole pool.`,
		RunE: o.run,
	}

	o.datasetOptions.bind(cmd)
	o.filterOptions.bind(cmd)
	cmd.Flags().IntSliceVar(&o.team, "team", nil, "Candidate ids on the team, e.g. --team 1,4,7")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func (o *analyticsOptions) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	pool, err := loadPool(cfg)
	if err != nil {
		return err
	}

	st := session.New(pool, nil)
	if err := o.applyTo(st); err != nil {
		return err
	}
	for _, id := range o.team {
		if _, ok := st.Candidate(id); !ok {
			return fmt.Errorf("candidate %d not found", id)
		}
		if !st.IsSelected(id) {
			st.ToggleSelect(id)
		}
	}

	report := analytics.Build(st)

	if o.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintAnalytics(report)
	if len(o.team) > 0 {
		printer.PrintTeam(st.TeamScored(), report.Insights)
	}
	return nil
}
