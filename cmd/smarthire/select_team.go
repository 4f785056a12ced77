package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jonathan/smarthire/internal/analytics"
	"github.com/jonathan/smarthire/internal/export"
	"github.com/jonathan/smarthire/internal/observability"
	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
	"github.com/spf13/cobra"
)

type selectTeamOptions struct {
	datasetOptions
	filterOptions
	strategy string
	attempts int
	seed     uint64
	out      string
	format   string
}

func newSelectTeamCmd() *cobra.Command {
	o := &selectTeamOptions{}
	cmd := &cobra.Command{
		Use:   "select-team",
		Short: "Auto-select a diverse five-person team",
		Long: `Scores the whole pool against the given filters and assembles a team of up to
five candidates that balances score with category, location and level diversity.

Strategies:
  weighted       Randomized search keeping the best of many attempts (default)
  unique-triple  Deterministic greedy pick favouring unseen attributes`,
		RunE: o.run,
	}

	o.datasetOptions.bind(cmd)
	o.filterOptions.bind(cmd)
	cmd.Flags().StringVarP(&o.strategy, "strategy", "s", "", "Selection strategy: weighted or unique-triple")
	cmd.Flags().IntVar(&o.attempts, "attempts", 0, "Weighted search attempts (default 100)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "Random seed for the weighted search; 0 draws a random one")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write the team export to this file")
	cmd.Flags().StringVarP(&o.format, "format", "f", "json", "Export format: json, csv or xlsx")
	return cmd
}

func (o *selectTeamOptions) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if cmd.Flags().Changed("attempts") {
		cfg.Attempts = o.attempts
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}

	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = selection.NewSeededRand(cfg.Seed)
	}
	strategy, err := selection.StrategyByName(cfg.Strategy, rng, cfg.Attempts)
	if err != nil {
		return err
	}

	pool, err := loadPool(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	notes := session.NotifierFunc(func(n types.Notification) {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintNotification(n)
	})

	st := session.New(pool, notes)
	if err := o.applyTo(st); err != nil {
		return err
	}

	team := st.AutoSelectTeam(strategy)
	printer.PrintTeam(team, analytics.Explain(team))

	if o.out == "" {
		return nil
	}

	payload, err := st.ExportTeam(time.Now())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, payload); err != nil {
		return err
	}
	if format == export.FormatJSON {
		if err := schemas.ValidateTeamExport(buf.Bytes()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: export does not match its schema: %v\n", err)
		}
	}
	if err := os.WriteFile(o.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Team written to %s\n", o.out)
	return nil
}
