package main

import (
	"fmt"
	"strconv"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/dataset"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
	"github.com/spf13/cobra"
)

// defaults apply to anything neither the config file nor a flag set.
var defaults = config.Config{
	Dataset:  "candidates.json",
	Strategy: selection.StrategyWeighted,
	Attempts: selection.DefaultAttempts,
	Addr:     ":8080",
	LogLevel: "info",
}

// datasetOptions are the flags shared by every command that reads candidates.
type datasetOptions struct {
	configPath     string
	dataset        string
	validateSchema bool
}

func (o *datasetOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&o.dataset, "dataset", "d", "", "Path to candidates JSON file (default \"candidates.json\")")
	cmd.Flags().BoolVar(&o.validateSchema, "validate-schema", false, "Validate the dataset against its JSON Schema before loading")
}

// resolve loads the config file if given, applies explicitly set flags on
// top and fills the rest from defaults.
func (o *datasetOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = o.dataset
	}
	if cmd.Flags().Changed("validate-schema") {
		cfg.ValidateSchema = o.validateSchema
	}

	cfg = cfg.MergeWithDefaults(defaults)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPool(cfg config.Config) ([]types.Candidate, error) {
	pool, err := dataset.Load(cfg.Dataset, dataset.Options{ValidateSchema: cfg.ValidateSchema})
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	return pool, nil
}

// filterOptions are the dashboard filters as flags.
type filterOptions struct {
	state types.FilterState
}

func (f *filterOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.state.Category, "category", "", "Filter by category (Engineering, Design, Product, Legal, Marketing, Sales, Other)")
	cmd.Flags().StringVar(&f.state.ExperienceLevel, "level", "", "Filter by experience level (Entry, Junior, Mid-Level, Senior)")
	cmd.Flags().StringVar(&f.state.Location, "location", "", "Filter by exact location")
	cmd.Flags().StringVar(&f.state.Skills, "skills", "", "Comma-separated skills; any match passes")
	cmd.Flags().IntVar(&f.state.MinScore, "min-score", 0, "Minimum score (0-100)")
}

// filters returns the validated filter state.
func (f *filterOptions) filters() (types.FilterState, error) {
	if err := f.state.Validate(); err != nil {
		return types.FilterState{}, fmt.Errorf("invalid filters: %w", err)
	}
	return f.state, nil
}

// applyTo sets the filters on a session.
func (f *filterOptions) applyTo(st *session.Store) error {
	filters, err := f.filters()
	if err != nil {
		return err
	}
	st.SetFilter(types.FilterCategory, filters.Category)
	st.SetFilter(types.FilterExperienceLevel, filters.ExperienceLevel)
	st.SetFilter(types.FilterLocation, filters.Location)
	st.SetFilter(types.FilterSkills, filters.Skills)
	st.SetFilter(types.FilterMinScore, strconv.Itoa(filters.MinScore))
	return nil
}
