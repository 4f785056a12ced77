package main

import (
	"fmt"
	"os"

	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	schema  string
	json    string
	dataset string
	export  string
}

func newValidateCmd() *cobra.Command {
	o := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON document against a schema",
		Long: `Validates a candidate dataset (--dataset) or a team export (--export) against
the built-in schemas, or any JSON file against a schema file (--schema with --json).`,
		RunE: o.run,
	}

	cmd.Flags().StringVar(&o.schema, "schema", "", "Path to a JSON Schema file")
	cmd.Flags().StringVar(&o.json, "json", "", "Path to the JSON file checked against --schema")
	cmd.Flags().StringVar(&o.dataset, "dataset", "", "Path to a candidate dataset")
	cmd.Flags().StringVar(&o.export, "export", "", "Path to a JSON team export")
	cmd.MarkFlagsRequiredTogether("schema", "json")
	cmd.MarkFlagsOneRequired("schema", "dataset", "export")
	cmd.MarkFlagsMutuallyExclusive("schema", "dataset", "export")
	return cmd
}

func (o *validateOptions) run(cmd *cobra.Command, _ []string) error {
	var (
		target string
		err    error
	)
	switch {
	case o.schema != "":
		target = o.json
		err = schemas.ValidateJSON(o.schema, o.json)
	case o.dataset != "":
		target = o.dataset
		err = validateFile(o.dataset, schemas.ValidateCandidates)
	default:
		target = o.export
		err = validateFile(o.export, schemas.ValidateTeamExport)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid\n", target)
	return nil
}

func validateFile(path string, check func([]byte) error) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return check(content)
}
