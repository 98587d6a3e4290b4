package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/schemas"
)

func validateCmd(a *app) *cobra.Command {
	var resultsFile string

	cmd := &cobra.Command{
		Use:   "validate [reference-file]",
		Short: "Validate reference data or a saved results document",
		Long: `Validate a reference data YAML file (the embedded tables when no file is given).

With --results, also check a saved JSON results document against the published schema.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			loader := config.NewReferenceLoader()

			if len(args) == 1 {
				ref, err := loader.LoadFromFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Reference data %s is valid (data year %d, %d states)\n", args[0], ref.Metadata.DataYear, len(ref.States))
			} else {
				ref, err := loader.Default()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Embedded reference data is valid (data year %d, %d states)\n", ref.Metadata.DataYear, len(ref.States))
			}

			if resultsFile != "" {
				if err := schemas.ValidatePolicyResultsFile(resultsFile); err != nil {
					return err
				}
				a.sugar().Debugw("results document validated", "file", resultsFile)
				fmt.Fprintf(out, "Results document %s matches the schema\n", resultsFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsFile, "results", "", "JSON results document to check against the schema")
	return cmd
}
