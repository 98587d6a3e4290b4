package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/billimpact/internal/output"
	"github.com/rgehrsitz/billimpact/internal/schemas"
)

func calculateCmd(a *app) *cobra.Command {
	var (
		ff       formFlags
		format   string
		verify   bool
		saveForm string
	)

	cmd := &cobra.Command{
		Use:   "calculate [form-file]",
		Short: "Calculate the policy impact for one household",
		Long: `Calculate the annual and multi-year impact for a household.

The form can be read from a YAML or JSON file, given entirely with flags, or both
(flags win). Unanswered questions fall back to the calculator's defaults.

Examples:
  billimpact calculate household.yaml
  billimpact calculate --state TX --income-range 50k-75k --big-bill --format json
  billimpact calculate --zip 10001 --insurance medicare --age-range 65+ --format csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.CheckFormat(format); err != nil {
				return err
			}

			form, err := ff.loadForm(cmd, args)
			if err != nil {
				return err
			}

			engine, err := a.loadEngine()
			if err != nil {
				return err
			}

			results := engine.CalculatePolicyImpact(form)
			a.sugar().Debugw("calculated policy impact",
				"state", form.State, "income", results.Income, "net", results.NetAnnualImpact)

			if verify {
				doc, err := json.Marshal(results)
				if err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}
				if err := schemas.ValidatePolicyResults(doc); err != nil {
					return fmt.Errorf("results failed schema check: %w", err)
				}
			}

			if saveForm != "" {
				if err := output.SaveForm(form, saveForm); err != nil {
					return err
				}
			}

			return output.GenerateReport(cmd.OutOrStdout(), results, format, output.Assumptions(engine.Reference))
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, table, csv, json, html, summary)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check the results against the published JSON schema before printing")
	cmd.Flags().StringVar(&saveForm, "save-form", "", "Write the resolved form to this YAML file")
	return cmd
}
