package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/billimpact/internal/compare"
)

func compareCmd(a *app) *cobra.Command {
	var (
		ff     formFlags
		base        string
		format      string
		withResults bool
	)

	cmd := &cobra.Command{
		Use:   "compare [form-file]",
		Short: "Compare Current Law with the Big Bill for one household",
		Long: `Compare the two policy scenarios side by side.

Examples:
  billimpact compare household.yaml
  billimpact compare --state CA --income-range 100k-150k --base big-bill --format csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := ff.loadForm(cmd, args)
			if err != nil {
				return err
			}

			engine, err := a.loadEngine()
			if err != nil {
				return err
			}

			formPath := ""
			if len(args) > 0 {
				formPath = args[0]
			}

			compareEngine := compare.NewCompareEngine(engine)
			compSet, err := compareEngine.Compare(cmd.Context(), form, compare.CompareOptions{
				BaseScenarioName: base,
				FormPath:         formPath,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
			case "csv":
				data, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprint(out, data)
			case "json":
				data, err := (&compare.JSONFormatter{Pretty: true, IncludeResults: withResults}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
			case "compact":
				fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(compSet))
			default:
				return fmt.Errorf("unsupported format: %s (use table, csv, json or compact)", format)
			}
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVar(&base, "base", "current-law", "Scenario to compare against (current-law or big-bill)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json, compact)")
	cmd.Flags().BoolVar(&withResults, "with-results", false, "Include each scenario's full results in JSON output")
	return cmd
}
