package main

import (
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

// formFlags lets every questionnaire answer be given on the command line.
// Flags override values read from a form file.
type formFlags struct {
	state        string
	zip          string
	ageRange     string
	familyStatus string
	children     int
	others       int
	employment   string
	insurance    string
	hsa          bool
	incomeRange  string
	bigBill      bool
}

func (ff *formFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ff.state, "state", "", "Two-letter state code")
	f.StringVar(&ff.zip, "zip", "", "5-digit ZIP code (used to infer the state when --state is empty)")
	f.StringVar(&ff.ageRange, "age-range", "", "Age range: 18-29, 30-44, 45-64, 65+")
	f.StringVar(&ff.familyStatus, "family-status", "", "Filing status: single, married-joint, married-separate, head-of-household")
	f.IntVar(&ff.children, "children", 0, "Number of qualifying children (0-10)")
	f.IntVar(&ff.others, "other-dependents", 0, "Number of other dependents (0-10)")
	f.StringVar(&ff.employment, "employment", "", "Employment status, e.g. full-time, self-employed, retired")
	f.StringVar(&ff.insurance, "insurance", "", "Coverage: employer, marketplace, medicare, medicaid, military, uninsured")
	f.BoolVar(&ff.hsa, "hsa", false, "Household contributes to a health savings account")
	f.StringVar(&ff.incomeRange, "income-range", "", "Income range, e.g. 50k-75k or 400k-plus")
	f.BoolVar(&ff.bigBill, "big-bill", false, "Also calculate the Big Bill scenario")
}

// apply copies every flag the user set onto form
func (ff *formFlags) apply(cmd *cobra.Command, form *domain.FormData) {
	changed := cmd.Flags().Changed
	if changed("state") {
		form.State = domain.StateCode(ff.state).Normalize()
	}
	if changed("zip") {
		form.ZipCode = ff.zip
	}
	if changed("age-range") {
		form.AgeRange = domain.AgeRange(ff.ageRange)
	}
	if changed("family-status") {
		form.FamilyStatus = domain.FamilyStatus(ff.familyStatus)
	}
	if changed("children") {
		form.NumberOfQualifyingChildren = ff.children
	}
	if changed("other-dependents") {
		form.NumberOfOtherDependents = ff.others
	}
	if changed("employment") {
		form.EmploymentStatus = domain.EmploymentStatus(ff.employment)
	}
	if changed("insurance") {
		form.InsuranceType = domain.InsuranceType(ff.insurance)
	}
	if changed("hsa") {
		form.HasHSA = ff.hsa
	}
	if changed("income-range") {
		form.IncomeRange = domain.IncomeRange(ff.incomeRange)
	}
	if changed("big-bill") {
		form.IncludeBigBill = ff.bigBill
	}
}

// loadForm reads the optional form file, applies flag overrides and validates the result
func (ff *formFlags) loadForm(cmd *cobra.Command, args []string) (domain.FormData, error) {
	parser := config.NewInputParser()

	var form domain.FormData
	if len(args) > 0 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return domain.FormData{}, err
		}
		form = *loaded
	}

	ff.apply(cmd, &form)
	if err := parser.ValidateForm(&form); err != nil {
		return domain.FormData{}, err
	}
	return form, nil
}
