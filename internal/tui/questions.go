package tui

import (
	"fmt"
	"strconv"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// question is one prompt within a wizard step. A question with no options
// is answered through the location text input.
type question struct {
	step    Step
	title   string
	options []string
	// selected returns the option index matching the current form, or 0
	selected func(domain.FormData) int
	apply    func(*domain.FormData, int)
	skip     func(domain.FormData) bool
}

func (q question) isText() bool {
	return len(q.options) == 0
}

var ageLabels = map[domain.AgeRange]string{
	domain.Age18To29:  "18 to 29",
	domain.Age30To44:  "30 to 44",
	domain.Age45To64:  "45 to 64",
	domain.Age65AndUp: "65 or older",
}

var familyLabels = map[domain.FamilyStatus]string{
	domain.FamilySingle:          "Single",
	domain.FamilyMarriedJoint:    "Married filing jointly",
	domain.FamilyMarriedSeparate: "Married filing separately",
	domain.FamilyHeadOfHousehold: "Head of household",
}

var employmentLabels = map[domain.EmploymentStatus]string{
	domain.EmploymentFullTime:     "Full-time employee",
	domain.EmploymentPartTime:     "Part-time employee",
	domain.EmploymentSelfEmployed: "Self-employed",
	domain.EmploymentContract:     "Contract or gig work",
	domain.EmploymentUnemployed:   "Unemployed",
	domain.EmploymentRetired:      "Retired",
	domain.EmploymentStudent:      "Student",
	domain.EmploymentUnable:       "Unable to work",
}

var insuranceLabels = map[domain.InsuranceType]string{
	domain.InsuranceEmployer:    "Employer plan",
	domain.InsuranceMarketplace: "ACA marketplace",
	domain.InsuranceMedicare:    "Medicare",
	domain.InsuranceMedicaid:    "Medicaid",
	domain.InsuranceMilitary:    "Military / TRICARE",
	domain.InsuranceUninsured:   "Uninsured",
}

var incomeLabels = map[domain.IncomeRange]string{
	domain.IncomeUnder25K:   "Under $25,000",
	domain.Income25KTo50K:   "$25,000 to $50,000",
	domain.Income50KTo75K:   "$50,000 to $75,000",
	domain.Income75KTo100K:  "$75,000 to $100,000",
	domain.Income100KTo150K: "$100,000 to $150,000",
	domain.Income150KTo200K: "$150,000 to $200,000",
	domain.Income200KTo400K: "$200,000 to $400,000",
	domain.Income400KPlus:   "Over $400,000",
}

var yesNo = []string{"No", "Yes"}

// choice builds a question over an ordered enum and its display labels
func choice[T comparable](step Step, title string, values []T, labels map[T]string,
	get func(domain.FormData) T, set func(*domain.FormData, T)) question {
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = labels[v]
	}
	return question{
		step:    step,
		title:   title,
		options: options,
		selected: func(f domain.FormData) int {
			current := get(f)
			for i, v := range values {
				if v == current {
					return i
				}
			}
			return 0
		},
		apply: func(f *domain.FormData, i int) { set(f, values[i]) },
	}
}

func countOptions() []string {
	options := make([]string, 11)
	for i := range options {
		options[i] = strconv.Itoa(i)
	}
	return options
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// newQuestions returns the wizard prompts in order
func newQuestions() []question {
	return []question{
		{
			step:  StepLocation,
			title: "Where do you live? Enter a 5-digit ZIP code or a state code (blank to skip)",
		},
		choice(StepHousehold, "Your age", domain.AllAgeRanges(), ageLabels,
			func(f domain.FormData) domain.AgeRange { return f.AgeRange },
			func(f *domain.FormData, v domain.AgeRange) { f.AgeRange = v }),
		choice(StepHousehold, "Tax filing status", domain.AllFamilyStatuses(), familyLabels,
			func(f domain.FormData) domain.FamilyStatus { return f.FamilyStatus },
			func(f *domain.FormData, v domain.FamilyStatus) { f.FamilyStatus = v }),
		{
			step:     StepHousehold,
			title:    "Qualifying children under 17",
			options:  countOptions(),
			selected: func(f domain.FormData) int { return f.Children() },
			apply:    func(f *domain.FormData, i int) { f.NumberOfQualifyingChildren = i },
		},
		{
			step:     StepHousehold,
			title:    "Other dependents",
			options:  countOptions(),
			selected: func(f domain.FormData) int { return f.OtherDependents() },
			apply:    func(f *domain.FormData, i int) { f.NumberOfOtherDependents = i },
		},
		choice(StepEmployment, "Employment status", domain.AllEmploymentStatuses(), employmentLabels,
			func(f domain.FormData) domain.EmploymentStatus { return f.EmploymentStatus },
			func(f *domain.FormData, v domain.EmploymentStatus) { f.EmploymentStatus = v }),
		choice(StepHealthcare, "Health coverage", domain.AllInsuranceTypes(), insuranceLabels,
			func(f domain.FormData) domain.InsuranceType { return f.InsuranceType },
			func(f *domain.FormData, v domain.InsuranceType) {
				f.InsuranceType = v
				if !v.SupportsHSA() {
					f.HasHSA = false
				}
			}),
		{
			step:     StepHealthcare,
			title:    "Do you contribute to a health savings account?",
			options:  yesNo,
			selected: func(f domain.FormData) int { return boolIndex(f.HasHSA) },
			apply:    func(f *domain.FormData, i int) { f.HasHSA = i == 1 },
			skip:     func(f domain.FormData) bool { return !f.InsuranceType.SupportsHSA() },
		},
		choice(StepIncome, "Household income", domain.AllIncomeRanges(), incomeLabels,
			func(f domain.FormData) domain.IncomeRange { return f.IncomeRange },
			func(f *domain.FormData, v domain.IncomeRange) { f.IncomeRange = v }),
		{
			step:     StepIncome,
			title:    "Also show the Big Bill scenario?",
			options:  yesNo,
			selected: func(f domain.FormData) int { return boolIndex(f.IncludeBigBill) },
			apply:    func(f *domain.FormData, i int) { f.IncludeBigBill = i == 1 },
		},
	}
}

// parseLocation accepts a ZIP code or a two-letter state code known to the reference data
func parseLocation(input string, knownState func(domain.StateCode) bool) (zip string, state domain.StateCode, err error) {
	switch {
	case input == "":
		return "", "", nil
	case len(input) == 5 && isDigits(input):
		return input, "", nil
	case len(input) == 2:
		code := domain.StateCode(input).Normalize()
		if !knownState(code) {
			return "", "", fmt.Errorf("unknown state code %q", input)
		}
		return "", code, nil
	default:
		return "", "", fmt.Errorf("enter a 5-digit ZIP code or a 2-letter state code")
	}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
