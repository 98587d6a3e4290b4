package server

import (
	"testing"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The oneof tags must accept every enum value the domain defines
func TestStepPayloads_AcceptAllDomainValues(t *testing.T) {
	for _, age := range domain.AllAgeRanges() {
		for _, status := range domain.AllFamilyStatuses() {
			step := &HouseholdStep{AgeRange: age, FamilyStatus: status}
			assert.NoError(t, step.Validate(), "%s/%s", age, status)
		}
	}
	for _, status := range domain.AllEmploymentStatuses() {
		assert.NoError(t, (&EmploymentStep{EmploymentStatus: status}).Validate(), status)
	}
	for _, insurance := range domain.AllInsuranceTypes() {
		assert.NoError(t, (&HealthcareStep{InsuranceType: insurance}).Validate(), insurance)
	}
	for _, r := range domain.AllIncomeRanges() {
		assert.NoError(t, (&IncomeStep{IncomeRange: r}).Validate(), r)
	}
}

func TestNewStepPayload(t *testing.T) {
	for _, step := range Steps {
		payload, err := NewStepPayload(step)
		require.NoError(t, err, step)
		assert.NotNil(t, payload)
	}

	_, err := NewStepPayload("summary")
	var unknown *ErrUnknownStep
	assert.ErrorAs(t, err, &unknown)
}

func TestStepPayloads_Apply(t *testing.T) {
	var form domain.FormData

	(&LocationStep{ZipCode: "10001", State: "ny"}).Apply(&form)
	assert.Equal(t, "10001", form.ZipCode)
	assert.Equal(t, domain.StateNewYork, form.State)

	(&HouseholdStep{AgeRange: domain.Age45To64, FamilyStatus: domain.FamilyHeadOfHousehold, NumberOfQualifyingChildren: 2, NumberOfOtherDependents: 1}).Apply(&form)
	assert.Equal(t, 4, form.HouseholdSize())

	(&HealthcareStep{InsuranceType: domain.InsuranceMarketplace, HasHSA: true}).Apply(&form)
	assert.True(t, form.HasHSA)

	yes := true
	(&IncomeStep{IncomeRange: domain.Income50KTo75K, IncludeBigBill: &yes}).Apply(&form)
	assert.True(t, form.IncludeBigBill)

	// omitted opt-in keeps the earlier answer
	(&IncomeStep{IncomeRange: domain.Income75KTo100K}).Apply(&form)
	assert.True(t, form.IncludeBigBill)
	assert.Equal(t, domain.Income75KTo100K, form.IncomeRange)
}

func TestLocationStep_Validate(t *testing.T) {
	assert.NoError(t, (&LocationStep{ZipCode: "90210"}).Validate())
	assert.NoError(t, (&LocationStep{State: "tx"}).Validate())

	err := (&LocationStep{State: "Texas"}).Validate()
	var validation *ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "state", validation.Field)
}
