package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func californiaFamily() domain.FormData {
	return domain.FormData{
		State:                      domain.StateCalifornia,
		AgeRange:                   domain.Age30To44,
		FamilyStatus:               domain.FamilyMarriedJoint,
		NumberOfQualifyingChildren: 2,
		EmploymentStatus:           domain.EmploymentFullTime,
		InsuranceType:              domain.InsuranceEmployer,
		IncomeRange:                domain.Income100KTo150K,
	}
}

func TestCompareEngine_Compare(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())

	compSet, err := ce.Compare(context.Background(), californiaFamily(), CompareOptions{FormPath: "family.yaml"})
	require.NoError(t, err)

	assert.Equal(t, domain.ScenarioCurrentLaw, compSet.BaseScenarioName)
	assert.Equal(t, "Current Law", compSet.BaseResult.Label)
	assert.True(t, compSet.BaseResult.NetAnnualImpact.Equal(decimal.NewFromInt(17451)))
	assert.Equal(t, "family.yaml", compSet.FormPath)
	assert.Equal(t, "2025-07-01", compSet.LastUpdated)
	assert.True(t, compSet.Income.Equal(decimal.NewFromInt(125000)))

	require.Len(t, compSet.AlternativeResults, 1)
	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "Big Bill", alt.Label)
	assert.True(t, alt.NetAnnualImpact.Equal(decimal.NewFromInt(10693)))
	assert.Equal(t, "-6758", alt.NetDiffFromBase.String())
	assert.Equal(t, "-38.7", alt.NetPctFromBase.String())
	assert.Equal(t, "-86503", alt.TenYearDiffFromBase.String())
	assert.Equal(t, "-6431", alt.TaxDiffFromBase.String())
	assert.Equal(t, "-327", alt.HealthcareDiffFromBase.String())

	require.Len(t, compSet.Categories, 5)
	assert.Equal(t, domain.CategoryFederalTax, compSet.Categories[0].Category)
	assert.Equal(t, "-6431", compSet.Categories[0].Difference.String())
	assert.True(t, compSet.Categories[2].Difference.IsZero(), "state adjustment does not depend on the policy")

	assert.Contains(t, compSet.Recommendations, "Lower Annual Cost: Big Bill saves $6758 per year compared with Current Law")
}

func TestCompareEngine_CompareBigBillBase(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())

	compSet, err := ce.Compare(context.Background(), californiaFamily(), CompareOptions{BaseScenarioName: domain.ScenarioBigBill})
	require.NoError(t, err)

	assert.Equal(t, "Big Bill", compSet.BaseResult.Label)
	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "Current Law", alt.Label)
	assert.Equal(t, "6758", alt.NetDiffFromBase.String())
	assert.Equal(t, "63.2", alt.NetPctFromBase.String())
}

func TestCompareEngine_UnknownBase(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())

	_, err := ce.Compare(context.Background(), domain.FormData{}, CompareOptions{BaseScenarioName: "status-quo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base scenario status-quo not found")
}

func TestCompareEngine_CancelledContext(t *testing.T) {
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ce.Compare(ctx, domain.FormData{}, CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
