package calculation

import (
	"fmt"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// IRMAAWarningDistance is the threshold for warning status (within $10K of threshold)
	IRMAAWarningDistance = 10000
)

// CalculateIRMAARiskStatus determines the IRMAA position of an income figure.
// Below the first threshold the distance is to that threshold; above it the
// distance is to the next tier, or zero in the top tier.
func CalculateIRMAARiskStatus(income decimal.Decimal, isMarriedFilingJointly bool, mc *MedicareCalculator) domain.IRMAAStatus {
	tiers := mc.Rules.IRMAATiers
	if len(tiers) == 0 {
		return domain.IRMAAStatus{Risk: domain.IRMAARiskSafe, Tier: "None"}
	}

	first := thresholdFor(tiers[0], isMarriedFilingJointly)
	if income.LessThanOrEqual(first) {
		distance := first.Sub(income)
		risk := domain.IRMAARiskSafe
		if distance.LessThanOrEqual(decimal.NewFromInt(IRMAAWarningDistance)) {
			risk = domain.IRMAARiskWarning
		}
		return domain.IRMAAStatus{Risk: risk, Tier: "None", DistanceToThreshold: distance}
	}

	status := domain.IRMAAStatus{Risk: domain.IRMAARiskBreach}
	for i, tier := range tiers {
		threshold := thresholdFor(tier, isMarriedFilingJointly)
		if !income.GreaterThan(threshold) {
			status.DistanceToThreshold = threshold.Sub(income)
			break
		}
		status.Tier = getTierName(i + 1)
		status.MonthlySurcharge = tier.MonthlySurcharge
	}

	return status
}

// getTierName returns a human-readable tier name
func getTierName(tier int) string {
	if tier < 1 {
		return "Unknown"
	}
	return fmt.Sprintf("Tier%d", tier)
}
