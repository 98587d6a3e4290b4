package calculation

import (
	"testing"

	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testReference(t *testing.T) *domain.ReferenceData {
	t.Helper()
	ref, err := config.NewReferenceLoader().Default()
	if err != nil {
		t.Fatalf("failed to load reference data: %v", err)
	}
	return ref
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, dec(expected).String(), actual.String(), msgAndArgs...)
}
