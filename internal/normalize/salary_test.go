package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobharvest-automation/internal/models"
)

func TestSalaryRange(t *testing.T) {
	got := Salary("$65 - $75 AUD / hour")

	require.NotNil(t, got.Min)
	require.NotNil(t, got.Max)
	assert.Equal(t, 65.0, *got.Min)
	assert.Equal(t, 75.0, *got.Max)
	assert.Equal(t, "AUD", got.Currency)
	assert.Equal(t, models.PeriodHourly, got.Period)
}

func TestSalarySingleValue(t *testing.T) {
	got := Salary("$80,000 per annum")

	require.NotNil(t, got.Min)
	require.NotNil(t, got.Max)
	assert.Equal(t, 80000.0, *got.Min)
	assert.Equal(t, 80000.0, *got.Max)
	assert.Equal(t, models.PeriodYearly, got.Period)
}

func TestSalaryKSuffix(t *testing.T) {
	got := Salary("$75k - $90k + super")

	require.NotNil(t, got.Min)
	assert.Equal(t, 75000.0, *got.Min)
	assert.Equal(t, 90000.0, *got.Max)
}

func TestSalaryDisqualifierPhrase(t *testing.T) {
	//currency symbol present but the phrase is generic, not a figure
	got := Salary("great benefits, salary sacrifice available, $0 joining fee")

	assert.Nil(t, got.Min)
	assert.Nil(t, got.Max)
}

func TestSalaryEmpty(t *testing.T) {
	got := Salary("")

	assert.Nil(t, got.Min)
	assert.Nil(t, got.Max)
	assert.Equal(t, "AUD", got.Currency)
	assert.Equal(t, models.PeriodYearly, got.Period)
}

func TestSalaryReversedRange(t *testing.T) {
	got := Salary("$90 - $70 per hour")

	require.NotNil(t, got.Min)
	assert.Equal(t, 70.0, *got.Min)
	assert.Equal(t, 90.0, *got.Max)
}

func TestSalaryPeriods(t *testing.T) {
	tests := []struct {
		raw    string
		period models.SalaryPeriod
	}{
		{"$300 per day", models.PeriodDaily},
		{"$1,500 per week", models.PeriodWeekly},
		{"$9,000 / month", models.PeriodMonthly},
		{"$95,000 a year", models.PeriodYearly},
		{"$42.50 per hour", models.PeriodHourly},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Salary(tt.raw)
			assert.Equal(t, tt.period, got.Period)
			require.NotNil(t, got.Min)
		})
	}
}
