package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConstruction(t *testing.T) {
	assert.Equal(t, "1234.56", NewMoney(1234.56).String())
	assert.Equal(t, "0.00", Zero().String())

	m, err := NewMoneyFromString("99.999")
	require.NoError(t, err)
	assert.Equal(t, "100.00", m.Round().String())

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100.50)
	b := NewMoney(25.25)

	assert.Equal(t, "125.75", a.Add(b).String())
	assert.Equal(t, "75.25", a.Sub(b).String())
	assert.Equal(t, "201.00", a.Mul(decimal.NewFromInt(2)).String())
	assert.True(t, a.GreaterThanOrEqual(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Sub(a).Sub(b).IsNegative())
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "$0.00"},
		{12.3, "$12.30"},
		{999, "$999.00"},
		{1000, "$1,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-1234.5, "-$1,234.50"},
		{-12, "-$12.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewMoney(tt.value).Format())
	}
}

func TestMoneyFromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(42.424242)
	assert.Equal(t, "42.42", NewMoneyFromDecimal(d).Round().String())
}
