package ladder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strs(ps []decimal.Decimal) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestPrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		start, end, step string
		want             []string
	}{
		{"buy_even", "1000", "1010", "5", []string{"1000", "1005", "1010"}},
		{"sell_even", "30000", "29000", "500", []string{"30000", "29500", "29000"}},
		{"buy_truncates_partial", "1000", "1012", "5", []string{"1000", "1005", "1010"}},
		{"sell_truncates_partial", "1000", "988", "5", []string{"1000", "995", "990"}},
		{"step_larger_than_range", "40000", "40050", "100", []string{"40000"}},
		{"step_equals_range", "40000", "40100", "100", []string{"40000", "40100"}},
		{"fractional_step", "100", "101", "0.25", []string{"100", "100.25", "100.5", "100.75", "101"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Prices(d(tt.start), d(tt.end), d(tt.step))
			assert.Equal(t, tt.want, strs(got))
			assert.Equal(t, len(tt.want), Count(d(tt.start), d(tt.end), d(tt.step)))
		})
	}
}

func TestPricesMonotonic(t *testing.T) {
	t.Parallel()

	up := Prices(d("10000"), d("10500"), d("100"))
	require.Len(t, up, 6)
	for i := 1; i < len(up); i++ {
		assert.True(t, up[i].GreaterThan(up[i-1]))
	}

	down := Prices(d("10000"), d("9500"), d("100"))
	require.Len(t, down, 6)
	for i := 1; i < len(down); i++ {
		assert.True(t, down[i].LessThan(down[i-1]))
	}
}

func TestNonPositiveStep(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Count(d("1000"), d("1010"), d("0")))
	assert.Nil(t, Prices(d("1000"), d("1010"), d("-5")))
	assert.True(t, Remainder(d("1000"), d("1010"), d("0")).IsZero())
}

func TestCountIsBounded(t *testing.T) {
	t.Parallel()

	n := Count(d("0"), d("100000000000"), d("0.0001"))
	assert.Greater(t, n, 1000)
}

func TestRemainder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2", Remainder(d("1000"), d("1012"), d("5")).String())
	assert.True(t, Remainder(d("1000"), d("1010"), d("5")).IsZero())
	assert.Equal(t, "2", Remainder(d("1000"), d("988"), d("5")).String())
}
