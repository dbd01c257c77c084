// Package ladder generates the entry prices of a laddered order plan.
//
// Prices advance from start toward end by a fixed step. When the step does not
// divide the range the trailing partial step is dropped: end is only included
// when it lies on the grid, and no extra order is placed at end.
package ladder

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxCount = decimal.NewFromInt(math.MaxInt32)

// Count returns how many orders the ladder holds. It returns 0 for a
// non-positive step.
func Count(start, end, step decimal.Decimal) int {
	if !step.IsPositive() {
		return 0
	}
	q, _ := end.Sub(start).Abs().QuoRem(step, 0)
	if q.GreaterThanOrEqual(maxCount) {
		return math.MaxInt32
	}
	return int(q.IntPart()) + 1
}

// Prices returns the ladder in generation order, nearest to start first.
func Prices(start, end, step decimal.Decimal) []decimal.Decimal {
	n := Count(start, end, step)
	if n == 0 {
		return nil
	}
	if end.LessThan(start) {
		step = step.Neg()
	}

	out := make([]decimal.Decimal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.Add(step.Mul(decimal.NewFromInt(int64(i)))))
	}
	return out
}

// Remainder is the partial step left over past the last generated price.
// It is zero when end lies on the grid.
func Remainder(start, end, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return decimal.Zero
	}
	_, r := end.Sub(start).Abs().QuoRem(step, 0)
	return r
}
