package risk

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/n225risk/ladder"
	"github.com/rustyeddy/n225risk/market"
	"github.com/shopspring/decimal"
)

var numberCleaner = strings.NewReplacer(",", "", "，", "", "円", "", "_", "")

// Supported precision window. Decimal arithmetic rescales to the smallest
// exponent involved, so an exponent like 1e-200000000 would stall the ladder.
const (
	minExponent = -8
	maxExponent = 9
)

func inPrecision(d decimal.Decimal) bool {
	e := d.Exponent()
	return e >= minExponent && e <= maxExponent
}

// ParseAmount parses a user-typed number. Thousands separators and a trailing
// 円 are accepted, so "40,000円" reads as 40000. At most 8 decimal places are
// allowed.
func ParseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(numberCleaner.Replace(s)))
	if err != nil {
		return decimal.Zero, err
	}
	if !inPrecision(v) {
		return decimal.Zero, fmt.Errorf("%q is outside the supported precision (exponent %d)", s, v.Exponent())
	}
	return v, nil
}

func parseField(field, s string, fallback *decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		if fallback != nil {
			return *fallback, nil
		}
		return decimal.Zero, invalid(field, ErrInvalidFormat, "value is required")
	}
	v, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, invalid(field, ErrInvalidFormat, "%q is not a number", s)
	}
	return v, nil
}

// Validate parses and checks raw input. It fails on the first problem found and
// never returns a partially filled range.
func Validate(in RawInput) (OrderRange, error) {
	var (
		r   OrderRange
		err error
	)

	fields := []struct {
		name     string
		raw      string
		dst      *decimal.Decimal
		fallback *decimal.Decimal
	}{
		{FieldStartPrice, in.StartPrice, &r.StartPrice, nil},
		{FieldEndPrice, in.EndPrice, &r.EndPrice, nil},
		{FieldStep, in.Step, &r.Step, nil},
		{FieldQuantity, in.Quantity, &r.Quantity, &market.DefaultQuantity},
		{FieldCurrentPrice, in.CurrentPrice, &r.CurrentPrice, nil},
		{FieldLossCutRate, in.LossCutRate, &r.LossCutRate, nil},
		{FieldLossCutWidth, in.LossCutWidth, &r.LossCutWidth, &market.DefaultLossCutWidth},
	}
	for _, f := range fields {
		if *f.dst, err = parseField(f.name, f.raw, f.fallback); err != nil {
			return OrderRange{}, err
		}
	}

	if err := check(r); err != nil {
		return OrderRange{}, err
	}
	return r, nil
}

// NewOrderRange builds a range from numeric values and applies the same checks
// as Validate.
func NewOrderRange(start, end, step, quantity, current, lossCutRate, lossCutWidth decimal.Decimal) (OrderRange, error) {
	r := OrderRange{
		StartPrice:   start,
		EndPrice:     end,
		Step:         step,
		Quantity:     quantity,
		CurrentPrice: current,
		LossCutRate:  lossCutRate,
		LossCutWidth: lossCutWidth,
	}
	if err := check(r); err != nil {
		return OrderRange{}, err
	}
	return r, nil
}

func check(r OrderRange) error {
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{FieldStartPrice, r.StartPrice},
		{FieldEndPrice, r.EndPrice},
		{FieldStep, r.Step},
		{FieldQuantity, r.Quantity},
		{FieldCurrentPrice, r.CurrentPrice},
		{FieldLossCutRate, r.LossCutRate},
		{FieldLossCutWidth, r.LossCutWidth},
	} {
		if !inPrecision(f.v) {
			return invalid(f.name, ErrInvalidFormat, "exponent %d is outside the supported precision", f.v.Exponent())
		}
	}
	if !r.StartPrice.IsPositive() {
		return invalid(FieldStartPrice, ErrInvalidPrice, "must be positive, got %s", r.StartPrice)
	}
	if !r.EndPrice.IsPositive() {
		return invalid(FieldEndPrice, ErrInvalidPrice, "must be positive, got %s", r.EndPrice)
	}
	if r.StartPrice.Equal(r.EndPrice) {
		return invalid(FieldEndPrice, ErrAmbiguousDirection,
			"start and end are both %s; direction cannot be inferred", r.StartPrice)
	}
	if !r.Step.IsPositive() {
		return invalid(FieldStep, ErrInvalidStep, "must be greater than 0, got %s", r.Step)
	}
	if !r.Quantity.IsPositive() {
		return invalid(FieldQuantity, ErrInvalidQuantity, "must be greater than 0, got %s", r.Quantity)
	}
	if minQty := instrument().MinimumQty; r.Quantity.LessThan(minQty) {
		return invalid(FieldQuantity, ErrInvalidQuantity, "minimum lot is %s, got %s", minQty, r.Quantity)
	}
	if r.LossCutWidth.IsNegative() {
		return invalid(FieldLossCutWidth, ErrInvalidLossCutWidth, "must not be negative, got %s", r.LossCutWidth)
	}
	if n := ladder.Count(r.StartPrice, r.EndPrice, r.Step); n > market.MaxOrders {
		return invalid(FieldStep, ErrTooManyOrders,
			"plan generates %d orders, limit is %d; widen the step or narrow the range", n, market.MaxOrders)
	}
	return nil
}
