package risk

import (
	"github.com/rustyeddy/n225risk/market"
	"github.com/shopspring/decimal"
)

// RawInput is a plan as typed by a user. Every field is free text; Validate
// turns it into an OrderRange.
type RawInput struct {
	StartPrice   string
	EndPrice     string
	Step         string
	Quantity     string // blank → market.DefaultQuantity
	CurrentPrice string
	LossCutRate  string
	LossCutWidth string // blank → market.DefaultLossCutWidth
}

// OrderRange is a validated plan. Build it with Validate or NewOrderRange and
// treat it as a value; nothing in this module mutates one after construction.
type OrderRange struct {
	StartPrice   decimal.Decimal
	EndPrice     decimal.Decimal
	Step         decimal.Decimal
	Quantity     decimal.Decimal
	CurrentPrice decimal.Decimal
	LossCutRate  decimal.Decimal
	LossCutWidth decimal.Decimal
}

func (r OrderRange) Direction() market.Direction {
	return market.DirectionOf(r.StartPrice, r.EndPrice)
}

// OrderEntry is one ladder order with its computed figures.
type OrderEntry struct {
	Index     int // 1-based position in the ladder
	Price     decimal.Decimal
	Direction market.Direction
	Amount    decimal.Decimal // price step allotted to this order
	Quantity  decimal.Decimal

	RequiredMargin decimal.Decimal
	OptionalMargin decimal.Decimal
	ProfitLoss     decimal.Decimal
}

// Margin is required plus optional margin for the entry.
func (e OrderEntry) Margin() decimal.Decimal {
	return e.RequiredMargin.Add(e.OptionalMargin)
}
