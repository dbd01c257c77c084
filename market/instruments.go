// market/instruments.go
package market

import "github.com/shopspring/decimal"

type InstrumentMeta struct {
	Name        string
	DisplayName string
	Leverage    decimal.Decimal
	MinimumQty  decimal.Decimal // smallest lot per order
}

const JP225 = "JP225"

var Instruments = map[string]InstrumentMeta{
	JP225: {
		Name:        JP225,
		DisplayName: "日経225 CFD",
		Leverage:    Leverage,
		MinimumQty:  DefaultQuantity,
	},
}
