package market

import "github.com/shopspring/decimal"

var (
	// Leverage is fixed for the Nikkei 225 CFD.
	Leverage = decimal.NewFromInt(10)

	// DefaultLossCutWidth is the distance in yen from the order price to the
	// stop-out trigger when the user leaves it blank.
	DefaultLossCutWidth = decimal.NewFromInt(2139)

	// DefaultQuantity is the lot size per ladder order.
	DefaultQuantity = decimal.RequireFromString("0.1")
)

// MaxOrders bounds the ladder length a single plan may generate.
const MaxOrders = 1000
