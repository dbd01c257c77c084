package risk

import (
	"github.com/rustyeddy/n225risk/market"
	"github.com/shopspring/decimal"
)

// instrument is the only product this calculator covers.
func instrument() market.InstrumentMeta {
	return market.Instruments[market.JP225]
}

// RequiredMargin is the broker-mandated margin: price × quantity.
func RequiredMargin(price, quantity decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity)
}

// OptionalMargin is the buffer needed to keep the order clear of the loss-cut
// rate once the loss-cut width is applied. It is floored at zero.
//
//	BUY:  (price − width − rate) × quantity × leverage
//	SELL: (rate − (price + width)) × quantity × leverage
func OptionalMargin(dir market.Direction, price, quantity, lossCutRate, lossCutWidth decimal.Decimal) decimal.Decimal {
	var gap decimal.Decimal
	if dir == market.Sell {
		gap = lossCutRate.Sub(price.Add(lossCutWidth))
	} else {
		gap = price.Sub(lossCutWidth).Sub(lossCutRate)
	}
	return decimal.Max(decimal.Zero, gap.Mul(quantity).Mul(instrument().Leverage))
}

// ProfitLoss is the open P/L of one order marked at current.
func ProfitLoss(dir market.Direction, price, current, quantity decimal.Decimal) decimal.Decimal {
	move := current.Sub(price)
	if dir == market.Sell {
		move = move.Neg()
	}
	return move.Mul(quantity).Mul(instrument().Leverage)
}

// Entry computes every figure for a single ladder price.
func Entry(r OrderRange, dir market.Direction, index int, price decimal.Decimal) OrderEntry {
	return OrderEntry{
		Index:          index,
		Price:          price,
		Direction:      dir,
		Amount:         r.Step,
		Quantity:       r.Quantity,
		RequiredMargin: RequiredMargin(price, r.Quantity),
		OptionalMargin: OptionalMargin(dir, price, r.Quantity, r.LossCutRate, r.LossCutWidth),
		ProfitLoss:     ProfitLoss(dir, price, r.CurrentPrice, r.Quantity),
	}
}
