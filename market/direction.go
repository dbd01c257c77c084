package market

import "github.com/shopspring/decimal"

type Direction int

const (
	Buy Direction = iota
	Sell
)

func (d Direction) String() string {
	if d == Sell {
		return "SELL"
	}
	return "BUY"
}

// Label is the name shown to users: buying up the ladder or selling down it.
func (d Direction) Label() string {
	if d == Sell {
		return "売り下がり"
	}
	return "買い上がり"
}

// DirectionOf infers the ladder direction. Callers must reject start == end first.
func DirectionOf(start, end decimal.Decimal) Direction {
	if start.LessThan(end) {
		return Buy
	}
	return Sell
}
