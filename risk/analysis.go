package risk

import (
	"github.com/rustyeddy/n225risk/ladder"
	"github.com/rustyeddy/n225risk/market"
	"github.com/rustyeddy/n225risk/pkg/id"
	"github.com/shopspring/decimal"
)

// DefaultLossPerPoint is the yen lost per index point per order in
// MaxLossScenario when the caller has no better figure.
var DefaultLossPerPoint = decimal.NewFromInt(100)

// Analysis is the result of one calculation run.
type Analysis struct {
	RunID      string
	Instrument market.InstrumentMeta
	Range      OrderRange
	Direction  market.Direction
	Orders     []OrderEntry

	// Truncated is the partial step past the last order that the ladder
	// dropped; zero when end lies on the step grid.
	Truncated decimal.Decimal

	TotalOrders         int
	TotalAmount         decimal.Decimal
	TotalRequiredMargin decimal.Decimal
	TotalOptionalMargin decimal.Decimal
	TotalProfitLoss     decimal.Decimal
}

// TotalMargin is required plus optional margin over the whole ladder.
func (a Analysis) TotalMargin() decimal.Decimal {
	return a.TotalRequiredMargin.Add(a.TotalOptionalMargin)
}

// AveragePrice is the mean entry price, zero for an empty ladder.
func (a Analysis) AveragePrice() decimal.Decimal {
	if len(a.Orders) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, o := range a.Orders {
		sum = sum.Add(o.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(a.Orders))))
}

// PriceRange is the distance between the highest and lowest entry.
func (a Analysis) PriceRange() decimal.Decimal {
	if len(a.Orders) == 0 {
		return decimal.Zero
	}
	lo, hi := a.Orders[0].Price, a.Orders[0].Price
	for _, o := range a.Orders[1:] {
		lo = decimal.Min(lo, o.Price)
		hi = decimal.Max(hi, o.Price)
	}
	return hi.Sub(lo)
}

// Calculate generates the ladder for r and computes every order. r must come
// from Validate or NewOrderRange.
func Calculate(r OrderRange) Analysis {
	dir := r.Direction()
	prices := ladder.Prices(r.StartPrice, r.EndPrice, r.Step)

	a := Analysis{
		RunID:               id.New(),
		Instrument:          instrument(),
		Range:               r,
		Direction:           dir,
		Orders:              make([]OrderEntry, 0, len(prices)),
		Truncated:           ladder.Remainder(r.StartPrice, r.EndPrice, r.Step),
		TotalAmount:         decimal.Zero,
		TotalRequiredMargin: decimal.Zero,
		TotalOptionalMargin: decimal.Zero,
		TotalProfitLoss:     decimal.Zero,
	}
	for i, p := range prices {
		e := Entry(r, dir, i+1, p)
		a.Orders = append(a.Orders, e)

		a.TotalAmount = a.TotalAmount.Add(e.Amount)
		a.TotalRequiredMargin = a.TotalRequiredMargin.Add(e.RequiredMargin)
		a.TotalOptionalMargin = a.TotalOptionalMargin.Add(e.OptionalMargin)
		a.TotalProfitLoss = a.TotalProfitLoss.Add(e.ProfitLoss)
	}
	a.TotalOrders = len(a.Orders)
	return a
}

// MaxLossScenario assumes price runs through the whole ladder against the
// position: every order loses lossPerPoint for each point between its entry and
// the least favourable entry (lowest for BUY, highest for SELL).
func MaxLossScenario(a Analysis, lossPerPoint decimal.Decimal) decimal.Decimal {
	if len(a.Orders) == 0 {
		return decimal.Zero
	}
	worst := a.Orders[0].Price
	for _, o := range a.Orders[1:] {
		if a.Direction == market.Sell {
			worst = decimal.Max(worst, o.Price)
		} else {
			worst = decimal.Min(worst, o.Price)
		}
	}

	loss := decimal.Zero
	for _, o := range a.Orders {
		loss = loss.Add(o.Price.Sub(worst).Abs().Mul(lossPerPoint))
	}
	return loss
}
