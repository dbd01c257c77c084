// Package report renders an analysis as display text: yen amounts with
// thousands grouping, signed P/L, a summary block and an order table.
package report

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/n225risk/risk"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	p            *message.Printer
	lossPerPoint decimal.Decimal
}

// New returns a formatter grouping digits per tag. Amounts are always shown in
// yen.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		p:            message.NewPrinter(tag),
		lossPerPoint: risk.DefaultLossPerPoint,
	}
}

// Default formats for Japanese users.
func Default() *Formatter {
	return New(language.Japanese)
}

// WithLossPerPoint sets the figure used for the worst-case line in Summary.
func (f *Formatter) WithLossPerPoint(v decimal.Decimal) *Formatter {
	c := *f
	c.lossPerPoint = v
	return &c
}

// Number groups an integer: 1000 → "1,000".
func (f *Formatter) Number(n int64) string {
	return f.p.Sprintf("%d", n)
}

// Yen truncates toward zero and appends 円: 40000.7 → "40,000円".
func (f *Formatter) Yen(d decimal.Decimal) string {
	return f.Number(d.Truncate(0).IntPart()) + "円"
}

// ProfitLoss is Yen with an explicit sign; zero renders as "±0円".
func (f *Formatter) ProfitLoss(d decimal.Decimal) string {
	t := d.Truncate(0)
	switch {
	case t.IsPositive():
		return "+" + f.Yen(t)
	case t.IsNegative():
		return f.Yen(t)
	default:
		return "±0円"
	}
}

func (f *Formatter) Summary(a risk.Analysis) string {
	lines := []string{
		"=== リスク分析サマリー ===",
		fmt.Sprintf("銘柄: %s (レバレッジ %s倍)", a.Instrument.DisplayName, a.Instrument.Leverage),
		fmt.Sprintf("取引方向: %s (%s)", a.Direction.Label(), a.Direction),
		fmt.Sprintf("総注文数: %s件", f.Number(int64(a.TotalOrders))),
		fmt.Sprintf("総発注金額: %s", f.Yen(a.TotalAmount)),
		fmt.Sprintf("総必要証拠金: %s", f.Yen(a.TotalRequiredMargin)),
		fmt.Sprintf("総任意証拠金: %s", f.Yen(a.TotalOptionalMargin)),
		fmt.Sprintf("総証拠金: %s", f.Yen(a.TotalMargin())),
		fmt.Sprintf("総損益: %s", f.ProfitLoss(a.TotalProfitLoss)),
		fmt.Sprintf("平均注文価格: %s", f.Yen(a.AveragePrice())),
		fmt.Sprintf("価格レンジ: %s", f.Yen(a.PriceRange())),
		fmt.Sprintf("最大想定損失: %s", f.Yen(risk.MaxLossScenario(a, f.lossPerPoint))),
	}
	if a.Truncated.IsPositive() {
		lines = append(lines, fmt.Sprintf("切り捨てた端数: %s (値幅に満たないため注文なし)", a.Truncated))
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) OrderLine(e risk.OrderEntry) string {
	return fmt.Sprintf("注文%2d: 価格 %s, 金額 %s, 数量 %s, 証拠金 %s, 損益 %s",
		e.Index,
		f.Yen(e.Price),
		f.Yen(e.Amount),
		e.Quantity,
		f.Yen(e.Margin()),
		f.ProfitLoss(e.ProfitLoss),
	)
}

func (f *Formatter) OrderList(orders []risk.OrderEntry) string {
	if len(orders) == 0 {
		return "注文がありません。"
	}
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, "=== 注文一覧 ===")
	for _, e := range orders {
		lines = append(lines, f.OrderLine(e))
	}
	return strings.Join(lines, "\n")
}

// Full is the summary followed by the order list.
func (f *Formatter) Full(a risk.Analysis) string {
	return f.Summary(a) + "\n\n" + f.OrderList(a.Orders)
}

func (f *Formatter) TableHeaders() []string {
	return []string{"注文番号", "注文価格", "発注金額", "取引数量", "必要証拠金", "任意証拠金", "損益"}
}

func (f *Formatter) TableRow(e risk.OrderEntry) []string {
	return []string{
		f.Number(int64(e.Index)),
		f.Yen(e.Price),
		f.Yen(e.Amount),
		e.Quantity.String(),
		f.Yen(e.RequiredMargin),
		f.Yen(e.OptionalMargin),
		f.ProfitLoss(e.ProfitLoss),
	}
}
