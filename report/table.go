package report

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/n225risk/risk"
)

// Rows is the table body, one row per order.
func (f *Formatter) Rows(a risk.Analysis) [][]string {
	rows := make([][]string, 0, len(a.Orders))
	for _, e := range a.Orders {
		rows = append(rows, f.TableRow(e))
	}
	return rows
}

// Table writes the order table. The index column is left aligned, amounts
// right aligned; widths count East Asian runes as two columns.
func (f *Formatter) Table(w io.Writer, a risk.Analysis) error {
	headers := f.TableHeaders()

	align := make([]int, len(headers))
	for i := range align {
		align[i] = tablewriter.ALIGN_RIGHT
	}
	align[0] = tablewriter.ALIGN_LEFT

	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment(align)
	table.AppendBulk(f.Rows(a))
	table.Render()

	_, err := io.WriteString(w, b.String())
	return err
}
