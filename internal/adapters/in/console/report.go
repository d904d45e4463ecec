package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"restaurant/internal/core/application/usecases/queries"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/width"
)

const (
	bannerFill  = "===================="
	cellPadding = 2
)

var (
	rule   = strings.Repeat("-", 50)
	footer = strings.Repeat("=", 50)
)

// Report renders orders as aligned text tables. Columns are padded by display
// width, so wide (CJK) item names take two cells per character.
//
// Example output:
//
//	==================== Pending Orders ====================
//	Order #1
//	Order ID: A1
//	Customer: Alice
//	--------------------------------------------------
//	Item  Price  Quantity  Subtotal
//	--------------------------------------------------
//	Tea   30     2         60
//	--------------------------------------------------
//	Total: 60
//	==================================================
type Report struct {
	out     io.Writer
	printer *message.Printer
}

// NewReport creates a renderer writing to out. Amounts are grouped the
// English way (1,234).
func NewReport(out io.Writer) *Report {
	return &Report{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

// PrintOrders prints every order with its 1-based position.
func (r *Report) PrintOrders(title string, views []queries.OrderView) {
	r.banner(title)

	if len(views) == 0 {
		fmt.Fprintln(r.out, "no pending orders")
		return
	}

	for i, view := range views {
		fmt.Fprintf(r.out, "Order #%d\n", i+1)
		r.order(view)
	}
}

// PrintOrder prints a single order without a position.
func (r *Report) PrintOrder(title string, view queries.OrderView) {
	r.banner(title)
	r.order(view)
}

func (r *Report) banner(title string) {
	fmt.Fprintf(r.out, "%s %s %s\n", bannerFill, title, bannerFill)
}

func (r *Report) order(view queries.OrderView) {
	fmt.Fprintf(r.out, "Order ID: %s\n", view.ID)
	fmt.Fprintf(r.out, "Customer: %s\n", view.Customer)
	fmt.Fprintln(r.out, rule)

	header, rows := r.table(view.Items)
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out, rule)
	for _, row := range rows {
		fmt.Fprintln(r.out, row)
	}
	fmt.Fprintln(r.out, rule)

	fmt.Fprintf(r.out, "Total: %s\n", r.amount(view.Total))
	fmt.Fprintln(r.out, footer)
	fmt.Fprintln(r.out)
}

// table aligns the header and the item rows as one block so the rule between
// them does not break the columns.
func (r *Report) table(items []queries.LineItemView) (string, []string) {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"Item", "Price", "Quantity", "Subtotal"})
	for _, item := range items {
		rows = append(rows, []string{
			item.Name, r.amount(item.Price), strconv.Itoa(item.Quantity), r.amount(item.Subtotal),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+cellPadding))
			}
		}
		lines = append(lines, b.String())
	}

	return lines[0], lines[1:]
}

// displayWidth counts East Asian wide and fullwidth runes as two terminal cells.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func (r *Report) amount(n int) string {
	return r.printer.Sprintf("%d", n)
}
