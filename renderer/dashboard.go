package renderer

import (
	"bytes"
	"fmt"

	"github.com/canvaproptk-png/ProFin-Management"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the full dashboard as a markdown document.
// Amounts are formatted in the given currency.
func DashboardMarkdown(d *profin.Dashboard, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	doc.Table(md.TableSet{
		Header: []string{"Total Income", "Total Expenses", "Balance", "Pending Payments"},
		Rows: [][]string{{
			d.TotalIncome.Display(currency),
			d.TotalExpenses.Display(currency),
			d.Balance.Display(currency),
			d.PendingReceivables.Display(currency),
		}},
	})
	doc.PlainText(fmt.Sprintf("Projects: %d", d.ProjectCount))

	doc.H2("Income Summary")
	summary := make([][]string, 0, len(d.Summary))
	for _, ct := range d.Summary {
		summary = append(summary, []string{string(ct.Category), ct.Total.Display(currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total"},
		Rows:   summary,
	})

	doc.H2("Income vs Expenses")
	series := make([][]string, 0, len(d.Series))
	for _, p := range d.Series {
		series = append(series, []string{p.Label, p.Income.Display(currency), p.Expenses.Display(currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expenses"},
		Rows:   series,
	})

	if len(d.Breakdown) > 0 {
		doc.H2("Expense Breakdown")
		breakdown := make([][]string, 0, len(d.Breakdown))
		for _, e := range d.Breakdown {
			breakdown = append(breakdown, []string{e.Description, e.Total.Display(currency)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Expense", "Total"},
			Rows:   breakdown,
		})
	}

	if len(d.Recent) > 0 {
		doc.H2("Recent Activity")
		recent := make([][]string, 0, len(d.Recent))
		for _, a := range d.Recent {
			recent = append(recent, []string{a.Date.Day(), string(a.Kind), a.Description, a.Amount.Display(currency)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Kind", "Description", "Amount"},
			Rows:   recent,
		})
	}

	return doc.String()
}
