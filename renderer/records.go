package renderer

import (
	"bytes"

	"github.com/canvaproptk-png/ProFin-Management"
	md "github.com/nao1215/markdown"
)

// ProjectsMarkdown renders the project list as a markdown table.
func ProjectsMarkdown(projects []profin.Project, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projects")
	if len(projects) == 0 {
		doc.PlainText("No projects yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Client,
			p.TotalAmount.Display(currency),
			p.AdvancePayment.Display(currency),
			p.DueAmount.Display(currency),
			string(p.Status),
			p.CreatedAt.Day(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Client", "Total", "Advance", "Due", "Status", "Created"},
		Rows:   rows,
	})
	return doc.String()
}

// IncomesMarkdown renders the income list as a markdown table.
func IncomesMarkdown(incomes []profin.Income, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Incomes")
	if len(incomes) == 0 {
		doc.PlainText("No incomes yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, []string{
			in.ID,
			in.Client,
			string(in.Category),
			in.Description,
			in.Amount.Display(currency),
			in.Date.Day(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Client", "Category", "Description", "Amount", "Date"},
		Rows:   rows,
	})
	return doc.String()
}

// ExpensesMarkdown renders the expense list as a markdown table.
func ExpensesMarkdown(expenses []profin.Expense, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")
	if len(expenses) == 0 {
		doc.PlainText("No expenses yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.ID,
			e.Description,
			e.Amount.Display(currency),
			e.Date.Day(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Description", "Amount", "Date"},
		Rows:   rows,
	})
	return doc.String()
}
