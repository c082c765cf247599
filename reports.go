package profin

import (
	"sort"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

// Derived views are pure calculators over a snapshot. Nothing here mutates
// state or caches results; views are recomputed on demand.

// TotalIncome sums every income amount.
func TotalIncome(s *Snapshot) Money {
	var total Money
	for _, in := range s.Incomes {
		total = total.Add(in.Amount)
	}
	return total
}

// TotalExpenses sums every expense amount.
func TotalExpenses(s *Snapshot) Money {
	var total Money
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Balance is total income minus total expenses.
func Balance(s *Snapshot) Money {
	return TotalIncome(s).Sub(TotalExpenses(s))
}

// PendingReceivables sums the due amount of every project, whatever its
// status.
func PendingReceivables(s *Snapshot) Money {
	var total Money
	for _, p := range s.Projects {
		total = total.Add(p.DueAmount)
	}
	return total
}

// BreakdownEntry is one slice of the expense breakdown.
type BreakdownEntry struct {
	Description string
	Total       Money
}

// ExpenseBreakdown groups expenses by their free-text description, in first
// appearance order. The description acts as a de-facto category key, the
// model deliberately has no structured expense category.
func ExpenseBreakdown(s *Snapshot) []BreakdownEntry {
	index := make(map[string]int)
	var entries []BreakdownEntry
	for _, e := range s.Expenses {
		if i, ok := index[e.Description]; ok {
			entries[i].Total = entries[i].Total.Add(e.Amount)
			continue
		}
		index[e.Description] = len(entries)
		entries = append(entries, BreakdownEntry{Description: e.Description, Total: e.Amount})
	}
	return entries
}

// ActivityKind tags a recent-activity entry with its source collection.
type ActivityKind string

const (
	KindIncome  ActivityKind = "income"
	KindExpense ActivityKind = "expense"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Kind        ActivityKind
	Description string
	Amount      Money
	Date        stamp.Stamp
}

// recentLimit is how many entries the recent-activity feed keeps.
const recentLimit = 5

// RecentActivity merges incomes and expenses, newest first, truncated to the
// five most recent. Entries on the same instant keep their original relative
// order, incomes before expenses.
func RecentActivity(s *Snapshot) []Activity {
	feed := make([]Activity, 0, len(s.Incomes)+len(s.Expenses))
	for _, in := range s.Incomes {
		desc := in.Description
		if desc == "" {
			desc = "Income Payment"
		}
		feed = append(feed, Activity{Kind: KindIncome, Description: desc, Amount: in.Amount, Date: in.Date})
	}
	for _, e := range s.Expenses {
		feed = append(feed, Activity{Kind: KindExpense, Description: e.Description, Amount: e.Amount, Date: e.Date})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if len(feed) > recentLimit {
		feed = feed[:recentLimit]
	}
	return feed
}

// CategoryTotal is the income total of one category.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// IncomeByCategory sums income amounts per category, in category display
// order. Categories with no income appear with a zero total.
func IncomeByCategory(s *Snapshot) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(Categories()))
	for _, c := range Categories() {
		var total Money
		for _, in := range s.Incomes {
			if in.Category == c {
				total = total.Add(in.Amount)
			}
		}
		totals = append(totals, CategoryTotal{Category: c, Total: total})
	}
	return totals
}

// summaryCategories is the fixed subset shown on the income summary cards.
const summaryCategories = 3

// ChartPoint is one month of the income-versus-expenses series.
type ChartPoint struct {
	Label    string
	Income   Money
	Expenses Money
}

// Dashboard bundles every derived view the overview screen renders.
type Dashboard struct {
	TotalIncome        Money
	TotalExpenses      Money
	Balance            Money
	PendingReceivables Money
	ProjectCount       int
	Breakdown          []BreakdownEntry
	Recent             []Activity
	Summary            []CategoryTotal // fixed subset of income categories
	Series             []ChartPoint    // fixed history plus the live month
}

// NewDashboard computes all dashboard views from the snapshot.
func NewDashboard(s *Snapshot) *Dashboard {
	income, expenses := TotalIncome(s), TotalExpenses(s)
	return &Dashboard{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		Balance:            income.Sub(expenses),
		PendingReceivables: PendingReceivables(s),
		ProjectCount:       len(s.Projects),
		Breakdown:          ExpenseBreakdown(s),
		Recent:             RecentActivity(s),
		Summary:            IncomeByCategory(s)[:summaryCategories],
		Series: []ChartPoint{
			{Label: "Jan", Income: M(4000), Expenses: M(2400)},
			{Label: "Feb", Income: M(3000), Expenses: M(1398)},
			{Label: "Mar", Income: M(2000), Expenses: M(9800)},
			{Label: "Apr", Income: M(2780), Expenses: M(3908)},
			{Label: "May", Income: income, Expenses: expenses},
		},
	}
}
