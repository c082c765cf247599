package profin

import (
	"testing"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

func TestTotals(t *testing.T) {
	s := emptySnapshot()
	s.Incomes = []Income{
		{ID: "1", Category: CategoryEvent, Amount: M(2000), Date: stamp.MustParse("2024-01-01T00:00:00Z")},
		{ID: "2", Category: CategoryCommercial, Amount: M(6000), Date: stamp.MustParse("2024-01-02T00:00:00Z")},
	}
	s.Expenses = []Expense{
		{ID: "1", Description: "Lens Rental", Amount: M(450), Date: stamp.MustParse("2024-01-03T00:00:00Z")},
		{ID: "2", Description: "Studio Booking", Amount: M(800), Date: stamp.MustParse("2024-01-04T00:00:00Z")},
	}

	if got := TotalIncome(&s); !got.Equal(M(8000)) {
		t.Errorf("total income: got %s want 8000", got)
	}
	if got := TotalExpenses(&s); !got.Equal(M(1250)) {
		t.Errorf("total expenses: got %s want 1250", got)
	}
	if got := Balance(&s); !got.Equal(M(6750)) {
		t.Errorf("balance: got %s want 6750", got)
	}
}

func TestPendingReceivables(t *testing.T) {
	s := Seed(stamp.MustParse("2024-05-01T12:00:00Z"))
	// 3000 due on the wedding + 6000 due on the brand shoot, status ignored
	if got := PendingReceivables(&s); !got.Equal(M(9000)) {
		t.Errorf("pending receivables: got %s want 9000", got)
	}
}

func TestExpenseBreakdown(t *testing.T) {
	s := emptySnapshot()
	s.Expenses = []Expense{
		{ID: "1", Description: "Lens Rental", Amount: M(450)},
		{ID: "2", Description: "Studio Booking", Amount: M(800)},
		{ID: "3", Description: "Lens Rental", Amount: M(50)},
	}
	got := ExpenseBreakdown(&s)
	if len(got) != 2 {
		t.Fatalf("breakdown: got %d entries", len(got))
	}
	// first appearance order, free-text description as key
	if got[0].Description != "Lens Rental" || !got[0].Total.Equal(M(500)) {
		t.Errorf("breakdown[0]: got %s %s", got[0].Description, got[0].Total)
	}
	if got[1].Description != "Studio Booking" || !got[1].Total.Equal(M(800)) {
		t.Errorf("breakdown[1]: got %s %s", got[1].Description, got[1].Total)
	}
}

func TestRecentActivityOrdering(t *testing.T) {
	s := emptySnapshot()
	s.Incomes = []Income{
		{ID: "1", Category: CategoryEvent, Description: "Deposit", Amount: M(100), Date: stamp.MustParse("2024-01-01T00:00:00Z")},
	}
	s.Expenses = []Expense{
		{ID: "1", Description: "Lens Rental", Amount: M(50), Date: stamp.MustParse("2024-02-01T00:00:00Z")},
	}
	feed := RecentActivity(&s)
	if len(feed) != 2 {
		t.Fatalf("feed length: got %d", len(feed))
	}
	if feed[0].Kind != KindExpense {
		t.Errorf("newest entry first: got %s", feed[0].Kind)
	}
	if feed[1].Kind != KindIncome {
		t.Errorf("oldest entry last: got %s", feed[1].Kind)
	}
}

func TestRecentActivityTruncatesAndBreaksTiesStably(t *testing.T) {
	same := stamp.MustParse("2024-03-01T00:00:00Z")
	s := emptySnapshot()
	for i := 0; i < 4; i++ {
		s.Incomes = append(s.Incomes, Income{ID: string(rune('a' + i)), Category: CategoryEvent, Description: "income", Amount: M(1), Date: same})
	}
	for i := 0; i < 4; i++ {
		s.Expenses = append(s.Expenses, Expense{ID: string(rune('w' + i)), Description: "expense", Amount: M(1), Date: same})
	}
	feed := RecentActivity(&s)
	if len(feed) != 5 {
		t.Fatalf("feed must truncate to 5, got %d", len(feed))
	}
	// all dates tie: incomes keep their lead, in original order
	for i := 0; i < 4; i++ {
		if feed[i].Kind != KindIncome {
			t.Fatalf("tie break lost source order at %d: %s", i, feed[i].Kind)
		}
	}
	if feed[4].Kind != KindExpense {
		t.Errorf("fifth entry should be the first expense, got %s", feed[4].Kind)
	}
}

func TestRecentActivityFallbackDescription(t *testing.T) {
	s := emptySnapshot()
	s.Incomes = []Income{{ID: "1", Category: CategoryEvent, Amount: M(1), Date: stamp.MustParse("2024-01-01T00:00:00Z")}}
	feed := RecentActivity(&s)
	if feed[0].Description != "Income Payment" {
		t.Errorf("blank income description: got %q", feed[0].Description)
	}
}

func TestIncomeByCategory(t *testing.T) {
	s := emptySnapshot()
	s.Incomes = []Income{
		{ID: "1", Category: CategoryEvent, Amount: M(2000)},
		{ID: "2", Category: CategoryEvent, Amount: M(500)},
		{ID: "3", Category: CategoryCommercial, Amount: M(6000)},
	}
	totals := IncomeByCategory(&s)
	if len(totals) != len(Categories()) {
		t.Fatalf("want one total per category, got %d", len(totals))
	}
	byCat := make(map[Category]Money)
	for _, ct := range totals {
		byCat[ct.Category] = ct.Total
	}
	if !byCat[CategoryEvent].Equal(M(2500)) {
		t.Errorf("Event total: got %s", byCat[CategoryEvent])
	}
	if !byCat[CategoryCommercial].Equal(M(6000)) {
		t.Errorf("Commercial total: got %s", byCat[CategoryCommercial])
	}
	if !byCat[CategoryVoice].IsZero() {
		t.Errorf("Voice Record total should be zero, got %s", byCat[CategoryVoice])
	}
}

func TestNewDashboard(t *testing.T) {
	s := Seed(stamp.MustParse("2024-05-01T12:00:00Z"))
	d := NewDashboard(&s)

	if !d.TotalIncome.Equal(M(8000)) || !d.TotalExpenses.Equal(M(1250)) || !d.Balance.Equal(M(6750)) {
		t.Errorf("dashboard totals: got %s/%s/%s", d.TotalIncome, d.TotalExpenses, d.Balance)
	}
	if d.ProjectCount != 2 {
		t.Errorf("project count: got %d", d.ProjectCount)
	}
	if len(d.Summary) != 3 || d.Summary[0].Category != CategoryEvent {
		t.Errorf("summary subset: got %+v", d.Summary)
	}
	if len(d.Series) != 5 || d.Series[4].Label != "May" || !d.Series[4].Income.Equal(M(8000)) {
		t.Errorf("series live month: got %+v", d.Series)
	}
}
