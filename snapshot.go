package profin

import (
	"slices"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

// Snapshot is the complete state at one instant: all projects, incomes and
// expenses in insertion order, plus the singleton profile.
//
// It is a value type: every command produces a new snapshot, there is no
// in-place sharing across snapshots.
type Snapshot struct {
	Projects []Project `json:"projects"`
	Incomes  []Income  `json:"incomes"`
	Expenses []Expense `json:"expenses"`
	Profile  Profile   `json:"profile"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Projects: slices.Clone(s.Projects),
		Incomes:  slices.Clone(s.Incomes),
		Expenses: slices.Clone(s.Expenses),
		Profile:  s.Profile,
	}
}

// Equal reports field-for-field equality of two snapshots.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.Projects) != len(o.Projects) ||
		len(s.Incomes) != len(o.Incomes) ||
		len(s.Expenses) != len(o.Expenses) ||
		s.Profile != o.Profile {
		return false
	}
	for i := range s.Projects {
		if !s.Projects[i].Equal(o.Projects[i]) {
			return false
		}
	}
	for i := range s.Incomes {
		if !s.Incomes[i].Equal(o.Incomes[i]) {
			return false
		}
	}
	for i := range s.Expenses {
		if !s.Expenses[i].Equal(o.Expenses[i]) {
			return false
		}
	}
	return true
}

// normalize makes collections non-nil and re-derives every project's due
// amount, so that a freshly decoded snapshot honors the same invariants as
// one built by the store.
func (s *Snapshot) normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Incomes == nil {
		s.Incomes = []Income{}
	}
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	for i, p := range s.Projects {
		s.Projects[i] = p.withDue()
	}
}

// Seed returns the fixture snapshot used when the durable slot is empty or
// unreadable: two example projects, two incomes, two expenses and a default
// profile, all stamped with the given instant.
func Seed(now stamp.Stamp) Snapshot {
	return Snapshot{
		Projects: []Project{
			Project{ID: "1", Name: "Summer Wedding", Client: "Alice Johnson", TotalAmount: M(5000), AdvancePayment: M(2000), Status: StatusPending, CreatedAt: now}.withDue(),
			Project{ID: "2", Name: "Brand Shoot", Client: "Nike", TotalAmount: M(12000), AdvancePayment: M(6000), Status: StatusCompleted, CreatedAt: now}.withDue(),
		},
		Incomes: []Income{
			{ID: "1", Client: "Alice Johnson", Category: CategoryEvent, Description: "Initial deposit", Amount: M(2000), Date: now},
			{ID: "2", Client: "Nike", Category: CategoryCommercial, Description: "Advance payment", Amount: M(6000), Date: now},
		},
		Expenses: []Expense{
			{ID: "1", Description: "Lens Rental", Amount: M(450), Date: now},
			{ID: "2", Description: "Studio Booking", Amount: M(800), Date: now},
		},
		Profile: Profile{
			Name:         "Alex Creative",
			BusinessName: "Lumina Studios",
			ProfilePic:   "https://picsum.photos/seed/alex/200/200",
			Currency:     "USD",
			Theme:        ThemeLight,
			PrimaryColor: "indigo",
		},
	}
}
