package profin

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

// InvalidRecordError reports a command payload that violates a record
// invariant (negative amount, advance exceeding total, unknown enum value).
type InvalidRecordError struct {
	Reason string
}

func (e *InvalidRecordError) Error() string { return "invalid record: " + e.Reason }

// NotFoundError reports an update or delete that referenced an absent id. It
// is distinguishable from success: nothing happened.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }

// FlushError reports that a command was committed in memory but could not be
// made durable. The in-memory snapshot remains the source of truth; callers
// should surface this as a non-fatal warning.
type FlushError struct {
	Err error
}

func (e *FlushError) Error() string { return "state committed in memory but not persisted: " + e.Err.Error() }
func (e *FlushError) Unwrap() error { return e.Err }

// IDFunc generates an opaque unique record id.
type IDFunc func() string

// ClockFunc returns the current instant for record timestamps.
type ClockFunc func() stamp.Stamp

// Store holds the single live snapshot and applies the closed command set to
// it, one command at a time, atomically and synchronously.
//
// Record ids and creation stamps are assigned here, behind the store
// boundary, never by callers.
type Store struct {
	gateway  Gateway
	newID    IDFunc
	now      ClockFunc
	snapshot Snapshot
}

// NewStore builds a store bound to the given gateway and rehydrates it: the
// previously saved snapshot if the slot holds one, the seed snapshot
// otherwise. A malformed slot falls back to the seed with a logged warning,
// it is not an error.
func NewStore(gateway Gateway) *Store {
	return newStore(gateway, uuid.NewString, stamp.Now)
}

func newStore(gateway Gateway, newID IDFunc, now ClockFunc) *Store {
	s := &Store{gateway: gateway, newID: newID, now: now}
	loaded, ok, err := gateway.Load()
	switch {
	case err != nil:
		log.Printf("warning: stored state is unreadable, starting from the seed snapshot: %v", err)
		s.snapshot = Seed(now())
	case !ok:
		s.snapshot = Seed(now())
	default:
		s.snapshot = *loaded
	}
	return s
}

// Snapshot returns a deep copy of the current snapshot. Mutating the returned
// value does not affect the store.
func (s *Store) Snapshot() Snapshot { return s.snapshot.Clone() }

// Apply validates and applies exactly one command, commits the new snapshot
// in memory, then flushes it through the gateway.
//
// On a validation or not-found error the snapshot is unchanged. On a flush
// failure the command is still committed and the returned error is a
// *FlushError; everything else about the call succeeded.
func (s *Store) Apply(cmd Command) (Snapshot, error) {
	if cmd == nil {
		return s.Snapshot(), fmt.Errorf("nil command")
	}
	if err := cmd.Validate(); err != nil {
		return s.Snapshot(), fmt.Errorf("invalid %s command: %w", cmd.What(), err)
	}

	next := s.snapshot.Clone()
	if err := s.mutate(&next, cmd); err != nil {
		return s.Snapshot(), err
	}
	s.snapshot = next

	if err := s.gateway.Save(&s.snapshot); err != nil {
		return s.Snapshot(), &FlushError{Err: err}
	}
	return s.Snapshot(), nil
}

// mutate applies the command effect to the candidate snapshot.
func (s *Store) mutate(next *Snapshot, cmd Command) error {
	switch c := cmd.(type) {
	case AddProject:
		p := c.Project.withDue()
		p.ID = s.newID()
		p.CreatedAt = s.now()
		next.Projects = append(next.Projects, p)

	case UpdateProject:
		for i, prior := range next.Projects {
			if prior.ID == c.Project.ID {
				p := c.Project.withDue()
				p.CreatedAt = prior.CreatedAt // creation stamp is immutable
				next.Projects[i] = p
				return nil
			}
		}
		return &NotFoundError{Kind: "project", ID: c.Project.ID}

	case DeleteProject:
		for i, p := range next.Projects {
			if p.ID == c.ID {
				next.Projects = append(next.Projects[:i], next.Projects[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "project", ID: c.ID}

	case AddIncome:
		in := c.Income
		in.ID = s.newID()
		in.Date = s.now()
		next.Incomes = append(next.Incomes, in)

	case UpdateIncome:
		for i, prior := range next.Incomes {
			if prior.ID == c.Income.ID {
				in := c.Income
				in.Date = prior.Date // date survives edits
				next.Incomes[i] = in
				return nil
			}
		}
		return &NotFoundError{Kind: "income", ID: c.Income.ID}

	case DeleteIncome:
		for i, in := range next.Incomes {
			if in.ID == c.ID {
				next.Incomes = append(next.Incomes[:i], next.Incomes[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "income", ID: c.ID}

	case AddExpense:
		e := c.Expense
		e.ID = s.newID()
		e.Date = s.now()
		next.Expenses = append(next.Expenses, e)

	case UpdateExpense:
		for i, prior := range next.Expenses {
			if prior.ID == c.Expense.ID {
				e := c.Expense
				e.Date = prior.Date // date survives edits
				next.Expenses[i] = e
				return nil
			}
		}
		return &NotFoundError{Kind: "expense", ID: c.Expense.ID}

	case DeleteExpense:
		for i, e := range next.Expenses {
			if e.ID == c.ID {
				next.Expenses = append(next.Expenses[:i], next.Expenses[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "expense", ID: c.ID}

	case UpdateProfile:
		next.Profile = c.Update.mergeInto(next.Profile)

	default:
		return fmt.Errorf("unsupported command type %T", cmd)
	}
	return nil
}
