package profin

import (
	"fmt"

	"github.com/canvaproptk-png/ProFin-Management/stamp"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown project status: %q", s)
	}
}

// Category classifies an income entry.
type Category string

const (
	CategoryEvent       Category = "Event"
	CategoryPhotoshoot  Category = "Photoshoot"
	CategoryVideography Category = "Videography"
	CategoryCommercial  Category = "Commercial"
	CategoryMusic       Category = "Music Compose"
	CategoryVoice       Category = "Voice Record"
)

// Categories returns all income categories in display order.
func Categories() []Category {
	return []Category{
		CategoryEvent,
		CategoryPhotoshoot,
		CategoryVideography,
		CategoryCommercial,
		CategoryMusic,
		CategoryVoice,
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown income category: %q", s)
}

// Theme selects the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme: %q", s)
	}
}

// PrimaryColors is the fixed accent palette the profile can pick from.
var PrimaryColors = []string{"indigo", "emerald", "rose", "amber", "violet"}

func validPrimaryColor(c string) bool {
	for _, p := range PrimaryColors {
		if c == p {
			return true
		}
	}
	return false
}

// Project is a client engagement with an agreed total, an advance already
// received, and a derived outstanding due amount.
type Project struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Client         string      `json:"client"`
	TotalAmount    Money       `json:"totalAmount"`
	AdvancePayment Money       `json:"advancePayment"`
	DueAmount      Money       `json:"dueAmount"`
	Status         Status      `json:"status"`
	CreatedAt      stamp.Stamp `json:"createdAt"`
}

// withDue returns a copy with DueAmount recomputed from the two source
// amounts. DueAmount is never trusted from input.
func (p Project) withDue() Project {
	p.DueAmount = p.TotalAmount.Sub(p.AdvancePayment)
	return p
}

func (p Project) validate() error {
	if p.Name == "" {
		return &InvalidRecordError{Reason: "project name is missing"}
	}
	if p.TotalAmount.IsNegative() {
		return &InvalidRecordError{Reason: fmt.Sprintf("project total amount must not be negative, got %s", p.TotalAmount)}
	}
	if p.AdvancePayment.IsNegative() {
		return &InvalidRecordError{Reason: fmt.Sprintf("project advance payment must not be negative, got %s", p.AdvancePayment)}
	}
	if p.TotalAmount.LessThan(p.AdvancePayment) {
		return &InvalidRecordError{Reason: fmt.Sprintf("project advance payment %s exceeds total amount %s", p.AdvancePayment, p.TotalAmount)}
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return &InvalidRecordError{Reason: err.Error()}
	}
	return nil
}

// Equal reports field-for-field equality.
func (p Project) Equal(o Project) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Client == o.Client &&
		p.TotalAmount.Equal(o.TotalAmount) &&
		p.AdvancePayment.Equal(o.AdvancePayment) &&
		p.DueAmount.Equal(o.DueAmount) &&
		p.Status == o.Status &&
		p.CreatedAt.Equal(o.CreatedAt)
}

// Income is a payment received from a client.
type Income struct {
	ID          string      `json:"id"`
	Client      string      `json:"client"`
	Category    Category    `json:"category"`
	Description string      `json:"description"`
	Amount      Money       `json:"amount"`
	Date        stamp.Stamp `json:"date"`
}

func (i Income) validate() error {
	if i.Amount.IsNegative() {
		return &InvalidRecordError{Reason: fmt.Sprintf("income amount must not be negative, got %s", i.Amount)}
	}
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return &InvalidRecordError{Reason: err.Error()}
	}
	return nil
}

// Equal reports field-for-field equality.
func (i Income) Equal(o Income) bool {
	return i.ID == o.ID &&
		i.Client == o.Client &&
		i.Category == o.Category &&
		i.Description == o.Description &&
		i.Amount.Equal(o.Amount) &&
		i.Date.Equal(o.Date)
}

// Expense is money spent. The free-text description doubles as the grouping
// key for the expense breakdown, there is deliberately no category field.
type Expense struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Amount      Money       `json:"amount"`
	Date        stamp.Stamp `json:"date"`
}

func (e Expense) validate() error {
	if e.Description == "" {
		return &InvalidRecordError{Reason: "expense description is missing"}
	}
	if e.Amount.IsNegative() {
		return &InvalidRecordError{Reason: fmt.Sprintf("expense amount must not be negative, got %s", e.Amount)}
	}
	return nil
}

// Equal reports field-for-field equality.
func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID &&
		e.Description == o.Description &&
		e.Amount.Equal(o.Amount) &&
		e.Date.Equal(o.Date)
}

// Profile holds the user's identity and display preferences. It is a
// singleton: exactly one per snapshot, never created or deleted.
type Profile struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	ProfilePic   string `json:"profilePic"`
	Currency     string `json:"currency"`
	Theme        Theme  `json:"theme"`
	PrimaryColor string `json:"primaryColor"`
}

// ProfileUpdate carries a partial field set for the profile. Nil fields keep
// their prior value.
type ProfileUpdate struct {
	Name         *string
	BusinessName *string
	ProfilePic   *string
	Currency     *string
	Theme        *Theme
	PrimaryColor *string
}

func (u ProfileUpdate) validate() error {
	if u.Theme != nil {
		if _, err := ParseTheme(string(*u.Theme)); err != nil {
			return &InvalidRecordError{Reason: err.Error()}
		}
	}
	if u.PrimaryColor != nil && !validPrimaryColor(*u.PrimaryColor) {
		return &InvalidRecordError{Reason: fmt.Sprintf("unknown primary color %q, want one of %v", *u.PrimaryColor, PrimaryColors)}
	}
	return nil
}

// mergeInto shallow-merges the set fields into p.
func (u ProfileUpdate) mergeInto(p Profile) Profile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.BusinessName != nil {
		p.BusinessName = *u.BusinessName
	}
	if u.ProfilePic != nil {
		p.ProfilePic = *u.ProfilePic
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.PrimaryColor != nil {
		p.PrimaryColor = *u.PrimaryColor
	}
	return p
}
