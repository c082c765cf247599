package profin

// CommandType is a typed string for identifying store commands.
type CommandType string

// Command types of the closed mutation set.
const (
	CmdAddProject    CommandType = "add-project"
	CmdUpdateProject CommandType = "update-project"
	CmdDeleteProject CommandType = "delete-project"
	CmdAddIncome     CommandType = "add-income"
	CmdUpdateIncome  CommandType = "update-income"
	CmdDeleteIncome  CommandType = "delete-income"
	CmdAddExpense    CommandType = "add-expense"
	CmdUpdateExpense CommandType = "update-expense"
	CmdDeleteExpense CommandType = "delete-expense"
	CmdUpdateProfile CommandType = "update-profile"
)

// Command is a discrete, named intent to mutate the snapshot, carrying a
// validated payload.
type Command interface {
	What() CommandType // What returns the command type (e.g., "add-project").
	Validate() error   // Validate checks the payload shape before dispatch.
}

// AddProject appends a new project. ID, CreatedAt and DueAmount of the
// payload are ignored: the store fills them in.
type AddProject struct {
	Project Project
}

func (c AddProject) What() CommandType { return CmdAddProject }
func (c AddProject) Validate() error   { return c.Project.validate() }

// UpdateProject replaces the project whose ID matches, keeping its position
// and its original CreatedAt stamp.
type UpdateProject struct {
	Project Project
}

func (c UpdateProject) What() CommandType { return CmdUpdateProject }
func (c UpdateProject) Validate() error {
	if c.Project.ID == "" {
		return &InvalidRecordError{Reason: "project id is missing"}
	}
	return c.Project.validate()
}

// DeleteProject removes the project whose ID matches.
type DeleteProject struct {
	ID string
}

func (c DeleteProject) What() CommandType { return CmdDeleteProject }
func (c DeleteProject) Validate() error {
	if c.ID == "" {
		return &InvalidRecordError{Reason: "project id is missing"}
	}
	return nil
}

// AddIncome appends a new income entry. ID and Date are filled by the store.
type AddIncome struct {
	Income Income
}

func (c AddIncome) What() CommandType { return CmdAddIncome }
func (c AddIncome) Validate() error   { return c.Income.validate() }

// UpdateIncome replaces the income whose ID matches, keeping its position and
// its original Date.
type UpdateIncome struct {
	Income Income
}

func (c UpdateIncome) What() CommandType { return CmdUpdateIncome }
func (c UpdateIncome) Validate() error {
	if c.Income.ID == "" {
		return &InvalidRecordError{Reason: "income id is missing"}
	}
	return c.Income.validate()
}

// DeleteIncome removes the income whose ID matches.
type DeleteIncome struct {
	ID string
}

func (c DeleteIncome) What() CommandType { return CmdDeleteIncome }
func (c DeleteIncome) Validate() error {
	if c.ID == "" {
		return &InvalidRecordError{Reason: "income id is missing"}
	}
	return nil
}

// AddExpense appends a new expense entry. ID and Date are filled by the store.
type AddExpense struct {
	Expense Expense
}

func (c AddExpense) What() CommandType { return CmdAddExpense }
func (c AddExpense) Validate() error   { return c.Expense.validate() }

// UpdateExpense replaces the expense whose ID matches, keeping its position
// and its original Date.
type UpdateExpense struct {
	Expense Expense
}

func (c UpdateExpense) What() CommandType { return CmdUpdateExpense }
func (c UpdateExpense) Validate() error {
	if c.Expense.ID == "" {
		return &InvalidRecordError{Reason: "expense id is missing"}
	}
	return c.Expense.validate()
}

// DeleteExpense removes the expense whose ID matches.
type DeleteExpense struct {
	ID string
}

func (c DeleteExpense) What() CommandType { return CmdDeleteExpense }
func (c DeleteExpense) Validate() error {
	if c.ID == "" {
		return &InvalidRecordError{Reason: "expense id is missing"}
	}
	return nil
}

// UpdateProfile shallow-merges the set fields into the singleton profile.
type UpdateProfile struct {
	Update ProfileUpdate
}

func (c UpdateProfile) What() CommandType { return CmdUpdateProfile }
func (c UpdateProfile) Validate() error   { return c.Update.validate() }
