package employee

import (
	"time"
)

type Employee struct {
	ID             int64
	GivenName      string
	FamilyName     string
	DateOfBirth    time.Time
	GenderIdentity GenderIdentity
	GrossSalary    int64
	SupervisorID   *int64
	BranchID       *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns "Given Family".
func (e Employee) FullName() string {
	return e.GivenName + " " + e.FamilyName
}

// EmployeeWithDetails is an Employee joined with its branch and supervisor
// names. Names are "" when the join finds nothing.
type EmployeeWithDetails struct {
	Employee
	BranchName       string
	SupervisorName   string
	SupervisorStatus SupervisorStatus
}

type GenderIdentity string

const (
	GenderMale   GenderIdentity = "M"
	GenderFemale GenderIdentity = "F"
	GenderOther  GenderIdentity = "O"
)

// GenderIdentities lists every accepted code, in display order.
var GenderIdentities = []GenderIdentity{GenderMale, GenderFemale, GenderOther}

func (g GenderIdentity) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// SupervisorStatus separates "has no supervisor" from "points at a
// supervisor that could not be found".
type SupervisorStatus string

const (
	SupervisorNone       SupervisorStatus = "none"
	SupervisorAssigned   SupervisorStatus = "assigned"
	SupervisorUnresolved SupervisorStatus = "unresolved"
)

// ResolveSupervisor derives the status from the foreign key and whether the
// join produced a matching row.
func ResolveSupervisor(supervisorID *int64, found bool) SupervisorStatus {
	switch {
	case supervisorID == nil:
		return SupervisorNone
	case found:
		return SupervisorAssigned
	default:
		return SupervisorUnresolved
	}
}
