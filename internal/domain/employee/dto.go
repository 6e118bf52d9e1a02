package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

// EmployeeForm is the add/edit form as entered by the user. Dates and
// salary stay text so the validator can classify malformed input.
type EmployeeForm struct {
	GivenName      string `json:"given_name"`
	FamilyName     string `json:"family_name"`
	DateOfBirth    string `json:"date_of_birth"`
	GenderIdentity string `json:"gender_identity"`
	GrossSalary    string `json:"gross_salary"`
	BranchID       *int64 `json:"branch_id"`
	SupervisorID   *int64 `json:"supervisor_id"`
}

// Validate checks the form field by field and stops at the first failure.
// selfID is the id of the record being edited, nil when adding.
func (f EmployeeForm) Validate(now time.Time, selfID *int64) (Employee, error) {
	reject := func(field, msg string, reason error) (Employee, error) {
		return Employee{}, validator.ValidationErrors{{Field: field, Message: msg, Reason: reason}}
	}

	if validator.IsEmpty(f.GivenName) {
		return reject("given_name", "Please enter the employee's given name.", ErrRequired)
	}
	if validator.IsEmpty(f.FamilyName) {
		return reject("family_name", "Please enter the employee's family name.", ErrRequired)
	}
	if validator.IsEmpty(f.DateOfBirth) {
		return reject("date_of_birth", "Please enter the employee's date of birth.", ErrRequired)
	}
	if validator.IsEmpty(f.GenderIdentity) {
		return reject("gender_identity", "Please select the employee's gender identity.", ErrRequired)
	}
	gender := GenderIdentity(strings.ToUpper(strings.TrimSpace(f.GenderIdentity)))
	if !gender.IsValid() {
		return reject("gender_identity", "Please select the employee's gender identity.", ErrInvalidGender)
	}
	if validator.IsEmpty(f.GrossSalary) {
		return reject("salary", "Please enter the employee's salary.", ErrRequired)
	}
	if f.BranchID == nil {
		return reject("branch", "Please select the employee's branch.", ErrRequired)
	}

	salary, err := ValidateSalary("salary", "salary", f.GrossSalary)
	if err != nil {
		return Employee{}, validator.ValidationErrors{err.(validator.ValidationError)}
	}
	dob, err := ValidateDateOfBirth(f.DateOfBirth, now)
	if err != nil {
		return Employee{}, validator.ValidationErrors{err.(validator.ValidationError)}
	}
	if selfID != nil && f.SupervisorID != nil && *f.SupervisorID == *selfID {
		return reject("supervisor", "An employee cannot be their own supervisor.", ErrSelfSupervision)
	}

	return Employee{
		GivenName:      strings.TrimSpace(f.GivenName),
		FamilyName:     strings.TrimSpace(f.FamilyName),
		DateOfBirth:    dob,
		GenderIdentity: gender,
		GrossSalary:    salary,
		SupervisorID:   f.SupervisorID,
		BranchID:       f.BranchID,
	}, nil
}

type EmployeeResponse struct {
	ID               int64  `json:"id"`
	GivenName        string `json:"given_name"`
	FamilyName       string `json:"family_name"`
	FullName         string `json:"full_name"`
	DateOfBirth      string `json:"date_of_birth"`
	GenderIdentity   string `json:"gender_identity"`
	GrossSalary      int64  `json:"gross_salary"`
	SupervisorID     *int64 `json:"supervisor_id"`
	SupervisorName   string `json:"supervisor_name"`
	SupervisorStatus string `json:"supervisor_status"`
	BranchID         *int64 `json:"branch_id"`
	BranchName       string `json:"branch_name"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// SupervisorOption is one entry of the supervisor picker. ID nil is the
// "no supervisor" entry.
type SupervisorOption struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type EditorMode string

const (
	ModeAdd  EditorMode = "add"
	ModeEdit EditorMode = "edit"
)

// EditorView is what the add/edit form shows before the user types.
type EditorView struct {
	Mode        EditorMode              `json:"mode"`
	EmployeeID  *int64                  `json:"employee_id,omitempty"`
	Form        EmployeeForm            `json:"form"`
	Genders     []GenderIdentity        `json:"genders"`
	Branches    []branch.BranchResponse `json:"branches"`
	Supervisors []SupervisorOption      `json:"supervisors"`
}
