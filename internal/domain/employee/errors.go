package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEditorClosed     = errors.New("editor has already saved its record")

	// Field rejection reasons.
	ErrRequired            = errors.New("value is required")
	ErrSalaryNotANumber    = errors.New("salary is not a whole number")
	ErrSalaryNegative      = errors.New("salary is negative")
	ErrSalaryTooLarge      = errors.New("salary is too large")
	ErrInvalidSalaryRange  = errors.New("minimum salary is not lower than maximum salary")
	ErrInvalidDate         = errors.New("date is not in YYYY-MM-DD format")
	ErrDateOfBirthInFuture = errors.New("date of birth is in the future")
	ErrTooYoung            = errors.New("employee is too young")
	ErrTooOld              = errors.New("employee is too old")
	ErrInvalidGender       = errors.New("gender identity must be M, F or O")
	ErrSelfSupervision     = errors.New("employee cannot supervise themselves")
	ErrBranchNotFound      = errors.New("selected branch does not exist")
	ErrSupervisorNotFound  = errors.New("selected supervisor does not exist")
)
