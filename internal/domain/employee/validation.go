package employee

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

const (
	MaxSalary = 1_000_000_000
	MinAge    = 15
	MaxAge    = 120
)

// ParseSalary classifies salary text. It returns one of ErrRequired,
// ErrSalaryNotANumber, ErrSalaryNegative or ErrSalaryTooLarge, or the
// parsed value.
func ParseSalary(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrRequired
	}

	negative := false
	digits := s
	switch s[0] {
	case '-':
		negative = true
		digits = s[1:]
	case '+':
		digits = s[1:]
	}
	if !validator.IsNumeric(digits) {
		return 0, ErrSalaryNotANumber
	}
	if negative && strings.Trim(digits, "0") != "" {
		return 0, ErrSalaryNegative
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > MaxSalary {
		// only digits reach here, so a parse failure is an int64 overflow
		return 0, ErrSalaryTooLarge
	}
	return n, nil
}

// ValidateSalary wraps ParseSalary into a field rejection. label names the
// salary in the message, e.g. "minimum salary".
func ValidateSalary(field, label, text string) (int64, error) {
	n, err := ParseSalary(text)
	if err == nil {
		return n, nil
	}

	var msg string
	switch {
	case errors.Is(err, ErrRequired):
		msg = fmt.Sprintf("Please enter the %s.", label)
	case errors.Is(err, ErrSalaryNegative):
		msg = fmt.Sprintf("The %s cannot be negative.", label)
	case errors.Is(err, ErrSalaryTooLarge):
		msg = fmt.Sprintf("The %s cannot be more than 1,000,000,000.", label)
	default:
		msg = fmt.Sprintf("The %s must be a valid whole number. Please do not include any punctuation or decimals.", label)
	}
	return 0, validator.ValidationError{Field: field, Message: msg, Reason: err}
}

// ParseSalaryRange validates the search form's salary bounds. Blank text
// means no bound. When both bounds are present min must be strictly lower
// than max.
func ParseSalaryRange(minText, maxText string) (minSalary, maxSalary *int64, err error) {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(minText) {
		n, verr := ValidateSalary("minimum_salary", "minimum salary", minText)
		if verr != nil {
			errs = append(errs, verr.(validator.ValidationError))
		} else {
			minSalary = &n
		}
	}
	if !validator.IsEmpty(maxText) {
		n, verr := ValidateSalary("maximum_salary", "maximum salary", maxText)
		if verr != nil {
			errs = append(errs, verr.(validator.ValidationError))
		} else {
			maxSalary = &n
		}
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}

	if minSalary != nil && maxSalary != nil && *minSalary >= *maxSalary {
		return nil, nil, validator.ValidationErrors{{
			Field:   "salary_range",
			Message: "The minimum salary must be lower than the maximum salary.",
			Reason:  ErrInvalidSalaryRange,
		}}
	}

	return minSalary, maxSalary, nil
}

// ParseDateOfBirth parses YYYY-MM-DD text.
func ParseDateOfBirth(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, ErrRequired
	}
	dob, ok := validator.IsValidDate(s)
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	return dob, nil
}

// CheckDateOfBirth applies the age rules relative to now. Age is the
// difference of calendar years, so it ignores whether the birthday has
// passed yet this year.
func CheckDateOfBirth(dob, now time.Time) error {
	birth := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birth.After(today) {
		return ErrDateOfBirthInFuture
	}

	age := now.Year() - dob.Year()
	if age < MinAge {
		return ErrTooYoung
	}
	if age > MaxAge {
		return ErrTooOld
	}
	return nil
}

// ValidateDateOfBirth parses text and applies CheckDateOfBirth, reporting
// any failure as a date_of_birth field rejection.
func ValidateDateOfBirth(text string, now time.Time) (time.Time, error) {
	dob, err := ParseDateOfBirth(text)
	if err == nil {
		err = CheckDateOfBirth(dob, now)
	}
	if err == nil {
		return dob, nil
	}

	var msg string
	switch {
	case errors.Is(err, ErrRequired):
		msg = "Please enter the employee's date of birth."
	case errors.Is(err, ErrInvalidDate):
		msg = "The date of birth must be a valid date in YYYY-MM-DD format."
	case errors.Is(err, ErrDateOfBirthInFuture):
		msg = "The date of birth cannot be in the future."
	case errors.Is(err, ErrTooYoung):
		msg = fmt.Sprintf("The employee must be at least %d years old.", MinAge)
	default:
		msg = fmt.Sprintf("The employee cannot be more than %d years old.", MaxAge)
	}
	return time.Time{}, validator.ValidationError{Field: "date_of_birth", Message: msg, Reason: err}
}
