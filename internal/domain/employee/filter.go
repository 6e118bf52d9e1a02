package employee

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

// Columns the employee predicate refers to. Repositories alias the
// employees table as e.
const (
	ColumnID          = "e.id"
	ColumnGivenName   = "e.given_name"
	ColumnFamilyName  = "e.family_name"
	ColumnBranchID    = "e.branch_id"
	ColumnGrossSalary = "e.gross_salary"
)

// DisplayOrder is the fixed result ordering: family name, given name, id.
var DisplayOrder = []string{ColumnFamilyName, ColumnGivenName, ColumnID}

// SearchCriteria is the set of active search filters. Zero values mean the
// criterion is inactive.
type SearchCriteria struct {
	Name      string
	BranchID  *int64
	MinSalary *int64
	MaxSalary *int64
}

// IsEmpty reports whether no criterion is active.
func (c SearchCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.Name) == "" && c.BranchID == nil && c.MinSalary == nil && c.MaxSalary == nil
}

// SearchForm is the search filter as typed by the user.
type SearchForm struct {
	Name      string `json:"name"`
	BranchID  string `json:"branch_id"`
	MinSalary string `json:"min_salary"`
	MaxSalary string `json:"max_salary"`
}

// Criteria validates the form and returns the criteria it describes.
func (f SearchForm) Criteria() (SearchCriteria, error) {
	var errs validator.ValidationErrors
	criteria := SearchCriteria{Name: strings.TrimSpace(f.Name)}

	if !validator.IsEmpty(f.BranchID) {
		id, err := strconv.ParseInt(strings.TrimSpace(f.BranchID), 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "branch",
				Message: "Please select a valid branch.",
				Reason:  ErrRequired,
			})
		} else {
			criteria.BranchID = &id
		}
	}

	minSalary, maxSalary, err := ParseSalaryRange(f.MinSalary, f.MaxSalary)
	if err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(errs) > 0 {
		return SearchCriteria{}, errs
	}

	criteria.MinSalary = minSalary
	criteria.MaxSalary = maxSalary
	return criteria, nil
}

// NameTokens splits free text on whitespace.
func NameTokens(name string) []string {
	return strings.Fields(name)
}

// BuildPredicate combines the active criteria with AND. Each name token
// must appear in the given or family name; salary bounds are exclusive.
// With no active criteria the predicate is empty and matches every row.
func BuildPredicate(c SearchCriteria) predicate.Expr {
	terms := make([]predicate.Expr, 0, 4)

	for _, token := range NameTokens(c.Name) {
		terms = append(terms, predicate.Or(
			predicate.ContainsFold(ColumnGivenName, token),
			predicate.ContainsFold(ColumnFamilyName, token),
		))
	}
	if c.BranchID != nil {
		terms = append(terms, predicate.Equal(ColumnBranchID, *c.BranchID))
	}
	if c.MinSalary != nil {
		terms = append(terms, predicate.GreaterThan(ColumnGrossSalary, *c.MinSalary))
	}
	if c.MaxSalary != nil {
		terms = append(terms, predicate.LessThan(ColumnGrossSalary, *c.MaxSalary))
	}

	return predicate.And(terms...)
}

// Row exposes e to predicate.Match under the predicate's column names.
func (e Employee) Row() predicate.Row {
	row := predicate.Row{
		ColumnID:          e.ID,
		ColumnGivenName:   e.GivenName,
		ColumnFamilyName:  e.FamilyName,
		ColumnGrossSalary: e.GrossSalary,
		ColumnBranchID:    nil,
	}
	if e.BranchID != nil {
		row[ColumnBranchID] = *e.BranchID
	}
	return row
}

// DisplayLess orders employees by family name, given name, then id.
func DisplayLess(a, b Employee) bool {
	if fa, fb := strings.ToLower(a.FamilyName), strings.ToLower(b.FamilyName); fa != fb {
		return fa < fb
	}
	if ga, gb := strings.ToLower(a.GivenName), strings.ToLower(b.GivenName); ga != gb {
		return ga < gb
	}
	return a.ID < b.ID
}
