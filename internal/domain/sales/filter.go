package sales

import "github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"

// Repositories alias working_with as ww.
const ColumnEmployeeID = "ww.employee_id"

type SalesFilter struct {
	EmployeeID *int64
}

func (f SalesFilter) Predicate() predicate.Expr {
	if f.EmployeeID == nil {
		return predicate.And()
	}
	return predicate.Equal(ColumnEmployeeID, *f.EmployeeID)
}
