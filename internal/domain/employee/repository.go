package employee

import (
	"context"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
)

type EmployeeRepository interface {
	// Search returns employees matching where, joined with branch and
	// supervisor names, ordered by the given columns.
	Search(ctx context.Context, where predicate.Expr, orderBy []string) ([]EmployeeWithDetails, error)
	GetByID(ctx context.Context, id int64) (EmployeeWithDetails, error)
	// SupervisorCandidates lists every employee except excludeID, ordered by
	// family name then given name.
	SupervisorCandidates(ctx context.Context, excludeID *int64) ([]Employee, error)
	Create(ctx context.Context, employee Employee) (Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	// Delete removes the employee after clearing every supervisor link,
	// sales row and branch manager reference to it.
	Delete(ctx context.Context, id int64) error
}
