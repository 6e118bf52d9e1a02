package employee

import (
	"context"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
)

type EmployeeService interface {
	// SearchEmployees validates the filter form and runs the search.
	SearchEmployees(ctx context.Context, form SearchForm) ([]EmployeeResponse, error)
	ListEmployees(ctx context.Context, criteria SearchCriteria) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// AddForm and EditForm return the editor prefill.
	AddForm(ctx context.Context) (EditorView, error)
	EditForm(ctx context.Context, id int64) (EditorView, error)

	// CreateEmployee and UpdateEmployee return the message to show the user
	// alongside the stored record, also when the form is rejected.
	CreateEmployee(ctx context.Context, form EmployeeForm) (EmployeeResponse, message.Message, error)
	UpdateEmployee(ctx context.Context, id int64, form EmployeeForm) (EmployeeResponse, message.Message, error)
	DeleteEmployee(ctx context.Context, id int64) error

	SalesReport(ctx context.Context, employeeID int64) (sales.SalesReportResponse, error)
}
