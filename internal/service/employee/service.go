package employee

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/metrics"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	branchRepo   branch.BranchRepository
	salesRepo    sales.SalesRepository
	now          func() time.Time
}

type Option func(*EmployeeServiceImpl)

// WithClock replaces time.Now, which the date of birth rules are relative to.
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeServiceImpl) {
		s.now = now
	}
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	salesRepo sales.SalesRepository,
	opts ...Option,
) *EmployeeServiceImpl {
	s := &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		branchRepo:   branchRepo,
		salesRepo:    salesRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ employee.EmployeeService = (*EmployeeServiceImpl)(nil)

// Helper function to map EmployeeWithDetails to EmployeeResponse
func mapEmployeeToResponse(emp employee.EmployeeWithDetails) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		GivenName:        emp.GivenName,
		FamilyName:       emp.FamilyName,
		FullName:         emp.FullName(),
		DateOfBirth:      emp.DateOfBirth.Format(dateLayout),
		GenderIdentity:   string(emp.GenderIdentity),
		GrossSalary:      emp.GrossSalary,
		SupervisorID:     emp.SupervisorID,
		SupervisorName:   emp.SupervisorName,
		SupervisorStatus: string(emp.SupervisorStatus),
		BranchID:         emp.BranchID,
		BranchName:       emp.BranchName,
	}
	if resp.SupervisorStatus == "" {
		resp.SupervisorStatus = string(employee.ResolveSupervisor(emp.SupervisorID, false))
	}
	if !emp.CreatedAt.IsZero() {
		resp.CreatedAt = emp.CreatedAt.Format(time.RFC3339)
	}
	if !emp.UpdatedAt.IsZero() {
		resp.UpdatedAt = emp.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// mapEmployeeToForm prefills the editor from a stored record.
func mapEmployeeToForm(emp employee.Employee) employee.EmployeeForm {
	return employee.EmployeeForm{
		GivenName:      emp.GivenName,
		FamilyName:     emp.FamilyName,
		DateOfBirth:    emp.DateOfBirth.Format(dateLayout),
		GenderIdentity: string(emp.GenderIdentity),
		GrossSalary:    strconv.FormatInt(emp.GrossSalary, 10),
		BranchID:       emp.BranchID,
		SupervisorID:   emp.SupervisorID,
	}
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, form employee.SearchForm) ([]employee.EmployeeResponse, error) {
	criteria, err := form.Criteria()
	if err != nil {
		metrics.CountRejections(err)
		return []employee.EmployeeResponse{}, err
	}
	return s.ListEmployees(ctx, criteria)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, criteria employee.SearchCriteria) ([]employee.EmployeeResponse, error) {
	rows, err := s.employeeRepo.Search(ctx, employee.BuildPredicate(criteria), employee.DisplayOrder)
	if err != nil {
		return []employee.EmployeeResponse{}, database.NewStorageError("search employees", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mapEmployeeToResponse(row))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, database.NewStorageError("get employee", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// AddForm implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddForm(ctx context.Context) (employee.EditorView, error) {
	return s.NewAddEditor().View(ctx)
}

// EditForm implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EditForm(ctx context.Context, id int64) (employee.EditorView, error) {
	editor, err := s.NewEditEditor(ctx, id)
	if err != nil {
		return employee.EditorView{}, err
	}
	return editor.View(ctx)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, form employee.EmployeeForm) (employee.EmployeeResponse, message.Message, error) {
	editor := s.NewAddEditor()
	msg, err := editor.Submit(ctx, form)
	if err != nil {
		return employee.EmployeeResponse{}, msg, err
	}
	return editor.Saved(), msg, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, form employee.EmployeeForm) (employee.EmployeeResponse, message.Message, error) {
	editor, err := s.NewEditEditor(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, message.FromError(err), err
	}
	msg, err := editor.Submit(ctx, form)
	if err != nil {
		return employee.EmployeeResponse{}, msg, err
	}
	return editor.Saved(), msg, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return database.NewStorageError("delete employee", err)
	}
	return nil
}
