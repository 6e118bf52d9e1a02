package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return store.Employees()
}

// Search implements employee.EmployeeRepository. Rows are always returned in
// display order; orderBy only needs to be accepted.
func (r *employeeRepositoryImpl) Search(ctx context.Context, where predicate.Expr, orderBy []string) ([]employee.EmployeeWithDetails, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	matched := make([]employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if predicate.Match(where, e.Row()) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return employee.DisplayLess(matched[i], matched[j]) })

	result := make([]employee.EmployeeWithDetails, 0, len(matched))
	for _, e := range matched {
		result = append(result, s.details(e))
	}
	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeWithDetails, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return employee.EmployeeWithDetails{}, s.failure
	}
	e, ok := s.employees[id]
	if !ok {
		return employee.EmployeeWithDetails{}, employee.ErrEmployeeNotFound
	}
	return s.details(e), nil
}

// SupervisorCandidates implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SupervisorCandidates(ctx context.Context, excludeID *int64) ([]employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	candidates := make([]employee.Employee, 0, len(s.employees))
	for id, e := range s.employees {
		if excludeID != nil && id == *excludeID {
			continue
		}
		candidates = append(candidates, e)
	}
	sort.Slice(candidates, func(i, j int) bool { return employee.DisplayLess(candidates[i], candidates[j]) })
	return candidates, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return employee.Employee{}, s.failure
	}
	if err := s.checkEmployeeRefs(emp); err != nil {
		return employee.Employee{}, err
	}

	s.nextEmployeeID++
	now := s.now()
	emp.ID = s.nextEmployeeID
	emp.CreatedAt = now
	emp.UpdatedAt = now
	s.employees[emp.ID] = emp
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return employee.Employee{}, s.failure
	}
	existing, ok := s.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err := s.checkEmployeeRefs(emp); err != nil {
		return employee.Employee{}, err
	}

	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = s.now()
	s.employees[emp.ID] = emp
	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	if _, ok := s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}

	now := s.now()
	for eid, e := range s.employees {
		if e.SupervisorID != nil && *e.SupervisorID == id {
			e.SupervisorID = nil
			e.UpdatedAt = now
			s.employees[eid] = e
		}
	}
	for key := range s.sales {
		if key.employeeID == id {
			delete(s.sales, key)
		}
	}
	for bid, b := range s.branches {
		if b.ManagerID != nil && *b.ManagerID == id {
			b.ManagerID = nil
			b.ManagerStartedAt = nil
			b.UpdatedAt = now
			s.branches[bid] = b
		}
	}
	delete(s.employees, id)
	return nil
}

// details joins e with its branch and supervisor. Callers hold s.mu.
func (s *Store) details(e employee.Employee) employee.EmployeeWithDetails {
	result := employee.EmployeeWithDetails{Employee: e}

	if e.BranchID != nil {
		if b, ok := s.branches[*e.BranchID]; ok {
			result.BranchName = b.Name
		}
	}

	found := false
	if e.SupervisorID != nil {
		var sup employee.Employee
		if sup, found = s.employees[*e.SupervisorID]; found {
			result.SupervisorName = sup.FullName()
		}
	}
	result.SupervisorStatus = employee.ResolveSupervisor(e.SupervisorID, found)
	return result
}

// checkEmployeeRefs enforces the branch_id and supervisor_id foreign keys.
func (s *Store) checkEmployeeRefs(emp employee.Employee) error {
	if emp.BranchID != nil {
		if _, ok := s.branches[*emp.BranchID]; !ok {
			return fmt.Errorf("%w: branch %d", ErrForeignKeyViolation, *emp.BranchID)
		}
	}
	if emp.SupervisorID != nil {
		if _, ok := s.employees[*emp.SupervisorID]; !ok {
			return fmt.Errorf("%w: supervisor %d", ErrForeignKeyViolation, *emp.SupervisorID)
		}
	}
	return nil
}
