package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
	"github.com/jackc/pgx/v5"
)

const employeeDetailsQuery = `
	SELECT e.id, e.given_name, e.family_name, e.date_of_birth, e.gender_identity, e.gross_salary,
		e.supervisor_id, e.branch_id, e.created_at, e.updated_at,
		COALESCE(b.branch_name, ''),
		COALESCE(s.given_name || ' ' || s.family_name, ''),
		s.id IS NOT NULL
	FROM employees e
	LEFT JOIN branches b ON b.id = e.branch_id
	LEFT JOIN employees s ON s.id = e.supervisor_id
`

// orderableColumns maps each sortable column to its ORDER BY expression.
// Names sort case-insensitively, as employee.DisplayLess does, whatever the
// database collation.
var orderableColumns = map[string]string{
	employee.ColumnID:          employee.ColumnID,
	employee.ColumnGivenName:   "LOWER(" + employee.ColumnGivenName + ")",
	employee.ColumnFamilyName:  "LOWER(" + employee.ColumnFamilyName + ")",
	employee.ColumnBranchID:    employee.ColumnBranchID,
	employee.ColumnGrossSalary: employee.ColumnGrossSalary,
}

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Search implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Search(ctx context.Context, where predicate.Expr, orderBy []string) ([]employee.EmployeeWithDetails, error) {
	clause, args := predicate.Where(where)
	query := employeeDetailsQuery + clause + " ORDER BY " + orderClause(orderBy)

	employees := make([]employee.EmployeeWithDetails, 0)
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to search employees: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			emp, err := scanEmployeeWithDetails(rows)
			if err != nil {
				return fmt.Errorf("failed to scan employee: %w", err)
			}
			employees = append(employees, emp)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeWithDetails, error) {
	clause, args := predicate.Where(predicate.Equal(employee.ColumnID, id))
	query := employeeDetailsQuery + clause

	var result employee.EmployeeWithDetails
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		var err error
		result, err = scanEmployeeWithDetails(q.QueryRow(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeWithDetails{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithDetails{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// SupervisorCandidates implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SupervisorCandidates(ctx context.Context, excludeID *int64) ([]employee.Employee, error) {
	var where predicate.Expr
	if excludeID != nil {
		where = predicate.NotEqual(employee.ColumnID, *excludeID)
	}
	clause, args := predicate.Where(where)

	query := `
		SELECT e.id, e.given_name, e.family_name, e.date_of_birth, e.gender_identity, e.gross_salary,
			e.supervisor_id, e.branch_id, e.created_at, e.updated_at
		FROM employees e
	` + clause + " ORDER BY " + orderClause(employee.DisplayOrder)

	candidates := make([]employee.Employee, 0)
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to list supervisor candidates: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			emp, err := scanEmployee(rows)
			if err != nil {
				return fmt.Errorf("failed to scan employee: %w", err)
			}
			candidates = append(candidates, emp)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (given_name, family_name, date_of_birth, gender_identity, gross_salary,
			supervisor_id, branch_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		return q.QueryRow(ctx, query,
			emp.GivenName, emp.FamilyName, emp.DateOfBirth, string(emp.GenderIdentity), emp.GrossSalary,
			emp.SupervisorID, emp.BranchID,
		).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		UPDATE employees
		SET given_name = $1, family_name = $2, date_of_birth = $3, gender_identity = $4,
			gross_salary = $5, supervisor_id = $6, branch_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at
	`

	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		return q.QueryRow(ctx, query,
			emp.GivenName, emp.FamilyName, emp.DateOfBirth, string(emp.GenderIdentity), emp.GrossSalary,
			emp.SupervisorID, emp.BranchID, emp.ID,
		).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %d: %w", emp.ID, err)
	}

	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE employees SET supervisor_id = NULL, updated_at = NOW() WHERE supervisor_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to clear supervisor references: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM working_with WHERE employee_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete sales records: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE branches SET manager_id = NULL, manager_started_at = NULL, updated_at = NOW() WHERE manager_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to clear branch manager references: %w", err)
		}

		commandTag, err := tx.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		return nil
	})
}

func orderClause(columns []string) string {
	valid := make([]string, 0, len(columns))
	for _, c := range columns {
		if expr, ok := orderableColumns[c]; ok {
			valid = append(valid, expr)
		}
	}
	if len(valid) == 0 {
		for _, c := range employee.DisplayOrder {
			valid = append(valid, orderableColumns[c])
		}
	}
	return strings.Join(valid, ", ")
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp    employee.Employee
		gender string
	)
	err := row.Scan(
		&emp.ID, &emp.GivenName, &emp.FamilyName, &emp.DateOfBirth, &gender, &emp.GrossSalary,
		&emp.SupervisorID, &emp.BranchID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	emp.GenderIdentity = employee.GenderIdentity(gender)
	return emp, err
}

func scanEmployeeWithDetails(row pgx.Row) (employee.EmployeeWithDetails, error) {
	var (
		result          employee.EmployeeWithDetails
		gender          string
		supervisorFound bool
	)
	err := row.Scan(
		&result.ID, &result.GivenName, &result.FamilyName, &result.DateOfBirth, &gender, &result.GrossSalary,
		&result.SupervisorID, &result.BranchID, &result.CreatedAt, &result.UpdatedAt,
		&result.BranchName, &result.SupervisorName, &supervisorFound,
	)
	if err != nil {
		return employee.EmployeeWithDetails{}, err
	}

	result.GenderIdentity = employee.GenderIdentity(gender)
	result.SupervisorStatus = employee.ResolveSupervisor(result.SupervisorID, supervisorFound)
	return result, nil
}
