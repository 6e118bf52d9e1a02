package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	query := `
		INSERT INTO branches (branch_name, manager_id, manager_started_at, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, branch_name, manager_id, manager_started_at, created_at, updated_at
	`

	var result branch.Branch
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		return scanBranch(q.QueryRow(ctx, query, b.Name, b.ManagerID, b.ManagerStartedAt), &result)
	})
	if err != nil {
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id int64) (branch.Branch, error) {
	query := `
		SELECT id, branch_name, manager_id, manager_started_at, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var result branch.Branch
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		return scanBranch(q.QueryRow(ctx, query, id), &result)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	query := `
		SELECT id, branch_name, manager_id, manager_started_at, created_at, updated_at
		FROM branches
		ORDER BY LOWER(branch_name) ASC, id ASC
	`

	branches := make([]branch.Branch, 0)
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to get branches: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var b branch.Branch
			if err := scanBranch(rows, &b); err != nil {
				return fmt.Errorf("failed to scan branch: %w", err)
			}
			branches = append(branches, b)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return branches, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	// Build dynamic update query
	query := `UPDATE branches SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", branch_name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	return withQuerier(ctx, r.db, func(q database.Querier) error {
		commandTag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update branch: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return branch.ErrBranchNotFound
		}
		return nil
	})
}

// Delete implements branch.BranchRepository.
func (r *branchRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE employees SET branch_id = NULL, updated_at = NOW() WHERE branch_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to clear employee branches: %w", err)
		}

		commandTag, err := tx.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete branch: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return branch.ErrBranchNotFound
		}
		return nil
	})
}

func scanBranch(row pgx.Row, b *branch.Branch) error {
	return row.Scan(&b.ID, &b.Name, &b.ManagerID, &b.ManagerStartedAt, &b.CreatedAt, &b.UpdatedAt)
}
