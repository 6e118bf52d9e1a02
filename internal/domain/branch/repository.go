package branch

import "context"

type BranchRepository interface {
	// List returns every branch ordered by name.
	List(ctx context.Context) ([]Branch, error)
	GetByID(ctx context.Context, id int64) (Branch, error)
	Create(ctx context.Context, branch Branch) (Branch, error)
	Update(ctx context.Context, req UpdateBranchRequest) error
	// Delete removes the branch and clears the branch of every employee
	// assigned to it.
	Delete(ctx context.Context, id int64) error
}
