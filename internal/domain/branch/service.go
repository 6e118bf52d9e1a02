package branch

import "context"

type BranchService interface {
	ListBranches(ctx context.Context) ([]BranchResponse, error)
	GetBranch(ctx context.Context, id int64) (BranchResponse, error)
	CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	UpdateBranch(ctx context.Context, req UpdateBranchRequest) (BranchResponse, error)
	DeleteBranch(ctx context.Context, id int64) error
}
