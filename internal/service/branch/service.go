package branch

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/metrics"
	"github.com/jackc/pgx/v5/pgconn"
)

type branchServiceImpl struct {
	branchRepo branch.BranchRepository
}

func NewBranchService(branchRepo branch.BranchRepository) branch.BranchService {
	return &branchServiceImpl{branchRepo: branchRepo}
}

func mapBranchToResponse(b branch.Branch) branch.BranchResponse {
	resp := branch.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		ManagerID: b.ManagerID,
	}
	if b.ManagerStartedAt != nil {
		s := b.ManagerStartedAt.Format(time.RFC3339)
		resp.ManagerStartedAt = &s
	}
	return resp
}

// classify maps repository errors onto domain errors, treating anything
// unrecognised as a storage failure of op.
func classify(op string, err error) error {
	if errors.Is(err, branch.ErrBranchNotFound) || errors.Is(err, branch.ErrBranchNameExists) {
		return err
	}
	// Check for duplicate name (unique constraint violation)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return branch.ErrBranchNameExists
	}
	return database.NewStorageError(op, err)
}

func (s *branchServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return []branch.BranchResponse{}, classify("list branches", err)
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, mapBranchToResponse(b))
	}
	return responses, nil
}

func (s *branchServiceImpl) GetBranch(ctx context.Context, id int64) (branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, classify("get branch", err)
	}
	return mapBranchToResponse(b), nil
}

func (s *branchServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.CountRejections(err)
		return branch.BranchResponse{}, err
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{Name: req.Name})
	if err != nil {
		return branch.BranchResponse{}, classify("create branch", err)
	}
	return mapBranchToResponse(created), nil
}

func (s *branchServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.CountRejections(err)
		return branch.BranchResponse{}, err
	}

	if err := s.branchRepo.Update(ctx, req); err != nil {
		return branch.BranchResponse{}, classify("update branch", err)
	}
	return s.GetBranch(ctx, req.ID)
}

func (s *branchServiceImpl) DeleteBranch(ctx context.Context, id int64) error {
	if err := s.branchRepo.Delete(ctx, id); err != nil {
		return classify("delete branch", err)
	}
	return nil
}
