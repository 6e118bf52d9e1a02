package branch

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/memory"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewBranchService(store.Branches())

	created, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: " Scranton "})
	require.NoError(t, err)
	assert.Equal(t, "Scranton", created.Name)

	_, err = svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "scranton"})
	assert.ErrorIs(t, err, branch.ErrBranchNameExists)

	_, err = svc.CreateBranch(ctx, branch.CreateBranchRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	name := "Stamford"
	updated, err := svc.UpdateBranch(ctx, branch.UpdateBranchRequest{ID: created.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Stamford", updated.Name)

	list, err := svc.ListBranches(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteBranch(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteBranch(ctx, created.ID), branch.ErrBranchNotFound)

	_, err = svc.GetBranch(ctx, created.ID)
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
}

func TestBranchService_StorageFailure(t *testing.T) {
	store := memory.NewStore()
	svc := NewBranchService(store.Branches())
	store.SetFailure(errors.New("connection refused"))

	list, err := svc.ListBranches(context.Background())
	assert.ErrorIs(t, err, database.ErrStorage)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClassify(t *testing.T) {
	err := classify("create branch", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, err, branch.ErrBranchNameExists)

	err = classify("create branch", &pgconn.PgError{Code: "08006"})
	assert.ErrorIs(t, err, database.ErrStorage)

	assert.ErrorIs(t, classify("get branch", branch.ErrBranchNotFound), branch.ErrBranchNotFound)
}
