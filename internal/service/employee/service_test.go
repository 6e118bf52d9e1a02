package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/message"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *memory.Store
	svc      *EmployeeServiceImpl
	scranton branch.Branch
	stamford branch.Branch
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	scranton, err := store.Branches().Create(ctx, branch.Branch{Name: "Scranton"})
	require.NoError(t, err)
	stamford, err := store.Branches().Create(ctx, branch.Branch{Name: "Stamford"})
	require.NoError(t, err)

	svc := NewEmployeeService(store.Employees(), store.Branches(), store.Sales(), WithClock(func() time.Time { return fixedNow }))
	return &testEnv{store: store, svc: svc, scranton: scranton, stamford: stamford}
}

func (e *testEnv) form(given, family, salary string, branchID int64) employee.EmployeeForm {
	return employee.EmployeeForm{
		GivenName:      given,
		FamilyName:     family,
		DateOfBirth:    "1980-01-01",
		GenderIdentity: "M",
		GrossSalary:    salary,
		BranchID:       &branchID,
	}
}

func (e *testEnv) create(t *testing.T, form employee.EmployeeForm) employee.EmployeeResponse {
	t.Helper()
	resp, _, err := e.svc.CreateEmployee(context.Background(), form)
	require.NoError(t, err)
	return resp
}

func TestSearchEmployees(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.create(t, env.form("John", "Smith", "65000", env.scranton.ID))
	env.create(t, env.form("John", "Brown", "55000", env.stamford.ID))
	env.create(t, env.form("Amy", "Zed", "70000", env.scranton.ID))

	t.Run("clear filters returns everyone in order", func(t *testing.T) {
		got, err := env.svc.SearchEmployees(ctx, employee.SearchForm{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Brown", got[0].FamilyName)
		assert.Equal(t, "Smith", got[1].FamilyName)
		assert.Equal(t, "Zed", got[2].FamilyName)
	})

	t.Run("name tokens", func(t *testing.T) {
		got, err := env.svc.SearchEmployees(ctx, employee.SearchForm{Name: "Jo Sm"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "John Smith", got[0].FullName)
		assert.Equal(t, "Scranton", got[0].BranchName)
	})

	t.Run("branch and salary bounds", func(t *testing.T) {
		got, err := env.svc.SearchEmployees(ctx, employee.SearchForm{
			BranchID:  "1",
			MinSalary: "60000",
			MaxSalary: "70000",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Smith", got[0].FamilyName)
	})

	t.Run("inverted range is rejected before querying", func(t *testing.T) {
		env.store.SetFailure(errors.New("must not be reached"))
		defer env.store.SetFailure(nil)

		got, err := env.svc.SearchEmployees(ctx, employee.SearchForm{MinSalary: "50000", MaxSalary: "40000"})
		assert.ErrorIs(t, err, employee.ErrInvalidSalaryRange)
		assert.NotErrorIs(t, err, database.ErrStorage)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		msg := message.FromError(err)
		assert.Equal(t, message.SeverityWarning, msg.Severity)
		assert.Equal(t, "Salary range not valid", msg.Caption)
		assert.Equal(t, "The minimum salary must be lower than the maximum salary.", msg.Text)
	})
}

func TestSearchEmployees_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetFailure(errors.New("connection reset by peer"))

	got, err := env.svc.SearchEmployees(context.Background(), employee.SearchForm{Name: "anyone"})
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrStorage)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	var storageErr *database.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "search employees", storageErr.Op)
	assert.NotEmpty(t, storageErr.Ref)

	msg := message.FromError(err)
	assert.Equal(t, message.SeverityError, msg.Severity)
	assert.Equal(t, "Database error", msg.Caption)
}

func TestGetEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.create(t, env.form("Pam", "Beesly", "41000", env.scranton.ID))

	got, err := env.svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pam Beesly", got.FullName)
	assert.Equal(t, "1980-01-01", got.DateOfBirth)
	assert.Equal(t, string(employee.SupervisorNone), got.SupervisorStatus)

	_, err = env.svc.GetEmployee(ctx, 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	env.store.SetFailure(errors.New("timeout"))
	_, err = env.svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, database.ErrStorage)
}

func TestCreateAndUpdateEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	boss := env.create(t, env.form("Michael", "Scott", "80000", env.scranton.ID))

	form := env.form("Dwight", "Schrute", "60000", env.scranton.ID)
	form.SupervisorID = &boss.ID
	dwight := env.create(t, form)
	assert.Equal(t, "Michael Scott", dwight.SupervisorName)
	assert.Equal(t, string(employee.SupervisorAssigned), dwight.SupervisorStatus)
	assert.Equal(t, "Scranton", dwight.BranchName)

	form.GrossSalary = "62000"
	form.BranchID = &env.stamford.ID
	updated, msg, err := env.svc.UpdateEmployee(ctx, dwight.ID, form)
	require.NoError(t, err)
	assert.Equal(t, message.SeverityInfo, msg.Severity)
	assert.Equal(t, "Dwight Schrute was updated.", msg.Text)
	assert.Equal(t, int64(62000), updated.GrossSalary)
	assert.Equal(t, "Stamford", updated.BranchName)

	form.SupervisorID = &dwight.ID
	_, msg, err = env.svc.UpdateEmployee(ctx, dwight.ID, form)
	assert.ErrorIs(t, err, employee.ErrSelfSupervision)
	assert.Equal(t, message.SeverityWarning, msg.Severity)

	_, _, err = env.svc.UpdateEmployee(ctx, 999, form)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	bad := env.form("Kevin", "Malone", "lots", env.scranton.ID)
	_, msg, err = env.svc.CreateEmployee(ctx, bad)
	assert.ErrorIs(t, err, employee.ErrSalaryNotANumber)
	assert.Equal(t, "Salary not valid", msg.Caption)

	kevin, msg, err := env.svc.CreateEmployee(ctx, env.form("Kevin", "Malone", "58000", env.scranton.ID))
	require.NoError(t, err)
	assert.Equal(t, "Employee added", msg.Caption)
	assert.Equal(t, "Kevin Malone was added.", msg.Text)
	assert.NotZero(t, kevin.ID)
}

func TestCreateEmployee_RejectsMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	missingBranch := env.form("Toby", "Flenderson", "50000", 999)
	_, msg, err := env.svc.CreateEmployee(ctx, missingBranch)
	assert.ErrorIs(t, err, employee.ErrBranchNotFound)
	assert.Equal(t, message.SeverityWarning, msg.Severity)
	assert.Equal(t, "Branch not valid", msg.Caption)

	ghost := int64(4242)
	missingSupervisor := env.form("Toby", "Flenderson", "50000", env.scranton.ID)
	missingSupervisor.SupervisorID = &ghost
	_, msg, err = env.svc.CreateEmployee(ctx, missingSupervisor)
	assert.ErrorIs(t, err, employee.ErrSupervisorNotFound)
	assert.Equal(t, "Supervisor not valid", msg.Caption)

	toby := env.create(t, env.form("Toby", "Flenderson", "50000", env.scranton.ID))
	require.NoError(t, env.store.Branches().Delete(ctx, env.stamford.ID))
	moved := env.form("Toby", "Flenderson", "50000", env.stamford.ID)
	_, _, err = env.svc.UpdateEmployee(ctx, toby.ID, moved)
	assert.ErrorIs(t, err, employee.ErrBranchNotFound)

	all, err := env.svc.ListEmployees(ctx, employee.SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Scranton", all[0].BranchName)
	assert.Equal(t, string(employee.SupervisorNone), all[0].SupervisorStatus)
}

func TestDeleteEmployee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	boss := env.create(t, env.form("Michael", "Scott", "80000", env.scranton.ID))
	form := env.form("Dwight", "Schrute", "60000", env.scranton.ID)
	form.SupervisorID = &boss.ID
	dwight := env.create(t, form)

	require.NoError(t, env.svc.DeleteEmployee(ctx, boss.ID))

	got, err := env.svc.GetEmployee(ctx, dwight.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupervisorID)
	assert.Equal(t, string(employee.SupervisorNone), got.SupervisorStatus)

	assert.ErrorIs(t, env.svc.DeleteEmployee(ctx, boss.ID), employee.ErrEmployeeNotFound)

	env.store.SetFailure(errors.New("disk full"))
	assert.ErrorIs(t, env.svc.DeleteEmployee(ctx, dwight.ID), database.ErrStorage)
}

func TestSalesReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	jim := env.create(t, env.form("Jim", "Halpert", "60000", env.scranton.ID))
	toby := env.create(t, env.form("Toby", "Flenderson", "50000", env.scranton.ID))

	harper, err := env.store.AddClient("Harper Collins")
	require.NoError(t, err)
	blue, err := env.store.AddClient("Blue Cross")
	require.NoError(t, err)
	require.NoError(t, env.store.RecordSale(jim.ID, harper, decimal.RequireFromString("10000.40")))
	require.NoError(t, env.store.RecordSale(jim.ID, blue, decimal.RequireFromString("2345")))

	report, err := env.svc.SalesReport(ctx, jim.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jim Halpert", report.EmployeeName)
	assert.Equal(t, "$12,345", report.TotalSales)
	require.Len(t, report.ByClient, 2)
	assert.Equal(t, "Blue Cross", report.ByClient[0].ClientName)
	assert.Equal(t, "$2,345", report.ByClient[0].TotalSales)

	empty, err := env.svc.SalesReport(ctx, toby.ID)
	require.NoError(t, err)
	assert.Equal(t, "$0", empty.TotalSales)
	assert.NotNil(t, empty.ByClient)
	assert.Empty(t, empty.ByClient)

	_, err = env.svc.SalesReport(ctx, 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
