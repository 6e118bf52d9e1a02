package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/employee-manager-go/internal/config"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/fixtures"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/memory"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/postgresql"
	branchService "github.com/cmlabs-hris/employee-manager-go/internal/service/branch"
	employeeService "github.com/cmlabs-hris/employee-manager-go/internal/service/employee"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the JSON logger used for application and request logs.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "employee-manager"),
		slog.String("env", cfg.App.Env),
	)
}

type Repositories struct {
	Employees employee.EmployeeRepository
	Branches  branch.BranchRepository
	Sales     sales.SalesRepository

	close func()
}

// Close releases the database pool, if any.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories connects the storage selected by DB_DRIVER. The memory
// driver starts from the demo data set.
func OpenRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		if _, err := fixtures.Seed(ctx, store); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		return &Repositories{
			Employees: store.Employees(),
			Branches:  store.Branches(),
			Sales:     store.Sales(),
		}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.Options{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return &Repositories{
			Employees: postgresql.NewEmployeeRepository(db),
			Branches:  postgresql.NewBranchRepository(db),
			Sales:     postgresql.NewSalesRepository(db),
			close:     db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

type Services struct {
	Employees *employeeService.EmployeeServiceImpl
	Branches  branch.BranchService
}

func NewServices(repos *Repositories, opts ...employeeService.Option) *Services {
	return &Services{
		Employees: employeeService.NewEmployeeService(repos.Employees, repos.Branches, repos.Sales, opts...),
		Branches:  branchService.NewBranchService(repos.Branches),
	}
}
