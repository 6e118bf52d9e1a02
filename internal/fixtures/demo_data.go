package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededDataIDs holds the ids assigned to the demo data
type SeededDataIDs struct {
	// Branch IDs by name
	BranchIDs map[string]int64 // e.g., "Scranton" -> 1

	// Employee IDs by full name
	EmployeeIDs map[string]int64 // e.g., "Michael Scott" -> 1

	// Client IDs by name
	ClientIDs map[string]int64
}

// NewSeededDataIDs creates a new SeededDataIDs with initialized maps
func NewSeededDataIDs() *SeededDataIDs {
	return &SeededDataIDs{
		BranchIDs:   make(map[string]int64),
		EmployeeIDs: make(map[string]int64),
		ClientIDs:   make(map[string]int64),
	}
}

// ==========================================
// DEFAULT BRANCHES
// ==========================================

// BranchDefinition is a branch and the employee who manages it
type BranchDefinition struct {
	Name             string
	Manager          string // full name, "" for none
	ManagerStartedAt time.Time
}

// GetDefaultBranches returns the demo branches
func GetDefaultBranches() []BranchDefinition {
	return []BranchDefinition{
		{Name: "Scranton", Manager: "Michael Scott", ManagerStartedAt: date(2001, time.March, 1)},
		{Name: "Stamford", Manager: "Josh Porter", ManagerStartedAt: date(2003, time.July, 15)},
		{Name: "Nashua"},
	}
}

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

// EmployeeDefinition references its branch and supervisor by name so the
// list can be seeded before ids are known. Supervisors come before the
// employees they supervise.
type EmployeeDefinition struct {
	Employee   employee.Employee
	Branch     string
	Supervisor string // full name, "" for none
}

// GetDefaultEmployees returns the demo employees
func GetDefaultEmployees() []EmployeeDefinition {
	return []EmployeeDefinition{
		{
			Employee: employee.Employee{GivenName: "David", FamilyName: "Wallace", DateOfBirth: date(1967, time.November, 15), GenderIdentity: employee.GenderMale, GrossSalary: 250000},
			Branch:   "Scranton",
		},
		{
			Employee:   employee.Employee{GivenName: "Michael", FamilyName: "Scott", DateOfBirth: date(1964, time.March, 15), GenderIdentity: employee.GenderMale, GrossSalary: 75000},
			Branch:     "Scranton",
			Supervisor: "David Wallace",
		},
		{
			Employee:   employee.Employee{GivenName: "Josh", FamilyName: "Porter", DateOfBirth: date(1969, time.September, 5), GenderIdentity: employee.GenderMale, GrossSalary: 100000},
			Branch:     "Stamford",
			Supervisor: "David Wallace",
		},
		{
			Employee:   employee.Employee{GivenName: "Dwight", FamilyName: "Schrute", DateOfBirth: date(1970, time.January, 20), GenderIdentity: employee.GenderMale, GrossSalary: 65000},
			Branch:     "Scranton",
			Supervisor: "Michael Scott",
		},
		{
			Employee:   employee.Employee{GivenName: "Jim", FamilyName: "Halpert", DateOfBirth: date(1978, time.October, 1), GenderIdentity: employee.GenderMale, GrossSalary: 65000},
			Branch:     "Scranton",
			Supervisor: "Michael Scott",
		},
		{
			Employee:   employee.Employee{GivenName: "Pam", FamilyName: "Beesly", DateOfBirth: date(1979, time.March, 25), GenderIdentity: employee.GenderFemale, GrossSalary: 41000},
			Branch:     "Scranton",
			Supervisor: "Michael Scott",
		},
		{
			Employee:   employee.Employee{GivenName: "Angela", FamilyName: "Martin", DateOfBirth: date(1971, time.November, 11), GenderIdentity: employee.GenderFemale, GrossSalary: 63500},
			Branch:     "Scranton",
			Supervisor: "Michael Scott",
		},
		{
			Employee:   employee.Employee{GivenName: "Karen", FamilyName: "Filippelli", DateOfBirth: date(1979, time.February, 12), GenderIdentity: employee.GenderFemale, GrossSalary: 62000},
			Branch:     "Stamford",
			Supervisor: "Josh Porter",
		},
		{
			Employee: employee.Employee{GivenName: "Jan", FamilyName: "Levinson", DateOfBirth: date(1961, time.May, 11), GenderIdentity: employee.GenderFemale, GrossSalary: 110000},
			Branch:   "Nashua",
		},
	}
}

// ==========================================
// DEFAULT CLIENTS AND SALES
// ==========================================

// SaleDefinition is one sale of an employee to a client
type SaleDefinition struct {
	Employee string
	Client   string
	Amount   decimal.Decimal
}

// GetDefaultClients returns the demo client names
func GetDefaultClients() []string {
	return []string{"Dunmore High School", "Lackawanna County", "Hammermill Products", "FedEx", "Blue Cross"}
}

// GetDefaultSales returns the demo sales
func GetDefaultSales() []SaleDefinition {
	return []SaleDefinition{
		{Employee: "Michael Scott", Client: "Dunmore High School", Amount: decimal.NewFromInt(12000)},
		{Employee: "Michael Scott", Client: "Lackawanna County", Amount: decimal.NewFromInt(55000)},
		{Employee: "Dwight Schrute", Client: "Dunmore High School", Amount: decimal.NewFromInt(138000)},
		{Employee: "Dwight Schrute", Client: "Hammermill Products", Amount: decimal.NewFromInt(5000)},
		{Employee: "Jim Halpert", Client: "FedEx", Amount: decimal.NewFromInt(5600)},
		{Employee: "Jim Halpert", Client: "Blue Cross", Amount: decimal.RequireFromString("7500.50")},
		{Employee: "Karen Filippelli", Client: "Hammermill Products", Amount: decimal.NewFromInt(12000)},
		{Employee: "Karen Filippelli", Client: "FedEx", Amount: decimal.NewFromInt(8500)},
	}
}

// ==========================================
// SEEDING
// ==========================================

// Store is what Seed needs beyond the repositories: clients, sales and
// branch managers have no repository of their own.
type Store interface {
	Employees() employee.EmployeeRepository
	Branches() branch.BranchRepository
	AddClient(name string) (int64, error)
	RecordSale(employeeID, clientID int64, amount decimal.Decimal) error
	SetBranchManager(branchID, employeeID int64, at time.Time) error
}

// Seed loads the demo data into store
func Seed(ctx context.Context, store Store) (*SeededDataIDs, error) {
	ids := NewSeededDataIDs()

	branches := GetDefaultBranches()
	for _, def := range branches {
		b, err := store.Branches().Create(ctx, branch.Branch{Name: def.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to seed branch %s: %w", def.Name, err)
		}
		ids.BranchIDs[def.Name] = b.ID
	}

	for _, def := range GetDefaultEmployees() {
		emp := def.Employee
		if id, ok := ids.BranchIDs[def.Branch]; ok {
			emp.BranchID = &id
		}
		if def.Supervisor != "" {
			id, ok := ids.EmployeeIDs[def.Supervisor]
			if !ok {
				return nil, fmt.Errorf("supervisor %s of %s is not seeded yet", def.Supervisor, emp.FullName())
			}
			emp.SupervisorID = &id
		}

		created, err := store.Employees().Create(ctx, emp)
		if err != nil {
			return nil, fmt.Errorf("failed to seed employee %s: %w", emp.FullName(), err)
		}
		ids.EmployeeIDs[created.FullName()] = created.ID
	}

	for _, def := range branches {
		if def.Manager == "" {
			continue
		}
		if err := store.SetBranchManager(ids.BranchIDs[def.Name], ids.EmployeeIDs[def.Manager], def.ManagerStartedAt); err != nil {
			return nil, fmt.Errorf("failed to seed manager of %s: %w", def.Name, err)
		}
	}

	for _, name := range GetDefaultClients() {
		id, err := store.AddClient(name)
		if err != nil {
			return nil, fmt.Errorf("failed to seed client %s: %w", name, err)
		}
		ids.ClientIDs[name] = id
	}

	for _, sale := range GetDefaultSales() {
		if err := store.RecordSale(ids.EmployeeIDs[sale.Employee], ids.ClientIDs[sale.Client], sale.Amount); err != nil {
			return nil, fmt.Errorf("failed to seed sale of %s to %s: %w", sale.Employee, sale.Client, err)
		}
	}

	return ids, nil
}
