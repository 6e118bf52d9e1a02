// Package memory keeps every table in process memory. It evaluates the same
// predicates as the postgres adapter and backs demo mode and service tests.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/shopspring/decimal"
)

type saleKey struct {
	employeeID int64
	clientID   int64
}

// Store holds the employees, branches, clients and working_with tables.
// The repositories returned by its constructors share one lock.
type Store struct {
	mu        sync.RWMutex
	employees map[int64]employee.Employee
	branches  map[int64]branch.Branch
	clients   map[int64]string
	sales     map[saleKey]decimal.Decimal

	nextEmployeeID int64
	nextBranchID   int64
	nextClientID   int64

	failure error
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees: make(map[int64]employee.Employee),
		branches:  make(map[int64]branch.Branch),
		clients:   make(map[int64]string),
		sales:     make(map[saleKey]decimal.Decimal),
		now:       time.Now,
	}
}

// SetFailure makes every subsequent operation return err. A nil err
// restores normal behaviour.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// AddClient inserts a client and returns its id.
func (s *Store) AddClient(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return 0, s.failure
	}
	s.nextClientID++
	s.clients[s.nextClientID] = name
	return s.nextClientID, nil
}

// RecordSale adds amount to the working_with row of the pair.
func (s *Store) RecordSale(employeeID, clientID int64, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	if _, ok := s.employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	if _, ok := s.clients[clientID]; !ok {
		return ErrClientNotFound
	}

	key := saleKey{employeeID: employeeID, clientID: clientID}
	s.sales[key] = s.sales[key].Add(amount)
	return nil
}

// SetBranchManager records employeeID as manager of branchID since at.
func (s *Store) SetBranchManager(branchID, employeeID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	b, ok := s.branches[branchID]
	if !ok {
		return branch.ErrBranchNotFound
	}
	if _, ok := s.employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}

	b.ManagerID = &employeeID
	b.ManagerStartedAt = &at
	b.UpdatedAt = s.now()
	s.branches[branchID] = b
	return nil
}

// Employees, Branches and Sales return repositories over the store.
func (s *Store) Employees() employee.EmployeeRepository { return &employeeRepositoryImpl{store: s} }
func (s *Store) Branches() branch.BranchRepository      { return &branchRepositoryImpl{store: s} }
func (s *Store) Sales() sales.SalesRepository           { return &salesRepositoryImpl{store: s} }

func int64Ptr(v int64) *int64 { return &v }
