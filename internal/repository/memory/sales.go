package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
	"github.com/shopspring/decimal"
)

type salesRepositoryImpl struct {
	store *Store
}

func NewSalesRepository(store *Store) sales.SalesRepository {
	return store.Sales()
}

// ByClient implements sales.SalesRepository.
func (r *salesRepositoryImpl) ByClient(ctx context.Context, filter sales.SalesFilter) ([]sales.SalesRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	where := filter.Predicate()
	records := make([]sales.SalesRecord, 0)
	for key, total := range s.sales {
		if !predicate.Match(where, predicate.Row{sales.ColumnEmployeeID: key.employeeID}) {
			continue
		}
		records = append(records, sales.SalesRecord{
			ClientID:     int64Ptr(key.clientID),
			ClientName:   s.clients[key.clientID],
			EmployeeID:   key.employeeID,
			EmployeeName: s.employees[key.employeeID].FullName(),
			TotalSales:   total,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.ClientName != b.ClientName {
			return a.ClientName < b.ClientName
		}
		if *a.ClientID != *b.ClientID {
			return *a.ClientID < *b.ClientID
		}
		return a.EmployeeID < b.EmployeeID
	})
	return records, nil
}

// Totals implements sales.SalesRepository.
func (r *salesRepositoryImpl) Totals(ctx context.Context, filter sales.SalesFilter) ([]sales.SalesRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	where := filter.Predicate()
	sums := make(map[int64]decimal.Decimal)
	for key, total := range s.sales {
		if !predicate.Match(where, predicate.Row{sales.ColumnEmployeeID: key.employeeID}) {
			continue
		}
		sums[key.employeeID] = sums[key.employeeID].Add(total)
	}

	records := make([]sales.SalesRecord, 0, len(sums))
	for id, total := range sums {
		records = append(records, sales.SalesRecord{
			EmployeeID:   id,
			EmployeeName: s.employees[id].FullName(),
			TotalSales:   total,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}
