package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
	"github.com/jackc/pgx/v5"
)

type salesRepositoryImpl struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepositoryImpl{db: db}
}

// ByClient implements sales.SalesRepository.
func (r *salesRepositoryImpl) ByClient(ctx context.Context, filter sales.SalesFilter) ([]sales.SalesRecord, error) {
	clause, args := predicate.Where(filter.Predicate())
	query := `
		SELECT ww.client_id, COALESCE(c.client_name, ''), ww.employee_id,
			e.given_name || ' ' || e.family_name, SUM(ww.total_sales)
		FROM working_with ww
		JOIN employees e ON e.id = ww.employee_id
		LEFT JOIN clients c ON c.id = ww.client_id
	` + clause + `
		GROUP BY ww.client_id, c.client_name, ww.employee_id, e.given_name, e.family_name
		ORDER BY c.client_name, ww.client_id, ww.employee_id
	`

	return r.query(ctx, query, args, func(rows pgx.Rows, rec *sales.SalesRecord) error {
		return rows.Scan(&rec.ClientID, &rec.ClientName, &rec.EmployeeID, &rec.EmployeeName, &rec.TotalSales)
	})
}

// Totals implements sales.SalesRepository.
func (r *salesRepositoryImpl) Totals(ctx context.Context, filter sales.SalesFilter) ([]sales.SalesRecord, error) {
	clause, args := predicate.Where(filter.Predicate())
	query := `
		SELECT ww.employee_id, e.given_name || ' ' || e.family_name, SUM(ww.total_sales)
		FROM working_with ww
		JOIN employees e ON e.id = ww.employee_id
	` + clause + `
		GROUP BY ww.employee_id, e.given_name, e.family_name
		ORDER BY ww.employee_id
	`

	return r.query(ctx, query, args, func(rows pgx.Rows, rec *sales.SalesRecord) error {
		return rows.Scan(&rec.EmployeeID, &rec.EmployeeName, &rec.TotalSales)
	})
}

func (r *salesRepositoryImpl) query(
	ctx context.Context,
	query string,
	args []interface{},
	scan func(rows pgx.Rows, rec *sales.SalesRecord) error,
) ([]sales.SalesRecord, error) {
	records := make([]sales.SalesRecord, 0)
	err := withQuerier(ctx, r.db, func(q database.Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query sales: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var rec sales.SalesRecord
			if err := scan(rows, &rec); err != nil {
				return fmt.Errorf("failed to scan sales record: %w", err)
			}
			records = append(records, rec)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
