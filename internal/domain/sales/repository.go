package sales

import "context"

type SalesRepository interface {
	// ByClient returns one record per (employee, client) pair, ordered by
	// client name.
	ByClient(ctx context.Context, filter SalesFilter) ([]SalesRecord, error)
	// Totals returns one summed record per employee with sales.
	Totals(ctx context.Context, filter SalesFilter) ([]SalesRecord, error)
}
