package sales

import "github.com/shopspring/decimal"

// SalesRecord is total sales of one employee, optionally broken down by
// client. ClientID is nil in the summed form.
type SalesRecord struct {
	ClientID     *int64
	ClientName   string
	EmployeeID   int64
	EmployeeName string
	TotalSales   decimal.Decimal
}
