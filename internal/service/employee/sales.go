package employee

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// SalesReport implements employee.EmployeeService. An employee without
// sales reports a total of $0 and an empty breakdown.
func (s *EmployeeServiceImpl) SalesReport(ctx context.Context, employeeID int64) (sales.SalesReportResponse, error) {
	report := sales.SalesReportResponse{
		EmployeeID: employeeID,
		TotalSales: sales.FormatCurrency(decimal.Zero),
		ByClient:   []sales.ClientSalesResponse{},
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report, employee.ErrEmployeeNotFound
		}
		return report, database.NewStorageError("get employee", err)
	}
	report.EmployeeName = emp.FullName()

	filter := sales.SalesFilter{EmployeeID: &employeeID}

	totals, err := s.salesRepo.Totals(ctx, filter)
	if err != nil {
		return report, database.NewStorageError("sum sales", err)
	}
	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t.TotalSales)
	}

	byClient, err := s.salesRepo.ByClient(ctx, filter)
	if err != nil {
		return report, database.NewStorageError("list sales by client", err)
	}

	report.TotalSales = sales.FormatCurrency(total)
	for _, rec := range byClient {
		report.ByClient = append(report.ByClient, sales.ClientSalesResponse{
			ClientID:   rec.ClientID,
			ClientName: rec.ClientName,
			TotalSales: sales.FormatCurrency(rec.TotalSales),
		})
	}
	return report, nil
}
