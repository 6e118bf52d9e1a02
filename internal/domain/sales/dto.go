package sales

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

type ClientSalesResponse struct {
	ClientID   *int64 `json:"client_id"`
	ClientName string `json:"client_name"`
	TotalSales string `json:"total_sales"`
}

type SalesReportResponse struct {
	EmployeeID   int64                 `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	TotalSales   string                `json:"total_sales"`
	ByClient     []ClientSalesResponse `json:"by_client"`
}

// FormatCurrency renders d as whole dollars with thousands separators,
// e.g. $12,346.
func FormatCurrency(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}
