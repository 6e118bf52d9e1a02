package sales

import (
	"testing"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/predicate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"999", "$999"},
		{"1000", "$1,000"},
		{"12345.6", "$12,346"},
		{"1234567", "$1,234,567"},
		{"-4500", "-$4,500"},
		{"-0.4", "$0"},
		{"1000000000", "$1,000,000,000"},
		{"13100.50", "$13,101"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestSalesFilter_Predicate(t *testing.T) {
	assert.True(t, predicate.IsEmpty(SalesFilter{}.Predicate()))

	id := int64(7)
	sql, args := predicate.Render(SalesFilter{EmployeeID: &id}.Predicate(), 0)
	assert.Equal(t, "ww.employee_id = $1", sql)
	assert.Equal(t, []interface{}{int64(7)}, args)
}
