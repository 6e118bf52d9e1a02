package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/cmlabs-hris/employee-manager-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewSalesRepository(setup.DB)

	jim := createEmployee(t, employees, "Jim", "Halpert", 60000, nil, nil)
	stanley := createEmployee(t, employees, "Stanley", "Hudson", 60000, nil, nil)
	phyllis := createEmployee(t, employees, "Phyllis", "Vance", 60000, nil, nil)

	blue := setup.insertClient(t, "Blue Cross")
	harper := setup.insertClient(t, "Harper Collins")
	setup.insertSale(t, jim.ID, harper, "1500.25")
	setup.insertSale(t, jim.ID, blue, "2500.00")
	setup.insertSale(t, stanley.ID, blue, "800")

	byClient, err := repo.ByClient(ctx, sales.SalesFilter{EmployeeID: &jim.ID})
	require.NoError(t, err)
	require.Len(t, byClient, 2)
	assert.Equal(t, "Blue Cross", byClient[0].ClientName)
	assert.Equal(t, "Jim Halpert", byClient[0].EmployeeName)
	assert.True(t, decimal.RequireFromString("2500").Equal(byClient[0].TotalSales))

	totals, err := repo.Totals(ctx, sales.SalesFilter{EmployeeID: &jim.ID})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Nil(t, totals[0].ClientID)
	assert.True(t, decimal.RequireFromString("4000.25").Equal(totals[0].TotalSales))

	none, err := repo.Totals(ctx, sales.SalesFilter{EmployeeID: &phyllis.ID})
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.Totals(ctx, sales.SalesFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
