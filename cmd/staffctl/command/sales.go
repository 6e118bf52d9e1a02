package command

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (cl *commandline) salesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales <employee-id>",
		Short: "Show an employee's total sales broken down by client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			report, err := cl.services.Employees.SalesReport(cmd.Context(), id)
			if err != nil {
				return err
			}

			printf(cmd.OutOrStdout(), "Sales of %s\n", report.EmployeeName)
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Client", "Total"})
			table.SetAutoFormatHeaders(false)
			for _, c := range report.ByClient {
				table.Append([]string{c.ClientName, c.TotalSales})
			}
			table.SetFooter([]string{"Total", report.TotalSales})
			table.Render()
			return nil
		},
	}
}
