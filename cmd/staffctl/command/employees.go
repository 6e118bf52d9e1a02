package command

import (
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-manager-go/internal/domain/sales"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (cl *commandline) employeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Short:   "Search, show and delete employees",
		Aliases: []string{"emp"},
	}
	cmd.AddCommand(
		cl.employeesSearchCmd(),
		cl.employeesShowCmd(),
		cl.employeesDeleteCmd(),
	)
	return cmd
}

func (cl *commandline) employeesSearchCmd() *cobra.Command {
	var form employee.SearchForm

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List employees matching the filters, all of them when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := cl.services.Employees.SearchEmployees(cmd.Context(), form)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Branch", "Supervisor", "Salary"})
			table.SetAutoFormatHeaders(false)
			for _, e := range result {
				table.Append([]string{
					strconv.FormatInt(e.ID, 10),
					e.FullName,
					e.BranchName,
					supervisorLabel(e),
					formatSalary(e.GrossSalary),
				})
			}
			table.Render()
			printf(cmd.OutOrStdout(), "%d employee(s)\n", len(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "name tokens, each matching part of the given or family name")
	cmd.Flags().StringVar(&form.BranchID, "branch", "", "branch id")
	cmd.Flags().StringVar(&form.MinSalary, "min-salary", "", "salary strictly greater than")
	cmd.Flags().StringVar(&form.MaxSalary, "max-salary", "", "salary strictly lower than")
	return cmd
}

func (cl *commandline) employeesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := cl.services.Employees.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoFormatHeaders(false)
			table.AppendBulk([][]string{
				{"ID", strconv.FormatInt(e.ID, 10)},
				{"Given name", e.GivenName},
				{"Family name", e.FamilyName},
				{"Date of birth", e.DateOfBirth},
				{"Gender identity", e.GenderIdentity},
				{"Gross salary", formatSalary(e.GrossSalary)},
				{"Branch", e.BranchName},
				{"Supervisor", supervisorLabel(e)},
			})
			table.Render()
			return nil
		},
	}
}

func (cl *commandline) employeesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <employee-id>",
		Short: "Delete an employee together with their sales and supervisor links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := cl.services.Employees.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Employee %d was deleted.\n", id)
			return nil
		},
	}
}

func parseID(text string) (int64, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", text)
	}
	return id, nil
}

func supervisorLabel(e employee.EmployeeResponse) string {
	switch employee.SupervisorStatus(e.SupervisorStatus) {
	case employee.SupervisorAssigned:
		return e.SupervisorName
	case employee.SupervisorUnresolved:
		return fmt.Sprintf("(unknown #%d)", *e.SupervisorID)
	default:
		return ""
	}
}

func formatSalary(salary int64) string {
	return sales.FormatCurrency(decimal.NewFromInt(salary))
}
