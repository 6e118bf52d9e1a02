package command

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (cl *commandline) branchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "Inspect branches",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List branches by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := cl.services.Branches.ListBranches(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Manager", "Since"})
			table.SetAutoFormatHeaders(false)
			for _, b := range result {
				manager, since := "", ""
				if b.ManagerID != nil {
					manager = strconv.FormatInt(*b.ManagerID, 10)
				}
				if b.ManagerStartedAt != nil {
					since = *b.ManagerStartedAt
				}
				table.Append([]string{strconv.FormatInt(b.ID, 10), b.Name, manager, since})
			}
			table.Render()
			return nil
		},
	})
	return cmd
}
