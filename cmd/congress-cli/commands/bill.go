package commands

import (
	"congressgov/lib/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	billCmd.Flags().Int("congress", 0, "The congress number, e.g. 117.")
	billCmd.Flags().String("type", "", "The bill type, e.g. hr or s.")
	billCmd.Flags().String("number", "", "The bill number.")
	billCmd.Flags().String("details", "", "A sub-resource view: actions, text, summaries, titles, cosponsors, ...")
	billCmd.Flags().Int("limit", 0, "Maximum results per page.")
	billCmd.Flags().Int("offset", 0, "Result offset for pagination.")
	billCmd.Flags().String("sort", "", "Sort order, asc or desc.")
	rootCmd.AddCommand(billCmd)
}

var billCmd = &cobra.Command{
	Use:   "bill [composite-id]",
	Short: "Queries bills, one bill (by composite id like 117-hr-123) or a bill sub-resource.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		req := congress.BillRequest{
			Congress: intFlag(cmd, "congress"),
			Filters: congress.Filters{
				Limit:  intFlag(cmd, "limit"),
				Offset: intFlag(cmd, "offset"),
			},
		}
		req.BillType, _ = cmd.Flags().GetString("type")
		req.Bill, _ = cmd.Flags().GetString("number")
		req.Details, _ = cmd.Flags().GetString("details")
		req.Sort, _ = cmd.Flags().GetString("sort")
		if len(args) == 1 {
			req.CompositeID = args[0]
		}

		body, err := client.Bills().Bill(cmd.Context(), req)
		if err != nil {
			fatal("request failed", err)
		}

		bills := listOf(body, "bills")
		if len(bills) == 0 {
			printJson(body)
			return
		}
		rows := make([]table.Row, 0, len(bills))
		for _, b := range bills {
			rows = append(rows, table.Row{
				field(b, "congress"),
				field(b, "type"),
				field(b, "number"),
				field(b, "title"),
				field(b, "latestAction", "text"),
			})
		}
		renderTable(table.Row{"Congress", "Type", "Number", "Title", "Latest Action"}, rows)
	},
}
