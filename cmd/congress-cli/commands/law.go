package commands

import (
	"congressgov/lib/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	lawCmd.Flags().Int("congress", 0, "The congress number, e.g. 117.")
	lawCmd.Flags().String("law-type", "", "The law class, public or private.")
	lawCmd.Flags().String("number", "", "The law number.")
	lawCmd.Flags().Int("limit", 0, "Maximum results per page.")
	lawCmd.Flags().Int("offset", 0, "Result offset for pagination.")
	rootCmd.AddCommand(lawCmd)
}

var lawCmd = &cobra.Command{
	Use:   "law [composite-id]",
	Short: "Queries laws by congress (or composite id like 117-123), optionally narrowed by class.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		req := congress.LawRequest{
			Congress: intFlag(cmd, "congress"),
			Filters: congress.Filters{
				Limit:  intFlag(cmd, "limit"),
				Offset: intFlag(cmd, "offset"),
			},
		}
		req.LawType, _ = cmd.Flags().GetString("law-type")
		req.Law, _ = cmd.Flags().GetString("number")
		if len(args) == 1 {
			req.CompositeID = args[0]
		}

		body, err := client.Laws().Law(cmd.Context(), req)
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
				field(b, "number"),
				field(b, "title"),
				field(b, "latestAction", "text"),
			})
		}
		renderTable(table.Row{"Congress", "Number", "Title", "Latest Action"}, rows)
	},
}
