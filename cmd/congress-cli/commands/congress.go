package commands

import (
	"congressgov/lib/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	congressCmd.Flags().Int("congress", 0, "A specific congress number, e.g. 117.")
	congressCmd.Flags().Bool("current", false, "The sitting congress.")
	congressCmd.Flags().Int("limit", 0, "Maximum results per page.")
	congressCmd.Flags().Int("offset", 0, "Result offset for pagination.")
	rootCmd.AddCommand(congressCmd)
}

var congressCmd = &cobra.Command{
	Use:   "congress",
	Short: "Queries congress sessions.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		current, _ := cmd.Flags().GetBool("current")
		body, err := client.Congresses().Congress(cmd.Context(), congress.CongressRequest{
			Congress:        intFlag(cmd, "congress"),
			CurrentCongress: current,
			Filters: congress.Filters{
				Limit:  intFlag(cmd, "limit"),
				Offset: intFlag(cmd, "offset"),
			},
		})
		if err != nil {
			fatal("request failed", err)
		}

		congresses := listOf(body, "congresses")
		if len(congresses) == 0 {
			printJson(body)
			return
		}
		rows := make([]table.Row, 0, len(congresses))
		for _, c := range congresses {
			rows = append(rows, table.Row{
				field(c, "name"),
				field(c, "startYear"),
				field(c, "endYear"),
			})
		}
		renderTable(table.Row{"Name", "Start", "End"}, rows)
	},
}
