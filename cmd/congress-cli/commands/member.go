package commands

import (
	"congressgov/lib/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	memberCmd.Flags().Int("congress", 0, "The congress number, e.g. 117.")
	memberCmd.Flags().String("state", "", "Two-letter state code, e.g. CA.")
	memberCmd.Flags().Int("district", 0, "Congressional district number.")
	memberCmd.Flags().String("details", "", "A sub-resource view: sponsor or cosponsor.")
	memberCmd.Flags().Int("limit", 0, "Maximum results per page.")
	memberCmd.Flags().Int("offset", 0, "Result offset for pagination.")
	rootCmd.AddCommand(memberCmd)
}

var memberCmd = &cobra.Command{
	Use:   "member [bioguide-id]",
	Short: "Queries members, one member (by bioguide id like A000360) or by congress/state/district.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		req := congress.MemberRequest{
			Congress: intFlag(cmd, "congress"),
			District: intFlag(cmd, "district"),
			Filters: congress.Filters{
				Limit:  intFlag(cmd, "limit"),
				Offset: intFlag(cmd, "offset"),
			},
		}
		req.State, _ = cmd.Flags().GetString("state")
		req.Details, _ = cmd.Flags().GetString("details")
		if len(args) == 1 {
			req.MemberID = args[0]
		}

		body, err := client.Members().Member(cmd.Context(), req)
		if err != nil {
			fatal("request failed", err)
		}

		members := listOf(body, "members")
		if len(members) == 0 {
			printJson(body)
			return
		}
		rows := make([]table.Row, 0, len(members))
		for _, m := range members {
			rows = append(rows, table.Row{
				field(m, "bioguideId"),
				field(m, "name"),
				field(m, "partyName"),
				field(m, "state"),
				field(m, "district"),
			})
		}
		renderTable(table.Row{"Bioguide", "Name", "Party", "State", "District"}, rows)
	},
}
