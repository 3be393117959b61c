package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"congressgov/lib/congress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// listOf pulls the named list out of a decoded response body.
func listOf(body map[string]any, key string) []map[string]any {
	items, _ := body[key].([]any)
	var out []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// field walks nested maps and renders the leaf as a string, or "" when
// any step is missing.
func field(m map[string]any, path ...string) string {
	var current any = m
	for _, p := range path {
		mm, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current = mm[p]
	}
	if current == nil {
		return ""
	}
	return fmt.Sprint(current)
}

func renderTable(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

func printJson(body map[string]any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		fatal("failed to encode response", err)
	}
}

// intFlag reads an optional integer flag, nil when the user did not set it.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		fatal("failed to read flag", err)
	}
	return congress.Int(v)
}
