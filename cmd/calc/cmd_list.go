package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"founder_calculators/pkg/core/catalog"
)

var listJSON bool

// listCmd prints the calculator catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available calculators",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the catalog, including field schemas, as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	entries := catalog.Default().All()
	out := cmd.OutOrStdout()

	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSLUG\tTITLE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Category, e.Slug, e.Title)
	}
	return tw.Flush()
}
