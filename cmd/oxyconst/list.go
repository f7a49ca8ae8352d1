package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List the members of a category",
		Long: `The list command prints every member of a category in declaration order.

Example:
  oxyconst list MouseButton
  oxyconst list PropertyUsageFlags --hex
  oxyconst list Variant.Operator --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
}

func runList(args []string) error {
	c, err := lookupCategory(args[0])
	if err != nil {
		return err
	}
	entries := c.Entries()

	if jsonOut {
		return printJSON(entries)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE\tNOTES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entryName(e), formatNumber(e.Value), entryNotes(e))
	}
	return tw.Flush()
}

func entryNotes(e common.Entry) string {
	var notes []string
	if e.Alias {
		notes = append(notes, "alias")
	}
	if e.Composite {
		notes = append(notes, "composite")
	}
	if e.Sentinel {
		notes = append(notes, "sentinel")
	}
	return strings.Join(notes, ",")
}
