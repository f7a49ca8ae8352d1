package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-constants/engine/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCategoriesCmd())
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the registered constant categories",
		Long: `The categories command lists every category with its kind and member count.

Example:
  oxyconst categories
  oxyconst categories --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories()
		},
	}
}

type categorySummary struct {
	Name    string `json:"name"`
	Flags   bool   `json:"flags"`
	Members int    `json:"members"`
}

func runCategories() error {
	reg := registry.Default()

	summaries := make([]categorySummary, 0, reg.Len())
	for _, name := range reg.Categories() {
		c, err := reg.Category(name)
		if err != nil {
			return err
		}
		summaries = append(summaries, categorySummary{Name: c.Name(), Flags: c.IsFlags(), Members: len(c.Entries())})
	}

	if jsonOut {
		return printJSON(summaries)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tKIND\tMEMBERS")
	for _, s := range summaries {
		kind := "enum"
		if s.Flags {
			kind = "flags"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Name, kind, s.Members)
	}
	return tw.Flush()
}
