package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newNamesCmd())
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <category> <value>",
		Short: "List every name declared for a value",
		Long: `The names command prints every member name declared with a value, one per line.
Aliased values print more than one name. For flags categories a value with no
member of its own prints its decomposition into single flags.

Example:
  oxyconst names InlineAlignment 0
  oxyconst names PropertyUsageFlags 0x6 --engine-names`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(args)
		},
	}
}

type namesResult struct {
	Category string   `json:"category"`
	Value    int64    `json:"value"`
	Names    []string `json:"names"`
	Format   string   `json:"format,omitempty"`
}

func runNames(args []string) error {
	c, err := lookupCategory(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}

	var names []string
	for _, e := range c.Entries() {
		if e.Value == v {
			names = append(names, entryName(e))
		}
	}

	var format string
	if c.IsFlags() && len(names) == 0 {
		format = c.FormatValue(v, engineNames)
	}
	if len(names) == 0 && format == "" {
		return fmt.Errorf("%w: no %s member has value %d", common.ErrUnknownSymbol, c.Name(), v)
	}

	if jsonOut {
		if names == nil {
			names = []string{}
		}
		return printJSON(namesResult{Category: c.Name(), Value: v, Names: names, Format: format})
	}

	for _, n := range names {
		fmt.Println(n)
	}
	if format != "" {
		fmt.Println(format)
	}
	return nil
}
