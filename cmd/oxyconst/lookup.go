package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <category> <symbol>",
		Short: "Resolve a constant name to its value",
		Long: `The lookup command prints the value of a named constant.

Example:
  oxyconst lookup Key KEY_ESCAPE
  oxyconst lookup key pagedown --hex
  oxyconst lookup KeyModifierMask "Shift|Ctrl"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
}

type lookupResult struct {
	Category string `json:"category"`
	Symbol   string `json:"symbol"`
	Value    int64  `json:"value"`
	Name     string `json:"name"`
}

func runLookup(args []string) error {
	c, err := lookupCategory(args[0])
	if err != nil {
		return err
	}

	v, err := c.ParseValue(args[1])
	if err != nil {
		return err
	}
	log.Printf("%s resolved to %d", args[1], v)

	if jsonOut {
		return printJSON(lookupResult{
			Category: c.Name(),
			Symbol:   args[1],
			Value:    v,
			Name:     c.FormatValue(v, engineNames),
		})
	}

	fmt.Println(formatNumber(v))
	return nil
}
