package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/Carmen-Shannon/oxy-constants/engine/registry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpFormat string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [category...]",
		Short: "Dump categories and their members",
		Long: `The dump command writes categories with every member as YAML or JSON.
Without arguments every category is dumped, in registry order.

Example:
  oxyconst dump
  oxyconst dump Key MouseButton
  oxyconst dump Error --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

type dumpCategory struct {
	Name    string         `json:"name" yaml:"name"`
	Flags   bool           `json:"flags,omitempty" yaml:"flags,omitempty"`
	Members []common.Entry `json:"members" yaml:"members"`
}

func runDump(args []string) error {
	names := args
	if len(names) == 0 {
		names = registry.Default().Categories()
	}

	out := make([]dumpCategory, 0, len(names))
	for _, name := range names {
		c, err := lookupCategory(name)
		if err != nil {
			return err
		}
		out = append(out, dumpCategory{Name: c.Name(), Flags: c.IsFlags(), Members: c.Entries()})
	}

	format := dumpFormat
	if jsonOut {
		format = "json"
	}
	switch format {
	case "json":
		return printJSON(out)
	case "yaml", "yml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
