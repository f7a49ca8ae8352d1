package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/Carmen-Shannon/oxy-constants/engine/registry"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	jsonOut     bool
	engineNames bool
	hexOut      bool
)

var rootCmd = &cobra.Command{
	Use:   "oxyconst",
	Short: "Inspect the engine constant registry",
	Long: `oxyconst looks up the engine's named constants: key codes, mouse and
joystick buttons, MIDI messages, error codes, property hints and usage flags,
method flags, Variant types and operators, and layout enumerations.

Symbols may be given with their Go name (PageDown) or engine name (KEY_PAGEDOWN),
in any case. Flags categories accept "A|B" expressions.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&engineNames, "engine-names", "e", false, "Print engine identifiers instead of Go names")
	rootCmd.PersistentFlags().BoolVar(&hexOut, "hex", false, "Print values as hex")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// configureLogging routes the standard logger to stderr only in verbose mode.
func configureLogging() {
	log.SetFlags(0)
	log.SetPrefix("[oxyconst] ")
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// lookupCategory resolves a category in the default registry.
func lookupCategory(name string) (common.Category, error) {
	c, err := registry.Default().Category(name)
	if err != nil {
		return nil, err
	}
	log.Printf("category %s (flags=%t, %d members)", c.Name(), c.IsFlags(), len(c.Entries()))
	return c, nil
}

// parseValue parses a decimal, hex (0x) or binary (0b) integer argument.
func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, nil
}

// formatNumber renders a value in decimal, or hex under --hex.
func formatNumber(v int64) string {
	if hexOut {
		if v < 0 {
			return "-0x" + strconv.FormatUint(uint64(-v), 16)
		}
		return "0x" + strconv.FormatInt(v, 16)
	}
	return strconv.FormatInt(v, 10)
}

// entryName picks the spelling selected by --engine-names.
func entryName(e common.Entry) string {
	if engineNames {
		return e.EngineName
	}
	return e.Name
}
