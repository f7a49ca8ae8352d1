package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeycodeCmd())
}

func newKeycodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keycode <code>",
		Short: "Render a key code combined with modifiers",
		Long: `The keycode command splits a combined key code into its key and modifier
bits and prints it as a shortcut string.

Example:
  oxyconst keycode 301989971      # Shift+Ctrl+S
  oxyconst keycode 0x2400001 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeycode(args)
		},
	}
}

type keycodeResult struct {
	Code      int64  `json:"code"`
	Key       string `json:"key"`
	Modifiers string `json:"modifiers,omitempty"`
	Shortcut  string `json:"shortcut"`
}

func runKeycode(args []string) error {
	code, err := parseValue(args[0])
	if err != nil {
		return err
	}
	key, mods := common.SplitKeycode(code)
	log.Printf("key=%d modifiers=%#x", key, int64(mods))

	if !common.KeyEnum.Contains(key) {
		return fmt.Errorf("%w: %d is not a Key", common.ErrUnknownSymbol, int64(key))
	}

	keyName, modName := key.String(), mods.String()
	if engineNames {
		keyName = common.KeyEnum.EngineNameOf(key)
		modName = common.KeyModifierMaskEnum.FormatEngine(mods)
	}
	if mods == 0 {
		modName = ""
	}

	if jsonOut {
		return printJSON(keycodeResult{
			Code:      code,
			Key:       keyName,
			Modifiers: modName,
			Shortcut:  common.KeycodeString(code),
		})
	}

	fmt.Println(common.KeycodeString(code))
	return nil
}
