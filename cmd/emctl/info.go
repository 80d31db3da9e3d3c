package main

import (
	"fmt"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <mapfile>",
		Short: "Validate a map file header and report basic metadata",
		Long: `The info command validates a serialized enum map file and displays
its entry count, value width, and flags.

Example:
  emctl info states.emap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening map file: %s\n", path)
	m, err := enummap.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open map file: %w", err)
	}

	printInfo("File:        %s\n", path)
	printInfo("Entries:     %d\n", m.Count())
	if m.ValueSize() > 0 {
		printInfo("Value width: %d bytes (copy storage)\n", m.ValueSize())
	} else {
		printInfo("Value width: 0 (reference storage)\n")
	}
	printInfo("Flags:       %s\n", m.Flags())
	return nil
}
