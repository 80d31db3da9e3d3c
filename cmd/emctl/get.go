package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/spf13/cobra"
)

var getShowName bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowName, "name", false, "Also print the entry's name")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <mapfile> <key>",
		Short: "Get the value stored under a key",
		Long: `The get command looks up a key and prints its value bytes in hex.

Example:
  emctl get states.emap 1
  emctl get states.emap 1 --name`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	key, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", args[1], err)
	}

	printVerbose("Opening map file: %s\n", path)
	m, err := enummap.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open map file: %w", err)
	}

	v, err := m.Value(int32(key))
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if m.ValueSize() > 0 {
		fmt.Fprintln(os.Stdout, hex.EncodeToString(v.Bytes()))
	} else {
		// Reference slots carry no serializable payload.
		fmt.Fprintln(os.Stdout, "<reference>")
	}
	if getShowName {
		if name, nameErr := m.Name(int32(key)); nameErr == nil {
			fmt.Fprintln(os.Stdout, name)
		}
	}
	return nil
}
