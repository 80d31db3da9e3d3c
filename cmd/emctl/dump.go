package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/spf13/cobra"
)

var dumpSorted bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpSorted, "sorted", false, "Sort entries by key instead of table order")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <mapfile>",
		Short: "List every entry in a map file",
		Long: `The dump command lists every entry of a serialized enum map: key,
name (when present), and the value bytes in hex.

Example:
  emctl dump states.emap
  emctl dump states.emap --sorted`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

type dumpEntry struct {
	key     int32
	name    string
	hasName bool
	val     []byte
}

func runDump(args []string) error {
	path := args[0]

	printVerbose("Opening map file: %s\n", path)
	m, err := enummap.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open map file: %w", err)
	}

	entries := make([]dumpEntry, 0, m.Count())
	m.ForEach(func(key int32, name string, hasName bool, v enummap.Value) {
		entries = append(entries, dumpEntry{key: key, name: name, hasName: hasName, val: v.Bytes()})
	})
	if dumpSorted {
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}

	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%d", e.key)
		if e.hasName {
			fmt.Fprintf(os.Stdout, "\t%s", e.name)
		} else {
			fmt.Fprint(os.Stdout, "\t-")
		}
		if m.ValueSize() > 0 {
			fmt.Fprintf(os.Stdout, "\t%s", hex.EncodeToString(e.val))
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
