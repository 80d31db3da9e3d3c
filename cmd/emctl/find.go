package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <mapfile> <name>",
		Short: "Find the key associated with a name",
		Long: `The find command scans a map file for an entry with the given name
and prints its key.

Example:
  emctl find states.emap STATE_ACTIVE`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

func runFind(args []string) error {
	path := args[0]
	name := args[1]

	printVerbose("Opening map file: %s\n", path)
	m, err := enummap.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open map file: %w", err)
	}

	key, err := m.FindByName(name)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}
	fmt.Fprintln(os.Stdout, key)
	return nil
}
