package main

import (
	"fmt"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/spf13/cobra"
)

var mergeOverwrite bool

func init() {
	cmd := newMergeCmd()
	cmd.Flags().BoolVar(&mergeOverwrite, "overwrite", false,
		"On key collisions keep the second map's value instead of the first's")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <first> <second> <out>",
		Short: "Merge two map files into a new one",
		Long: `The merge command combines two serialized enum maps into a new file.
Both inputs must share a value width. By default colliding keys keep the
first map's value; --overwrite keeps the second's.

Example:
  emctl merge base.emap extra.emap merged.emap
  emctl merge base.emap extra.emap merged.emap --overwrite`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	firstPath, secondPath, outPath := args[0], args[1], args[2]

	printVerbose("Opening map file: %s\n", firstPath)
	a, err := enummap.OpenFile(firstPath)
	if err != nil {
		return fmt.Errorf("failed to open first map: %w", err)
	}
	printVerbose("Opening map file: %s\n", secondPath)
	b, err := enummap.OpenFile(secondPath)
	if err != nil {
		return fmt.Errorf("failed to open second map: %w", err)
	}

	merged, err := enummap.Merge(a, b, mergeOverwrite)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	if err := merged.WriteFile(outPath); err != nil {
		return fmt.Errorf("failed to write merged map: %w", err)
	}

	printInfo("Merged %d + %d entries into %s (%d entries)\n",
		a.Count(), b.Count(), outPath, merged.Count())
	return nil
}
