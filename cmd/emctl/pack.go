package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/joshuapare/enumkit/pkg/types"
	"github.com/spf13/cobra"
)

var (
	packWidth int
	packFlags []string
)

func init() {
	cmd := newPackCmd()
	cmd.Flags().IntVar(&packWidth, "width", 0, "Fixed value width in bytes (0 = reference storage)")
	cmd.Flags().StringSliceVar(&packFlags, "flag", nil,
		"Map flags: nonames, readonly, copyvalues (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <listing> <out>",
		Short: "Build a map file from a text listing",
		Long: `The pack command builds a serialized enum map from a text listing.
Each non-empty line is "key name hexvalue"; use "-" for an absent name.
The hex value must be exactly the configured width; with --width 0 the
value column is omitted.

Example listing (width 4):
  1 STATE_IDLE   64000000
  2 STATE_ACTIVE c8000000

Example:
  emctl pack states.txt states.emap --width 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
	return cmd
}

func parsePackFlags(names []string) (types.Flags, error) {
	var f types.Flags
	for _, n := range names {
		switch strings.ToLower(n) {
		case "nonames":
			f |= types.FlagNoNames
		case "readonly":
			f |= types.FlagReadOnly
		case "copyvalues":
			f |= types.FlagCopyValues
		default:
			return 0, fmt.Errorf("unknown flag %q", n)
		}
	}
	return f, nil
}

func runPack(args []string) error {
	listingPath, outPath := args[0], args[1]

	flags, err := parsePackFlags(packFlags)
	if err != nil {
		return err
	}

	f, err := os.Open(listingPath)
	if err != nil {
		return fmt.Errorf("failed to open listing: %w", err)
	}
	defer f.Close()

	type packEntry struct {
		key  int32
		name string
		val  []byte
	}
	var entries []packEntry

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		wantFields := 2
		if packWidth > 0 {
			wantFields = 3
		}
		if len(fields) != wantFields {
			return fmt.Errorf("line %d: want %d fields, got %d", lineNo, wantFields, len(fields))
		}

		key, parseErr := strconv.ParseInt(fields[0], 10, 32)
		if parseErr != nil {
			return fmt.Errorf("line %d: invalid key %q: %w", lineNo, fields[0], parseErr)
		}
		name := fields[1]
		if name == "-" {
			name = ""
		}
		var val []byte
		if packWidth > 0 {
			val, parseErr = hex.DecodeString(fields[2])
			if parseErr != nil {
				return fmt.Errorf("line %d: invalid hex value: %w", lineNo, parseErr)
			}
			if len(val) != packWidth {
				return fmt.Errorf("line %d: value is %d bytes, want %d", lineNo, len(val), packWidth)
			}
		}
		entries = append(entries, packEntry{key: int32(key), name: name, val: val})
	}
	if scanErr := sc.Err(); scanErr != nil {
		return fmt.Errorf("failed to read listing: %w", scanErr)
	}

	hint := len(entries)
	if hint == 0 {
		hint = 1
	}
	// Defer read-only until after insertion so packing a readonly map works.
	m, err := enummap.New(hint, packWidth, flags&^types.FlagReadOnly)
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}
	for _, e := range entries {
		var v enummap.Value
		if packWidth > 0 {
			v = enummap.BytesValue(e.val)
		} else {
			v = enummap.RefValue(nil)
		}
		if err := m.Associate(e.key, v, e.name); err != nil {
			return fmt.Errorf("key %d: %w", e.key, err)
		}
	}

	if flags.Has(types.FlagReadOnly) {
		m.Freeze()
	}

	if err := m.WriteFile(outPath); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}
	printInfo("Packed %d entries into %s\n", len(entries), outPath)
	return nil
}
