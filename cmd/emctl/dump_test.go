package main

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, statesListing, 4, nil)

	output, err := captureOutput(t, func() error {
		return runDump([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	assertContains(t, output, []string{
		"1\tSTATE_IDLE\t64000000",
		"2\tSTATE_ACTIVE\tc8000000",
		"3\t-\t2c010000",
	})
	if got := len(strings.Split(strings.TrimRight(output, "\n"), "\n")); got != 3 {
		t.Errorf("expected 3 lines, got %d\nOutput: %s", got, output)
	}
}

func TestDumpSorted(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, statesListing, 4, nil)

	dumpSorted = true
	defer func() { dumpSorted = false }()

	output, err := captureOutput(t, func() error {
		return runDump([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, prefix := range []string{"1\t", "2\t", "3\t"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
}

func TestDumpReferenceMap(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, "1 FIRST\n2 -\n", 0, nil)

	output, err := captureOutput(t, func() error {
		return runDump([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	assertContains(t, output, []string{"1\tFIRST", "2\t-"})
}
