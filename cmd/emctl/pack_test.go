package main

import (
	"os"
	"path/filepath"
	"testing"
)

const statesListing = `# sample state table
1 STATE_IDLE   64000000
2 STATE_ACTIVE c8000000
3 -            2c010000
`

func TestPackAndInfo(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, statesListing, 4, nil)

	output, err := captureOutput(t, func() error {
		return runInfo([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	assertContains(t, output, []string{
		"Entries:     3",
		"Value width: 4 bytes (copy storage)",
		"Flags:       none",
	})
}

func TestPackReadOnlyFlag(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, statesListing, 4, []string{"readonly"})

	output, err := captureOutput(t, func() error {
		return runInfo([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	assertContains(t, output, []string{"readonly"})
}

func TestPackReferenceWidth(t *testing.T) {
	dir := t.TempDir()
	mapPath := packTestMap(t, dir, "1 FIRST\n2 SECOND\n", 0, nil)

	output, err := captureOutput(t, func() error {
		return runInfo([]string{mapPath})
	})
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	assertContains(t, output, []string{"Value width: 0 (reference storage)"})
}

func TestPackRejectsBadListing(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		listing string
	}{
		{"wrong field count", "1 STATE_IDLE\n"},
		{"bad key", "x STATE_IDLE 64000000\n"},
		{"bad hex", "1 STATE_IDLE zz000000\n"},
		{"wrong value width", "1 STATE_IDLE 6400\n"},
		{"duplicate key", "1 A 64000000\n1 B c8000000\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listingPath := writeListing(t, t.TempDir(), tc.listing)
			outPath := filepath.Join(dir, "bad.emap")

			packWidth = 4
			defer func() { packWidth = 0 }()

			if err := runPack([]string{listingPath, outPath}); err == nil {
				t.Error("expected pack to fail")
			}
		})
	}
}

func TestInfoMissingFile(t *testing.T) {
	err := runInfo([]string{filepath.Join(t.TempDir(), "absent.emap")})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInfoRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.emap")
	if err := os.WriteFile(path, []byte("not a map file at all"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runInfo([]string{path}); err == nil {
		t.Error("expected error for garbage file")
	}
}
