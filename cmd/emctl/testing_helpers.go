package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeListing writes a pack listing into dir and returns its path
func writeListing(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "listing.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write listing: %v", err)
	}
	return path
}

// packTestMap packs a listing into a map file and returns the map path
func packTestMap(t *testing.T, dir, listing string, width int, flags []string) string {
	t.Helper()
	listingPath := writeListing(t, dir, listing)
	outPath := filepath.Join(dir, "test.emap")

	packWidth = width
	packFlags = flags
	defer func() {
		packWidth = 0
		packFlags = nil
	}()

	if err := runPack([]string{listingPath, outPath}); err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	return outPath
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
