package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunVersion(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Errorf("run(--version) = %d, want 0", code)
	}
}

func TestRunMissingInput(t *testing.T) {
	if code := run([]string{}); code != 2 {
		t.Errorf("run() with no --input = %d, want 2", code)
	}
}

func TestRunEmptyFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{"entries": []}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	code := run([]string{"--input", path, "--l2-chain-id", "1", "--l2-block", "5"})
	if code != 0 {
		t.Errorf("run() on an empty block = %d, want 0", code)
	}
}

func TestParseFlagsBadRate(t *testing.T) {
	_, exit, code := parseFlags([]string{"--input", "x.json", "--prev-rate", "not-a-number"})
	if !exit || code != 2 {
		t.Errorf("parseFlags with bad --prev-rate = (exit=%v, code=%d), want (true, 2)", exit, code)
	}
}
