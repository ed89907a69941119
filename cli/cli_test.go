package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "case_1.txt")
	if err := os.WriteFile(dataPath, []byte("1 0 5\n2 1 2\n3 2 8\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	reportDir := filepath.Join(dir, "reports")
	dbPath := filepath.Join(dir, "runs.db")

	err := execute(t, "run", dataPath,
		"--report-dir", reportDir,
		"--db", dbPath,
		"--log-level", "error")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	entries, err := os.ReadDir(reportDir)
	if err != nil {
		t.Fatalf("read report dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("report dir has %d entries, want 1", len(entries))
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("run history db missing: %v", err)
	}

	// The persisted run shows up in the history listing.
	if err := execute(t, "history", "--db", dbPath, "--log-level", "error"); err != nil {
		t.Fatalf("history: %v", err)
	}
}

func TestRunCommandSelectsPolicies(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "case.txt")
	if err := os.WriteFile(dataPath, []byte("1 0 3\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	err := execute(t, "run", dataPath,
		"--policies", "rr,fcfs",
		"--report-dir", filepath.Join(dir, "reports"),
		"--log-level", "error")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if err := execute(t, "run", dataPath,
		"--policies", "lottery",
		"--report-dir", filepath.Join(dir, "reports"),
		"--log-level", "error"); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestRunCommandFailsOnMissingOrEmptyData(t *testing.T) {
	dir := t.TempDir()

	if err := execute(t, "run", filepath.Join(dir, "absent.txt"), "--log-level", "error"); err == nil {
		t.Error("missing data file accepted")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := execute(t, "run", empty, "--report-dir", dir, "--log-level", "error"); err == nil {
		t.Error("empty data file accepted")
	}
}

func TestPagerepCommand(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "pages.txt")
	if err := os.WriteFile(dataPath, []byte("3\n7\n0\n1\n2\n0\n3\n0\n4\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	err := execute(t, "pagerep", dataPath,
		"--report-dir", filepath.Join(dir, "reports"),
		"--log-level", "error")
	if err != nil {
		t.Fatalf("pagerep: %v", err)
	}
}

func TestHistoryRequiresDatabase(t *testing.T) {
	if err := execute(t, "history", "--log-level", "error"); err == nil {
		t.Error("history without a database did not fail")
	}
}
