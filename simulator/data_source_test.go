package simulator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadJobMetasText(t *testing.T) {
	path := writeDataFile(t, "data.txt", "1 0 5\n2 3 2\n\n3 3 8\n")

	metas, err := ReadJobMetas(path)
	if err != nil {
		t.Fatalf("ReadJobMetas: %v", err)
	}
	want := []JobMeta{
		{ID: 1, SubmittedAt: 0, Duration: 5},
		{ID: 2, SubmittedAt: 3, Duration: 2},
		{ID: 3, SubmittedAt: 3, Duration: 8},
	}
	if len(metas) != len(want) {
		t.Fatalf("got %d metas, want %d", len(metas), len(want))
	}
	for i := range want {
		if metas[i] != want[i] {
			t.Errorf("meta %d = %+v, want %+v", i, metas[i], want[i])
		}
	}
}

func TestReadJobMetasCSV(t *testing.T) {
	// Column order differs from struct order on purpose.
	path := writeDataFile(t, "case.csv", "duration,job_id,submit_time\n4,1,0\n2,2,1\n")

	metas, err := ReadJobMetas(path)
	if err != nil {
		t.Fatalf("ReadJobMetas: %v", err)
	}
	want := []JobMeta{
		{ID: 1, SubmittedAt: 0, Duration: 4},
		{ID: 2, SubmittedAt: 1, Duration: 2},
	}
	if len(metas) != len(want) {
		t.Fatalf("got %d metas, want %d", len(metas), len(want))
	}
	for i := range want {
		if metas[i] != want[i] {
			t.Errorf("meta %d = %+v, want %+v", i, metas[i], want[i])
		}
	}
}

func TestReadJobMetasErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		wantSub string
	}{
		{"wrong field count", "data.txt", "1 0\n", "want 3 fields"},
		{"non-integer field", "data.txt", "1 x 5\n", "submit time"},
		{"zero duration", "data.txt", "1 0 0\n", "duration must be positive"},
		{"negative arrival", "data.txt", "1 -2 5\n", "submit time must be non-negative"},
		{"missing csv column", "case.csv", "job_id,submit_time\n1,0\n", `column "duration"`},
		{"bad csv duration", "case.csv", "job_id,submit_time,duration\n1,0,-4\n", "duration must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDataFile(t, tc.file, tc.content)
			_, err := ReadJobMetas(path)
			if err == nil {
				t.Fatal("ReadJobMetas did not fail")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("err = %q, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestReadJobMetasMissingFile(t *testing.T) {
	if _, err := ReadJobMetas(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("ReadJobMetas did not fail on a missing file")
	}
}
