package simulator

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tenghoit/csc380-s26/util"
)

// ReadJobMetas loads job records from path. Two formats are supported:
// files ending in .csv carry a header row naming job_id, submit_time and
// duration columns (any order); anything else is whitespace-delimited text,
// one "id submitted_at duration" record per line.
//
// Records are validated here, at the boundary: integer fields, duration > 0,
// submit time >= 0.
func ReadJobMetas(path string) ([]JobMeta, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data source: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSVMetas(file, path)
	}
	return readTextMetas(file, path)
}

func readTextMetas(file *os.File, path string) ([]JobMeta, error) {
	metas := make([]JobMeta, 0)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 fields (id submitted_at duration), got %d", path, lineNo, len(tokens))
		}
		meta, err := parseMeta(tokens[0], tokens[1], tokens[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		metas = append(metas, meta)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return metas, nil
}

func readCSVMetas(file *os.File, path string) ([]JobMeta, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 0
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	headers := records[0]
	colIndexOf := func(name string) (int, error) {
		idx := util.StringSliceIndexOf(headers, name)
		if idx == -1 {
			return -1, fmt.Errorf("%s: column %q not in header %v", path, name, headers)
		}
		return idx, nil
	}
	idIdx, err := colIndexOf("job_id")
	if err != nil {
		return nil, err
	}
	submitIdx, err := colIndexOf("submit_time")
	if err != nil {
		return nil, err
	}
	durationIdx, err := colIndexOf("duration")
	if err != nil {
		return nil, err
	}

	metas := make([]JobMeta, 0, len(records)-1)
	for i, record := range records[1:] {
		meta, err := parseMeta(record[idIdx], record[submitIdx], record[durationIdx])
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i+1, err)
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

func parseMeta(idField, submitField, durationField string) (JobMeta, error) {
	id, err := strconv.Atoi(idField)
	if err != nil {
		return JobMeta{}, fmt.Errorf("job id %q: %w", idField, err)
	}
	submittedAt, err := strconv.Atoi(submitField)
	if err != nil {
		return JobMeta{}, fmt.Errorf("submit time %q: %w", submitField, err)
	}
	duration, err := strconv.Atoi(durationField)
	if err != nil {
		return JobMeta{}, fmt.Errorf("duration %q: %w", durationField, err)
	}
	if duration <= 0 {
		return JobMeta{}, fmt.Errorf("job %d: duration must be positive, got %d", id, duration)
	}
	if submittedAt < 0 {
		return JobMeta{}, fmt.Errorf("job %d: submit time must be non-negative, got %d", id, submittedAt)
	}
	return JobMeta{ID: id, SubmittedAt: submittedAt, Duration: duration}, nil
}
