// Package metrics assembles and saves simulation run reports.
package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tenghoit/csc380-s26/pagereplace"
	"github.com/tenghoit/csc380-s26/simulator"
)

// Report is the JSON document written after a run: one scheduling row per
// policy and/or one page-replacement row per algorithm.
type Report struct {
	RunID           string         `json:"run_id"`
	CaseName        string         `json:"case_name"`
	CreatedAt       time.Time      `json:"created_at"`
	Scheduling      []PolicyResult `json:"scheduling,omitempty"`
	PageReplacement []PageResult   `json:"page_replacement,omitempty"`
}

type PolicyResult struct {
	Policy          string  `json:"policy"`
	Throughput      float64 `json:"throughput"`
	MeanTurnaround  float64 `json:"mean_turnaround"`
	ContextSwitches int     `json:"context_switches"`
	TotalTicks      int     `json:"total_ticks"`
}

type PageResult struct {
	Algorithm  string `json:"algorithm"`
	FrameCount int    `json:"frame_count"`
	References int    `json:"references"`
	Faults     int    `json:"faults"`
}

// NewReport starts a report for the named case (usually the data file's base
// name without extension).
func NewReport(caseName string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CaseName:  caseName,
		CreatedAt: time.Now().UTC(),
	}
}

// CaseName derives a report case name from a data source path.
func CaseName(dataPath string) string {
	base := filepath.Base(dataPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (r *Report) AddScheduling(results []simulator.PerformanceMetric) {
	for _, m := range results {
		r.Scheduling = append(r.Scheduling, PolicyResult{
			Policy:          m.Policy,
			Throughput:      m.Throughput,
			MeanTurnaround:  m.MeanTurnaround,
			ContextSwitches: m.ContextSwitches,
			TotalTicks:      m.TotalTicks,
		})
	}
}

func (r *Report) AddPageReplacement(frameCount, refCount int, results []pagereplace.Result) {
	for _, res := range results {
		r.PageReplacement = append(r.PageReplacement, PageResult{
			Algorithm:  res.Algorithm,
			FrameCount: frameCount,
			References: refCount,
			Faults:     res.Faults,
		})
	}
}

// Save writes the report as indented JSON into dir and returns the file
// path. The filename combines case name, short run id and timestamp so
// repeated runs of one case never collide.
func Save(dir string, r *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s.json",
		r.CaseName,
		strings.Split(r.RunID, "-")[0],
		r.CreatedAt.Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
