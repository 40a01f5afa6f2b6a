package report

import (
	"encoding/json"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-vecbench/bench"
	"github.com/cwbudde/algo-vecbench/kernel"
)

// RunReport is the JSON document for one benchmark invocation.
type RunReport struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Host      Host          `json:"host"`
	Size      int           `json:"size"`
	Trials    []TrialRecord `json:"trials"`
	Summary   []SummaryJSON `json:"summary"`
}

// Host describes the machine and selected kernel implementation.
type Host struct {
	Arch       string               `json:"arch"`
	Features   string               `json:"features"`
	Backend    string               `json:"backend"`
	GOMAXPROCS int                  `json:"gomaxprocs"`
	Backends   []kernel.BackendInfo `json:"backends,omitempty"`
}

// TrialRecord is one trial in JSON form.
type TrialRecord struct {
	Op        string    `json:"op"`
	Label     string    `json:"label"`
	Iteration int       `json:"iteration"`
	Backend   string    `json:"backend,omitempty"`
	Workers   int       `json:"workers,omitempty"`
	Seconds   float64   `json:"seconds"`
	Head      []float32 `json:"head,omitempty"`
	Tail      []float32 `json:"tail,omitempty"`
	Verified  bool      `json:"verified"`
	Error     string    `json:"error,omitempty"`
}

// SummaryJSON is OpSummary in JSON form. Fastest and slowest are trial
// iterations, -1 when no trial of the op succeeded.
type SummaryJSON struct {
	Op               string  `json:"op"`
	Backend          string  `json:"backend,omitempty"`
	Runs             int     `json:"runs"`
	Failed           int     `json:"failed"`
	TotalSeconds     float64 `json:"total_seconds"`
	MeanSeconds      float64 `json:"mean_seconds"`
	MinSeconds       float64 `json:"min_seconds"`
	MaxSeconds       float64 `json:"max_seconds"`
	Variance         float64 `json:"variance"`
	StdDev           float64 `json:"stddev_seconds"`
	CV               float64 `json:"cv"`
	FastestIteration int     `json:"fastest_iteration"`
	SlowestIteration int     `json:"slowest_iteration"`
}

// NewRunReport builds a report for trials run at size, stamped with a
// fresh run ID and startedAt.
func NewRunReport(trials []bench.Trial, size int, startedAt time.Time) RunReport {
	return RunReport{
		RunID:     uuid.NewString(),
		StartedAt: startedAt.UTC(),
		Host: Host{
			Arch:       runtime.GOARCH,
			Features:   kernel.HostFeatures(),
			Backend:    kernel.Backend(),
			GOMAXPROCS: runtime.GOMAXPROCS(0),
			Backends:   kernel.Backends(),
		},
		Size:    size,
		Trials:  TrialRecords(trials),
		Summary: SummaryRecords(Summarize(trials)),
	}
}

// TrialRecords converts trials to their JSON form.
func TrialRecords(trials []bench.Trial) []TrialRecord {
	out := make([]TrialRecord, 0, len(trials))
	for _, t := range trials {
		rec := TrialRecord{
			Op:        t.Op.String(),
			Label:     Label(t.Op),
			Iteration: t.Iteration,
			Backend:   t.Backend,
			Workers:   t.Workers,
			Seconds:   t.Seconds(),
			Head:      t.Head,
			Tail:      t.Tail,
			Verified:  t.Verified,
		}
		if t.Err != nil {
			rec.Error = t.Err.Error()
		}
		out = append(out, rec)
	}
	return out
}

// SummaryRecords converts summaries to their JSON form.
func SummaryRecords(sums []OpSummary) []SummaryJSON {
	out := make([]SummaryJSON, 0, len(sums))
	for _, s := range sums {
		out = append(out, SummaryJSON{
			Op:               s.Op,
			Backend:          s.Backend,
			Runs:             s.Runs,
			Failed:           s.Failed,
			TotalSeconds:     s.Stats.Total,
			MeanSeconds:      s.Stats.Mean,
			MinSeconds:       s.Stats.Min,
			MaxSeconds:       s.Stats.Max,
			Variance:         s.Stats.Variance,
			StdDev:           s.Stats.StdDev,
			CV:               s.Stats.CV,
			FastestIteration: s.Fastest,
			SlowestIteration: s.Slowest,
		})
	}
	return out
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
