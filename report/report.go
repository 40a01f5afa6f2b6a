// Package report renders benchmark trials for people and machines.
//
// Text output mirrors the classic benchmark script: the first and last
// five output values and the elapsed seconds per trial. JSON output
// carries the same data plus host information and a run ID.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cwbudde/algo-vecbench/bench"
	"github.com/cwbudde/algo-vecbench/kernel"
	"github.com/cwbudde/algo-vecbench/stats/timing"
)

// Label is the benchmark name printed for op ("VectorAdd").
func Label(op kernel.Op) string {
	switch op {
	case kernel.OpAdd:
		return "VectorAdd"
	case kernel.OpMultiply:
		return "VectorMultiply"
	default:
		return "Vector" + op.String()
	}
}

// ArrayName is the name the output array is printed under: C for add,
// G for multiply.
func ArrayName(op kernel.Op) string {
	if op == kernel.OpMultiply {
		return "G"
	}
	return "C"
}

// ResolveColor decides whether to style output written to w.
// mode is "always", "never" or "auto".
func ResolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		return termenv.NewOutput(w).ColorProfile() != termenv.Ascii
	}
}

// TextWriter writes the human-readable report.
type TextWriter struct {
	w       io.Writer
	heading lipgloss.Style
	failed  lipgloss.Style
}

// NewText returns a TextWriter on w. With color set, headings and
// failures are styled with ANSI escapes.
func NewText(w io.Writer, color bool) *TextWriter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &TextWriter{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Trial writes the sample lines and timing line of one trial, or a
// failure line if the trial errored.
func (tw *TextWriter) Trial(t bench.Trial) error {
	if t.Err != nil {
		_, err := fmt.Fprintln(tw.w, tw.failed.Render(fmt.Sprintf("%s failed: %v", Label(t.Op), t.Err)))
		return err
	}

	name := ArrayName(t.Op)
	_, err := fmt.Fprintf(tw.w, "%s[:%d] = %s\n%s[-%d:] = %s\n%s took %f seconds\n",
		name, bench.SampleSize, FormatSamples(t.Head),
		name, bench.SampleSize, FormatSamples(t.Tail),
		Label(t.Op), t.Seconds())
	return err
}

// FormatSamples renders values the way NumPy prints a float array:
// "[2. 2. 2. 2. 2.]". Whole numbers keep a trailing dot, others use the
// shortest float32 representation.
func FormatSamples(vs []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatSample(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatSample(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

// Summary writes a per-op timing table. It writes nothing unless some op
// ran more than once.
func (tw *TextWriter) Summary(trials []bench.Trial) error {
	sums := Summarize(trials)

	repeated := false
	for _, s := range sums {
		if s.Runs > 1 {
			repeated = true
			break
		}
	}
	if !repeated {
		return nil
	}

	if _, err := fmt.Fprintln(tw.w, tw.heading.Render("Summary")); err != nil {
		return err
	}

	tab := tabwriter.NewWriter(tw.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tab, "op\tbackend\truns\tfailed\ttotal(s)\tmean(s)\tmin(s)\tmax(s)\tstddev(s)\tcv\tfastest\tslowest")
	for _, s := range sums {
		fmt.Fprintf(tab, "%s\t%s\t%d\t%d\t%f\t%f\t%f\t%f\t%f\t%.3f\t%s\t%s\n",
			s.Op, s.Backend, s.Runs, s.Failed,
			s.Stats.Total, s.Stats.Mean, s.Stats.Min, s.Stats.Max, s.Stats.StdDev, s.Stats.CV,
			iterationLabel(s.Fastest), iterationLabel(s.Slowest))
	}
	return tab.Flush()
}

func iterationLabel(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}

// OpSummary aggregates the trials of one op.
type OpSummary struct {
	Op      string
	Backend string
	Runs    int // all trials, failed ones included
	Failed  int
	Stats   timing.Stats
	Fastest int // iteration of the shortest successful trial, -1 if none
	Slowest int // iteration of the longest successful trial, -1 if none
}

// Summarize groups trials by op, in order of first appearance, and
// computes timing statistics over the successful ones.
func Summarize(trials []bench.Trial) []OpSummary {
	type group struct {
		sum        OpSummary
		durations  []time.Duration
		iterations []int
	}

	var order []kernel.Op
	groups := make(map[kernel.Op]*group)

	for _, t := range trials {
		g, ok := groups[t.Op]
		if !ok {
			order = append(order, t.Op)
			g = &group{sum: OpSummary{Op: t.Op.String()}}
			groups[t.Op] = g
		}

		g.sum.Runs++
		if t.Err != nil {
			g.sum.Failed++
			continue
		}
		if g.sum.Backend == "" {
			g.sum.Backend = t.Backend
		}
		g.durations = append(g.durations, t.Duration)
		g.iterations = append(g.iterations, t.Iteration)
	}

	sums := make([]OpSummary, 0, len(order))
	for _, op := range order {
		g := groups[op]
		g.sum.Stats = timing.FromDurations(g.durations)
		g.sum.Fastest, g.sum.Slowest = -1, -1
		if g.sum.Stats.Count > 0 {
			g.sum.Fastest = g.iterations[g.sum.Stats.MinPos]
			g.sum.Slowest = g.iterations[g.sum.Stats.MaxPos]
		}
		sums = append(sums, g.sum)
	}
	return sums
}
